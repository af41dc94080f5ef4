// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package public

import (
	"os"
	"path/filepath"
	"testing"

	"code.gitea.io/mimedetect/modules/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinImageNames(t *testing.T) {
	names, err := BuiltinImageNames("core")
	require.NoError(t, err)
	assert.Contains(t, names, "filetypes/file.svg")
	assert.Contains(t, names, "filetypes/folder.svg")
	assert.Contains(t, names, "filetypes/folder-shared.svg")
	assert.Contains(t, names, "filetypes/folder-external.svg")

	_, err = BuiltinImageNames("no-such-app")
	assert.Error(t, err)
}

func TestAssetResolverBuiltin(t *testing.T) {
	r, err := NewAssetResolver("", "/assets/img/", 10)
	require.NoError(t, err)

	p, err := r.ImagePath("core", "filetypes/image.svg")
	require.NoError(t, err)
	assert.Equal(t, "/assets/img/core/filetypes/image.svg", p)

	_, err = r.ImagePath("core", "filetypes/image-png.svg")
	assert.ErrorIs(t, err, ErrIconNotExist)
	assert.ErrorIs(t, err, util.ErrNotExist)

	// directories are not images
	_, err = r.ImagePath("core", "filetypes")
	assert.ErrorIs(t, err, ErrIconNotExist)
}

func TestAssetResolverCustom(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "core", "filetypes"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "core", "filetypes", "image-png.svg"), []byte("<svg/>"), 0o644))

	r, err := NewAssetResolver(root, "/img", 10)
	require.NoError(t, err)

	p, err := r.ImagePath("core", "filetypes/image-png.svg")
	require.NoError(t, err)
	assert.Equal(t, "/img/core/filetypes/image-png.svg", p)

	// builtin images are still found when the custom root lacks them
	p, err = r.ImagePath("core", "filetypes/file.svg")
	require.NoError(t, err)
	assert.Equal(t, "/img/core/filetypes/file.svg", p)
}

func TestAssetResolverCache(t *testing.T) {
	root := t.TempDir()
	r, err := NewAssetResolver(root, "/img", 10)
	require.NoError(t, err)

	_, err = r.ImagePath("core", "filetypes/video-mp4.svg")
	require.ErrorIs(t, err, ErrIconNotExist)

	require.NoError(t, os.MkdirAll(filepath.Join(root, "core", "filetypes"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "core", "filetypes", "video-mp4.svg"), []byte("<svg/>"), 0o644))

	// the missing result is remembered until purged
	_, err = r.ImagePath("core", "filetypes/video-mp4.svg")
	require.ErrorIs(t, err, ErrIconNotExist)

	r.Purge()
	p, err := r.ImagePath("core", "filetypes/video-mp4.svg")
	require.NoError(t, err)
	assert.Equal(t, "/img/core/filetypes/video-mp4.svg", p)
}

func TestAssetResolverInvalidNames(t *testing.T) {
	r, err := NewAssetResolver("", "/img", 0)
	require.NoError(t, err)

	cases := []struct{ app, image string }{
		{"", "filetypes/file.svg"},
		{"core/x", "file.svg"},
		{"core", ""},
		{"core", "../core/filetypes/file.svg"},
		{"core", "/filetypes/file.svg"},
		{"core", `filetypes\..\..\secret`},
	}
	for _, c := range cases {
		_, err := r.ImagePath(c.app, c.image)
		assert.ErrorIs(t, err, util.ErrInvalidArgument, "app=%q image=%q", c.app, c.image)
	}
}

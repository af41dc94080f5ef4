// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package public

import (
	"errors"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"code.gitea.io/mimedetect/modules/log"
	"code.gitea.io/mimedetect/modules/setting"
	"code.gitea.io/mimedetect/modules/util"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ErrIconNotExist is returned when no image exists for the requested name
var ErrIconNotExist = util.NewNotExistErrorf("icon does not exist")

// IconResolver maps an image name of an app to its public path
type IconResolver interface {
	ImagePath(app, image string) (string, error)
}

// AssetResolver looks up images in the custom icon root first, then in the builtin assets.
// Both existing and missing images are remembered in a bounded cache.
type AssetResolver struct {
	root      string
	urlPrefix string
	builtin   fs.FS
	cache     *lru.Cache[string, bool]
}

var _ IconResolver = (*AssetResolver)(nil)

// NewAssetResolver creates a resolver, an empty root disables custom images
func NewAssetResolver(root, urlPrefix string, cacheSize int) (*AssetResolver, error) {
	if cacheSize <= 0 {
		cacheSize = 1000
	}
	cache, err := lru.New[string, bool](cacheSize)
	if err != nil {
		return nil, err
	}
	return &AssetResolver{
		root:      root,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
		builtin:   BuiltinAssets(),
		cache:     cache,
	}, nil
}

// NewAssetResolverFromSettings creates a resolver configured by the [mimetype] section
func NewAssetResolverFromSettings() (*AssetResolver, error) {
	return NewAssetResolver(setting.MimeType.IconRoot, setting.MimeType.IconURLPrefix, setting.MimeType.IconLookupCacheSize)
}

// ImagePath returns "{prefix}/{app}/{image}" if the image exists, otherwise an error wrapping ErrIconNotExist
func (r *AssetResolver) ImagePath(app, image string) (string, error) {
	rel, err := cleanImageName(app, image)
	if err != nil {
		return "", err
	}

	exists, ok := r.cache.Get(rel)
	if !ok {
		exists = r.exists(rel)
		r.cache.Add(rel, exists)
	}
	if !exists {
		return "", util.NewSilentWrapErrorf(ErrIconNotExist, "icon %q does not exist", rel)
	}
	return r.urlPrefix + "/" + rel, nil
}

func (r *AssetResolver) exists(rel string) bool {
	if r.root != "" {
		isFile, err := util.IsFile(filepath.Join(r.root, filepath.FromSlash(rel)))
		if err != nil {
			log.Warn("Unable to check custom icon %s: %v", rel, err)
		} else if isFile {
			return true
		}
	}
	st, err := fs.Stat(r.builtin, rel)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn("Unable to check builtin icon %s: %v", rel, err)
		}
		return false
	}
	return !st.IsDir()
}

// Purge forgets all cached lookups, eg: after the custom icons changed
func (r *AssetResolver) Purge() {
	r.cache.Purge()
}

func cleanImageName(app, image string) (string, error) {
	if app == "" || strings.ContainsAny(app, `/\`) {
		return "", util.NewInvalidArgumentErrorf("invalid app name %q", app)
	}
	image = strings.ReplaceAll(image, `\`, "/")
	cleaned := path.Clean("/" + image)[1:]
	if cleaned == "" || cleaned != image {
		return "", util.NewInvalidArgumentErrorf("invalid image name %q", image)
	}
	return app + "/" + cleaned, nil
}

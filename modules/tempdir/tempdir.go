// Copyright 2025 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package tempdir

import (
	"os"
	"path/filepath"

	"code.gitea.io/mimedetect/modules/log"
	"code.gitea.io/mimedetect/modules/util"
)

type TempDir struct {
	// base is the base directory for temporary files, it must exist before accessing and won't be created automatically.
	// for example: base=/system-tmpdir, sub=mimedetect-tmp
	base, sub string
}

func (td *TempDir) JoinPath(elems ...string) string {
	return filepath.Join(append([]string{td.base, td.sub}, elems...)...)
}

// MkdirAllSub works like os.MkdirAll, but the base directory must exist
func (td *TempDir) MkdirAllSub(dir string) (string, error) {
	if _, err := os.Stat(td.base); err != nil {
		return "", err
	}
	full := filepath.Join(td.base, td.sub, dir)
	if err := os.MkdirAll(full, os.ModePerm); err != nil {
		return "", err
	}
	return full, nil
}

func (td *TempDir) prepareDirWithPattern(elems ...string) (dir, pattern string, err error) {
	if len(elems) == 0 {
		return "", "", util.NewInvalidArgumentErrorf("no pattern provided")
	}
	last := elems[len(elems)-1]
	dir = td.JoinPath(elems[:len(elems)-1]...)
	if _, err = td.MkdirAllSub(filepath.Join(elems[:len(elems)-1]...)); err != nil {
		return "", "", err
	}
	return dir, last, nil
}

// CreateTempFileRandom works like os.CreateTemp, the last path field is the "pattern"
// The returned cleanup function closes and removes the file.
func (td *TempDir) CreateTempFileRandom(elems ...string) (*os.File, func(), error) {
	dir, pattern, err := td.prepareDirWithPattern(elems...)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return nil, nil, err
	}
	filename := f.Name()
	return f, func() {
		_ = f.Close()
		if err := util.Remove(filename); err != nil {
			log.Error("Unable to remove temporary file: %s: Error: %v", filename, err)
		}
	}, err
}

// New creates a TempDir, base is usually the system temp dir
func New(base, sub string) *TempDir {
	if base == "" {
		base = os.TempDir()
	}
	return &TempDir{base: base, sub: sub}
}

// OsTempDir returns a TempDir below the operating system's temp dir
func OsTempDir(sub string) *TempDir {
	return New(os.TempDir(), sub)
}

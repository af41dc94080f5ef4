// Copyright 2022 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package options

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"code.gitea.io/mimedetect/modules/setting"
	"code.gitea.io/mimedetect/modules/util"
)

// Data set file names
const (
	MappingDist  = "mimetypemapping.dist.json"
	MappingFile  = "mimetypemapping.json"
	AliasesDist  = "mimetypealiases.dist.json"
	AliasesFile  = "mimetypealiases.json"
	mimeAssetDir = "mimetype"
)

// DataSource reads the mimetype data sets: defaults from DefaultDir or the embedded assets,
// overrides from CustomDir.
type DataSource struct {
	DefaultDir string
	CustomDir  string
}

// NewDataSource returns a DataSource configured from the [mimetype] settings
func NewDataSource() *DataSource {
	return &DataSource{
		DefaultDir: setting.MimeType.DefaultConfigDir,
		CustomDir:  setting.MimeType.CustomConfigDir,
	}
}

// ReadDefault reads a bundled data set. A missing file is reported as util.ErrNotExist.
func (s *DataSource) ReadDefault(name string) ([]byte, error) {
	if s.DefaultDir != "" {
		return readFileFromLocal(s.DefaultDir, name)
	}
	data, err := fs.ReadFile(assets, path.Join(mimeAssetDir, path.Clean("/"+name)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, util.NewNotExistErrorf("embedded data set %q does not exist", name)
	}
	return data, err
}

// ReadCustom reads an override data set from the custom directory. A missing file is reported as util.ErrNotExist.
func (s *DataSource) ReadCustom(name string) ([]byte, error) {
	if s.CustomDir == "" {
		return nil, util.NewNotExistErrorf("no custom config dir for %q", name)
	}
	return readFileFromLocal(s.CustomDir, name)
}

func readFileFromLocal(dir, name string) ([]byte, error) {
	localPath := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+name)))
	isFile, err := util.IsFile(localPath)
	if err != nil {
		return nil, fmt.Errorf("unable to check if %q is a file: %w", localPath, err)
	}
	if !isFile {
		return nil, util.NewNotExistErrorf("data set %q does not exist", localPath)
	}
	return os.ReadFile(localPath)
}

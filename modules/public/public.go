// Copyright 2016 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package public

import (
	"embed"
	"io/fs"
)

//go:embed img
var builtinAssets embed.FS

// BuiltinAssets returns the file system of the images shipped with the binary, rooted at "img"
func BuiltinAssets() fs.FS {
	sub, err := fs.Sub(builtinAssets, "img")
	if err != nil {
		// the directory is embedded above, this can not happen
		panic(err)
	}
	return sub
}

// BuiltinImageNames lists the embedded images of an app, eg: "filetypes/file.svg"
func BuiltinImageNames(app string) ([]string, error) {
	var names []string
	root, err := fs.Sub(BuiltinAssets(), app)
	if err != nil {
		return nil, err
	}
	err = fs.WalkDir(root, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			names = append(names, p)
		}
		return nil
	})
	return names, err
}

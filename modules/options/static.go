// Copyright 2022 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package options

import "embed"

//go:embed mimetype/*.dist.json
var assets embed.FS

// AssetNames returns the names of the embedded data sets
func AssetNames() []string {
	entries, err := assets.ReadDir(mimeAssetDir)
	if err != nil {
		return nil
	}
	results := make([]string, 0, len(entries))
	for _, entry := range entries {
		results = append(results, entry.Name())
	}
	return results
}

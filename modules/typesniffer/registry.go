// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package typesniffer

import (
	"mime"
	"path/filepath"
)

// Registry asks the operating system's type registry for the type of a path
type Registry interface {
	Lookup(path string) (string, error)
}

// SystemRegistry looks up the extension in the system MIME database
// (/etc/mime.types and friends on unix, the registry on windows).
type SystemRegistry struct{}

func (SystemRegistry) Lookup(path string) (string, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", ErrUnknownContent
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct, nil
	}
	return "", ErrUnknownContent
}

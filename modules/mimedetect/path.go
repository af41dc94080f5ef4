// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package mimedetect

import (
	"regexp"
	"strings"

	"code.gitea.io/mimedetect/modules/util"
)

// syncSuffixRe matches the version suffix "name.v1508946057" and the upload suffix "name.ocTransferId2057600214.part"
var syncSuffixRe = regexp.MustCompile(`((\.v\d+)|((.ocTransferId\d+)?.part))$`)

// extensionOf returns the lowercased extension used as mapping key, "" if the name has none
func extensionOf(p string) string {
	name := strings.TrimLeft(util.BaseName(p), ".")
	// a leading dot never counts as extension
	if strings.IndexByte(name, '.') <= 0 {
		return ""
	}
	name = syncSuffixRe.ReplaceAllString(name, "")
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 {
		return ""
	}
	return strings.ToLower(name[idx+1:])
}

// DetectPath guesses the type from the file name only
func (d *Detector) DetectPath(p string) string {
	if err := d.EnsureMappingsLoaded(); err != nil {
		d.logger.Error("Unable to load mimetype mapping: %v", err)
		return OctetStream
	}

	ext := extensionOf(p)
	if ext == "" {
		return OctetStream
	}

	d.mu.RLock()
	m, ok := d.mappings[ext]
	d.mu.RUnlock()
	if !ok || m.Primary == "" {
		return OctetStream
	}
	return m.Primary
}

// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package mimedetect

import (
	"errors"
	"fmt"
	"strings"

	"code.gitea.io/mimedetect/modules/public"
	"code.gitea.io/mimedetect/modules/util"
)

// ErrAliasLoop is returned when following the aliases of a mimetype never ends
var ErrAliasLoop = util.NewInvalidArgumentErrorf("mimetype alias loop")

const iconApp = "core"

var folderIcons = map[string]string{
	"dir":          "filetypes/folder.svg",
	"dir-shared":   "filetypes/folder-shared.svg",
	"dir-external": "filetypes/folder-external.svg",
}

// resolveAlias follows the alias table until mimetype is no alias anymore.
// A chain can't be longer than the table without visiting an entry twice.
func (d *Detector) resolveAlias(mimetype string) (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	start := mimetype
	for hops := 0; ; hops++ {
		next, ok := d.aliases[mimetype]
		if !ok {
			return mimetype, nil
		}
		if hops >= len(d.aliases) {
			return "", util.NewSilentWrapErrorf(ErrAliasLoop, "mimetype alias loop starting at %q", start)
		}
		mimetype = next
	}
}

// MimeTypeIcon returns the public path of the icon of mimetype.
// Aliases are followed first, the result is cached by the resolved mimetype.
func (d *Detector) MimeTypeIcon(mimetype string) (string, error) {
	if err := d.EnsureAliasesLoaded(); err != nil {
		return "", err
	}
	resolved, err := d.resolveAlias(mimetype)
	if err != nil {
		d.logger.Error("Unable to resolve the icon of %s: %v", mimetype, err)
		return "", err
	}

	d.iconMu.Lock()
	defer d.iconMu.Unlock()
	if icon, ok := d.iconCache[resolved]; ok {
		return icon, nil
	}
	if d.icons == nil {
		return "", util.NewUnavailableErrorf("no icon resolver configured")
	}

	icon, err := d.lookupIcon(resolved)
	if err != nil {
		return "", err
	}
	d.iconCache[resolved] = icon
	return icon, nil
}

func (d *Detector) lookupIcon(mimetype string) (string, error) {
	if folder, ok := folderIcons[mimetype]; ok {
		return d.icons.ImagePath(iconApp, folder)
	}

	name := strings.NewReplacer("/", "-", `\`, "-").Replace(mimetype)
	candidates := []string{name}
	if general, _, ok := strings.Cut(name, "-"); ok && general != "" {
		candidates = append(candidates, general)
	}
	candidates = append(candidates, "file")

	for _, c := range candidates {
		icon, err := d.icons.ImagePath(iconApp, "filetypes/"+c+".svg")
		if err == nil {
			return icon, nil
		}
		if !errors.Is(err, util.ErrNotExist) && !errors.Is(err, util.ErrInvalidArgument) {
			return "", fmt.Errorf("unable to resolve icon %q: %w", c, err)
		}
	}
	return "", util.NewSilentWrapErrorf(public.ErrIconNotExist, "no icon for %q", mimetype)
}

// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Supported content sniffers
const (
	SnifferMimetype = "mimetype"
	SnifferFiletype = "filetype"
	SnifferHTTP     = "http"
	SnifferNone     = "none"
)

type mimeTypeSettings struct {
	// DefaultConfigDir overrides the embedded *.dist.json data sets when set
	DefaultConfigDir string `ini:"DEFAULT_CONFIG_DIR"`
	// CustomConfigDir holds the optional mimetypemapping.json and mimetypealiases.json
	CustomConfigDir string `ini:"CUSTOM_CONFIG_DIR"`

	Sniffer           string        `ini:"SNIFFER"`
	EnableOSRegistry  bool          `ini:"ENABLE_OS_REGISTRY"`
	ClassifierCommand string        `ini:"CLASSIFIER_COMMAND"`
	ClassifierTimeout time.Duration `ini:"CLASSIFIER_TIMEOUT"`

	IconRoot            string `ini:"ICON_ROOT"`
	IconURLPrefix       string `ini:"ICON_URL_PREFIX"`
	IconLookupCacheSize int    `ini:"ICON_LOOKUP_CACHE_SIZE"`

	TempPath string `ini:"TEMP_PATH"`
}

// MimeType settings
var MimeType = defaultMimeTypeSettings()

func defaultMimeTypeSettings() mimeTypeSettings {
	return mimeTypeSettings{
		Sniffer:             SnifferMimetype,
		EnableOSRegistry:    true,
		ClassifierCommand:   "file -b --mime-type",
		ClassifierTimeout:   10 * time.Second,
		IconURLPrefix:       "/assets/img",
		IconLookupCacheSize: 1000,
	}
}

func loadMimeTypeFrom(rootCfg ConfigProvider) error {
	MimeType = defaultMimeTypeSettings()
	mustMapSetting(rootCfg, "mimetype", &MimeType)
	sec := rootCfg.Section("mimetype")
	// an empty CLASSIFIER_COMMAND disables the external classifier
	if sec.HasKey("CLASSIFIER_COMMAND") {
		MimeType.ClassifierCommand = strings.TrimSpace(sec.Key("CLASSIFIER_COMMAND").String())
	}

	MimeType.Sniffer = strings.ToLower(strings.TrimSpace(MimeType.Sniffer))
	switch MimeType.Sniffer {
	case "":
		MimeType.Sniffer = SnifferMimetype
	case SnifferMimetype, SnifferFiletype, SnifferHTTP, SnifferNone:
	default:
		return fmt.Errorf("invalid [mimetype] SNIFFER %q, expected one of %s, %s, %s, %s",
			MimeType.Sniffer, SnifferMimetype, SnifferFiletype, SnifferHTTP, SnifferNone)
	}

	if MimeType.DefaultConfigDir != "" && !filepath.IsAbs(MimeType.DefaultConfigDir) {
		MimeType.DefaultConfigDir = filepath.Join(AppWorkPath, MimeType.DefaultConfigDir)
	}
	if MimeType.CustomConfigDir == "" {
		MimeType.CustomConfigDir = filepath.Join(CustomPath, "options", "mimetype")
	} else if !filepath.IsAbs(MimeType.CustomConfigDir) {
		MimeType.CustomConfigDir = filepath.Join(CustomPath, MimeType.CustomConfigDir)
	}
	if MimeType.IconRoot == "" {
		MimeType.IconRoot = filepath.Join(CustomPath, "public", "img")
	} else if !filepath.IsAbs(MimeType.IconRoot) {
		MimeType.IconRoot = filepath.Join(AppWorkPath, MimeType.IconRoot)
	}
	MimeType.IconURLPrefix = strings.TrimSuffix(MimeType.IconURLPrefix, "/")
	if MimeType.ClassifierTimeout <= 0 {
		MimeType.ClassifierTimeout = 10 * time.Second
	}
	if MimeType.IconLookupCacheSize <= 0 {
		MimeType.IconLookupCacheSize = 1000
	}
	return nil
}

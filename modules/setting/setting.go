// Copyright 2014 The Gogs Authors. All rights reserved.
// Copyright 2017 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"fmt"
	"os"
	"path/filepath"
)

var (
	// AppWorkPath is the "working directory" of the program, custom files are looked up relative to it
	AppWorkPath string
	// CustomPath is the directory holding user customizations, defaults to {AppWorkPath}/custom
	CustomPath string
	// CustomConf is the configuration file, defaults to {CustomPath}/conf/app.ini
	CustomConf string

	// CfgProvider is the provider the settings were loaded from
	CfgProvider ConfigProvider
)

type ArgWorkPathAndCustomConf struct {
	WorkPath   string
	CustomPath string
	CustomConf string
}

// InitWorkPathAndCommonConfig resolves the work path, custom path and config file
// from the arguments first, then the environment, then the defaults.
func InitWorkPathAndCommonConfig(getEnvFn func(name string) string, args ArgWorkPathAndCustomConf) {
	AppWorkPath = args.WorkPath
	if AppWorkPath == "" {
		AppWorkPath = getEnvFn("MIMEDETECT_WORK_DIR")
	}
	if AppWorkPath == "" {
		if exe, err := os.Executable(); err == nil {
			AppWorkPath = filepath.Dir(exe)
		} else {
			AppWorkPath, _ = os.Getwd()
		}
	}

	CustomPath = args.CustomPath
	if CustomPath == "" {
		CustomPath = getEnvFn("MIMEDETECT_CUSTOM")
	}
	if CustomPath == "" {
		CustomPath = filepath.Join(AppWorkPath, "custom")
	} else if !filepath.IsAbs(CustomPath) {
		CustomPath = filepath.Join(AppWorkPath, CustomPath)
	}

	CustomConf = args.CustomConf
	if CustomConf == "" {
		CustomConf = filepath.Join(CustomPath, "conf", "app.ini")
	} else if !filepath.IsAbs(CustomConf) {
		CustomConf = filepath.Join(CustomPath, CustomConf)
	}
}

// LoadSettings loads the config file and maps all sections, it must be called after InitWorkPathAndCommonConfig
func LoadSettings() error {
	cfg, err := NewConfigProviderFromFile(CustomConf)
	if err != nil {
		return fmt.Errorf("unable to load config: %w", err)
	}
	return LoadSettingsFrom(cfg)
}

// LoadSettingsFrom maps all sections of the given provider
func LoadSettingsFrom(cfg ConfigProvider) error {
	CfgProvider = cfg
	loadLogFrom(cfg)
	return loadMimeTypeFrom(cfg)
}

// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package mimedetect determines the MIME type of files and buffers.
//
// The file name extension is consulted first, content sniffing is only used
// when the extension is unknown. The mapping and alias tables are loaded lazily
// from the bundled data sets merged with optional custom overrides.
package mimedetect

import (
	"errors"
	"sync"

	"code.gitea.io/mimedetect/modules/log"
	"code.gitea.io/mimedetect/modules/options"
	"code.gitea.io/mimedetect/modules/process"
	"code.gitea.io/mimedetect/modules/public"
	"code.gitea.io/mimedetect/modules/setting"
	"code.gitea.io/mimedetect/modules/tempdir"
	"code.gitea.io/mimedetect/modules/typesniffer"
	"code.gitea.io/mimedetect/modules/util"
)

// Well known types
const (
	OctetStream   = typesniffer.OctetStream
	DirectoryType = "httpd/unix-directory"
)

// DataSource provides the raw JSON data sets, a missing file is reported as util.ErrNotExist
type DataSource interface {
	ReadDefault(name string) ([]byte, error)
	ReadCustom(name string) ([]byte, error)
}

// Options are the capabilities of a Detector. A nil capability is unavailable.
type Options struct {
	Data       DataSource
	Sniffer    typesniffer.Sniffer
	Registry   typesniffer.Registry
	Classifier process.Classifier
	Icons      public.IconResolver
	TempDir    *tempdir.TempDir
	Logger     log.Logger
}

// Detector detects MIME types and maps them to secure types and icons.
// It is safe for concurrent use.
type Detector struct {
	data       DataSource
	sniffer    typesniffer.Sniffer
	registry   typesniffer.Registry
	classifier process.Classifier
	icons      public.IconResolver
	tempDir    *tempdir.TempDir
	logger     log.Logger

	mu             sync.RWMutex
	mappingsLoaded bool
	mappings       map[string]Mapping
	secure         map[string]string
	aliasesLoaded  bool
	aliases        map[string]string

	iconMu    sync.Mutex
	iconCache map[string]string
}

// New creates a Detector, the tables are loaded on first use
func New(opts Options) *Detector {
	d := &Detector{
		data:       opts.Data,
		sniffer:    opts.Sniffer,
		registry:   opts.Registry,
		classifier: opts.Classifier,
		icons:      opts.Icons,
		tempDir:    opts.TempDir,
		logger:     opts.Logger,
	}
	if d.data == nil {
		d.data = &options.DataSource{}
	}
	if d.tempDir == nil {
		d.tempDir = tempdir.OsTempDir("mimedetect")
	}
	if d.logger == nil {
		d.logger = log.GetLogger()
	}
	d.resetLocked()
	return d
}

// NewFromSettings creates a Detector with the capabilities configured in the [mimetype] section
func NewFromSettings() (*Detector, error) {
	opts := Options{
		Data:    options.NewDataSource(),
		TempDir: tempdir.New(setting.MimeType.TempPath, "mimedetect"),
	}

	sniffer, err := typesniffer.NewSniffer(setting.MimeType.Sniffer)
	if err != nil {
		return nil, err
	}
	opts.Sniffer = sniffer

	if setting.MimeType.EnableOSRegistry {
		opts.Registry = typesniffer.SystemRegistry{}
	}

	classifier, err := process.NewCommandClassifier(setting.MimeType.ClassifierCommand, setting.MimeType.ClassifierTimeout)
	switch {
	case err == nil:
		opts.Classifier = classifier
	case errors.Is(err, util.ErrUnavailable):
		log.Info("External classifier disabled: %v", err)
	default:
		return nil, err
	}

	icons, err := public.NewAssetResolverFromSettings()
	if err != nil {
		return nil, err
	}
	opts.Icons = icons

	return New(opts), nil
}

// Reset drops all tables and cached icons, the next access reloads them
func (d *Detector) Reset() {
	d.mu.Lock()
	d.iconMu.Lock()
	d.resetLocked()
	d.iconMu.Unlock()
	d.mu.Unlock()
}

func (d *Detector) resetLocked() {
	d.mappingsLoaded = false
	d.mappings = map[string]Mapping{}
	d.secure = map[string]string{}
	d.aliasesLoaded = false
	d.aliases = map[string]string{}
	d.iconCache = map[string]string{}
}

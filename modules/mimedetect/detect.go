// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package mimedetect

import (
	"context"
	"errors"
	"io"
	"strings"

	"code.gitea.io/mimedetect/modules/typesniffer"
	"code.gitea.io/mimedetect/modules/util"
)

// spillSize is the amount of a buffer written to a temporary file when it can't be sniffed in memory
const spillSize = 8024

// Detect returns the type of the file at path, see DetectContext
func (d *Detector) Detect(p string) string {
	return d.DetectContext(context.Background(), p)
}

// DetectContext returns the type of the file at path. Directories are reported as DirectoryType.
// A known extension wins, otherwise the content is sniffed, then the OS registry and the
// external classifier are asked. Each step runs at most once and a failing step is skipped.
func (d *Detector) DetectContext(ctx context.Context, p string) string {
	if err := d.EnsureMappingsLoaded(); err != nil {
		d.logger.Error("Unable to load mimetype mapping: %v", err)
		return OctetStream
	}

	if isDir, _ := util.IsDir(p); isDir {
		return DirectoryType
	}

	if guess := d.DetectPath(p); guess != OctetStream {
		return guess
	}

	if d.sniffer != nil {
		if ct, err := d.sniffer.SniffFile(p); err == nil {
			return normalizeSniffed(ct)
		} else if !errors.Is(err, typesniffer.ErrUnknownContent) {
			d.logger.Debug("Content sniffer failed for %s: %v", p, err)
		}
	}

	// the OS registry and external tools can't handle stream wrapped paths
	if isWrapped(p) {
		return OctetStream
	}

	if d.registry != nil {
		ct, err := d.registry.Lookup(p)
		if err == nil {
			if ct = normalizeSniffed(ct); ct != OctetStream {
				return ct
			}
		} else if !errors.Is(err, typesniffer.ErrUnknownContent) {
			d.logger.Debug("OS registry lookup failed for %s: %v", p, err)
		}
	}

	if d.classifier != nil {
		ct, err := d.classifier.Classify(ctx, p)
		if err != nil {
			d.logger.Debug("External classifier failed for %s: %v", p, err)
			return OctetStream
		}
		if ct == "" {
			return OctetStream
		}
		return ct
	}
	return OctetStream
}

// DetectString returns the type of an in-memory buffer.
// Without a content sniffer the leading bytes are written to a temporary file which is detected with Detect.
func (d *Detector) DetectString(data []byte) string {
	if d.sniffer != nil {
		ct, err := d.sniffer.SniffBytes(data)
		if err != nil {
			if !errors.Is(err, typesniffer.ErrUnknownContent) {
				d.logger.Debug("Content sniffer failed for buffer: %v", err)
			}
			return OctetStream
		}
		return normalizeSniffed(ct)
	}
	return d.detectSpilled(data)
}

func (d *Detector) detectSpilled(data []byte) string {
	f, cleanup, err := d.tempDir.CreateTempFileRandom("detect-*")
	if err != nil {
		d.logger.Error("Unable to create temporary file: %v", err)
		return OctetStream
	}
	defer cleanup()

	if len(data) > spillSize {
		data = data[:spillSize]
	}
	if _, err := f.Write(data); err != nil {
		d.logger.Error("Unable to write temporary file %s: %v", f.Name(), err)
		return OctetStream
	}
	if err := f.Close(); err != nil {
		d.logger.Error("Unable to close temporary file %s: %v", f.Name(), err)
		return OctetStream
	}
	return d.Detect(f.Name())
}

// DetectReader returns the type of a stream named name, eg: an upload.
// A known extension of name wins, otherwise the leading bytes of r are sniffed.
func (d *Detector) DetectReader(name string, r io.Reader) (string, error) {
	if guess := d.DetectPath(name); guess != OctetStream {
		return guess, nil
	}
	buf, err := util.ReadWithLimit(r, spillSize)
	if err != nil {
		return "", err
	}
	return d.DetectString(buf), nil
}

// normalizeSniffed drops the parameters of a sniffed type, eg: "text/plain; charset=utf-8"
func normalizeSniffed(ct string) string {
	ct, _, _ = strings.Cut(ct, ";")
	ct = strings.ToLower(strings.TrimSpace(ct))
	if ct == "" {
		return OctetStream
	}
	return ct
}

func isWrapped(p string) bool {
	return strings.HasPrefix(p, "file://")
}

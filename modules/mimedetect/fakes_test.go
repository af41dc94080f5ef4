// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package mimedetect

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"code.gitea.io/mimedetect/modules/log"
	"code.gitea.io/mimedetect/modules/public"
	"code.gitea.io/mimedetect/modules/tempdir"
	"code.gitea.io/mimedetect/modules/testlogger"
	"code.gitea.io/mimedetect/modules/typesniffer"
	"code.gitea.io/mimedetect/modules/util"
)

// callLog records the order in which the capabilities are invoked
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (c *callLog) add(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, name)
}

func (c *callLog) list() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...)
}

type memoryData struct {
	defaults map[string]string
	custom   map[string]string
}

func (m *memoryData) ReadDefault(name string) ([]byte, error) {
	if v, ok := m.defaults[name]; ok {
		return []byte(v), nil
	}
	return nil, util.NewNotExistErrorf("no default %s", name)
}

func (m *memoryData) ReadCustom(name string) ([]byte, error) {
	if v, ok := m.custom[name]; ok {
		return []byte(v), nil
	}
	return nil, util.NewNotExistErrorf("no custom %s", name)
}

type fakeSniffer struct {
	log    *callLog
	result string
	err    error
}

func (f *fakeSniffer) SniffFile(path string) (string, error) {
	f.log.add("sniffer")
	return f.result, f.err
}

func (f *fakeSniffer) SniffBytes(data []byte) (string, error) {
	f.log.add("sniffer-bytes")
	return f.result, f.err
}

type fakeRegistry struct {
	log    *callLog
	result string
	err    error
}

func (f *fakeRegistry) Lookup(path string) (string, error) {
	f.log.add("registry")
	return f.result, f.err
}

type fakeClassifier struct {
	log    *callLog
	result string
	err    error
	paths  []string
}

func (f *fakeClassifier) Classify(ctx context.Context, path string) (string, error) {
	f.log.add("classifier")
	f.paths = append(f.paths, path)
	return f.result, f.err
}

// fakeIcons knows a fixed set of images and counts the lookups per image
type fakeIcons struct {
	mu      sync.Mutex
	known   map[string]bool
	lookups map[string]int
}

func newFakeIcons(images ...string) *fakeIcons {
	f := &fakeIcons{known: map[string]bool{}, lookups: map[string]int{}}
	for _, img := range images {
		f.known[img] = true
	}
	return f
}

func (f *fakeIcons) ImagePath(app, image string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lookups[image]++
	if !f.known[image] {
		return "", util.NewSilentWrapErrorf(public.ErrIconNotExist, "no %s", image)
	}
	return "/img/" + app + "/" + image, nil
}

func (f *fakeIcons) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.lookups {
		n += c
	}
	return n
}

const testMappingDist = `{
	"_comment": "test data",
	"html": ["text/html", "text/plain"],
	"jpg": ["image/jpeg"],
	"pdf": ["application/pdf"],
	"svg": ["image/svg+xml", "text/plain"],
	"txt": ["text/plain"],
	"nulltype": [null]
}`

const testAliasesDist = `{
	"_comment": "test data",
	"application/x-a": "application/x-b",
	"application/x-b": "application/x-c",
	"httpd/unix-directory": "dir"
}`

func testData() *memoryData {
	return &memoryData{
		defaults: map[string]string{
			"mimetypemapping.dist.json": testMappingDist,
			"mimetypealiases.dist.json": testAliasesDist,
		},
		custom: map[string]string{},
	}
}

// testLogger returns a logger writing into a buffer
func testLogger() (*log.LoggerImpl, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return log.NewLoggerWithWriter(buf, log.WriterOption{Level: log.TRACE, Flags: log.Llevel}), buf
}

func newTestDetector(t *testing.T, opts Options) *Detector {
	if opts.Data == nil {
		opts.Data = testData()
	}
	if opts.Logger == nil {
		opts.Logger = testlogger.New(t)
	}
	if opts.TempDir == nil {
		opts.TempDir = tempdir.New(t.TempDir(), "detect")
	}
	return New(opts)
}

var (
	_ typesniffer.Sniffer  = (*fakeSniffer)(nil)
	_ typesniffer.Registry = (*fakeRegistry)(nil)
	_ public.IconResolver  = (*fakeIcons)(nil)
)

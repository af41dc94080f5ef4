// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package mimedetect

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"code.gitea.io/mimedetect/modules/tempdir"
	"code.gitea.io/mimedetect/modules/typesniffer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, name string, content []byte) string {
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, content, 0o644))
	return p
}

func TestDetectDirectory(t *testing.T) {
	calls := &callLog{}
	d := newTestDetector(t, Options{
		Sniffer:    &fakeSniffer{log: calls, result: "image/png"},
		Classifier: &fakeClassifier{log: calls, result: "image/png"},
	})

	dir := filepath.Join(t.TempDir(), "photos.jpg")
	require.NoError(t, os.Mkdir(dir, 0o755))
	assert.Equal(t, DirectoryType, d.Detect(dir))
	assert.Empty(t, calls.list())
}

func TestDetectExtensionWins(t *testing.T) {
	calls := &callLog{}
	d := newTestDetector(t, Options{
		Sniffer:    &fakeSniffer{log: calls, result: "image/png"},
		Registry:   &fakeRegistry{log: calls, result: "image/png"},
		Classifier: &fakeClassifier{log: calls, result: "image/png"},
	})

	p := writeTestFile(t, "report.pdf", []byte("not really a pdf"))
	assert.Equal(t, "application/pdf", d.Detect(p))
	assert.Empty(t, calls.list())
}

func TestDetectChainOrder(t *testing.T) {
	declined := typesniffer.ErrUnknownContent
	failed := errors.New("boom")

	cases := []struct {
		name       string
		sniffer    *fakeSniffer
		registry   *fakeRegistry
		classifier *fakeClassifier
		expected   string
		calls      []string
	}{
		{
			name:       "sniffer answers",
			sniffer:    &fakeSniffer{result: "Image/PNG; charset=binary"},
			registry:   &fakeRegistry{result: "image/gif"},
			classifier: &fakeClassifier{result: "image/jpeg"},
			expected:   "image/png",
			calls:      []string{"sniffer"},
		},
		{
			name:       "sniffer returns only parameters",
			sniffer:    &fakeSniffer{result: "; charset=binary"},
			classifier: &fakeClassifier{result: "image/jpeg"},
			expected:   OctetStream,
			calls:      []string{"sniffer"},
		},
		{
			name:       "registry answers",
			sniffer:    &fakeSniffer{err: declined},
			registry:   &fakeRegistry{result: "image/gif"},
			classifier: &fakeClassifier{result: "image/jpeg"},
			expected:   "image/gif",
			calls:      []string{"sniffer", "registry"},
		},
		{
			name:       "classifier answers",
			sniffer:    &fakeSniffer{err: failed},
			registry:   &fakeRegistry{err: declined},
			classifier: &fakeClassifier{result: "image/jpeg"},
			expected:   "image/jpeg",
			calls:      []string{"sniffer", "registry", "classifier"},
		},
		{
			name:       "registry reports the generic type",
			sniffer:    &fakeSniffer{err: declined},
			registry:   &fakeRegistry{result: OctetStream},
			classifier: &fakeClassifier{result: "text/x-shellscript"},
			expected:   "text/x-shellscript",
			calls:      []string{"sniffer", "registry", "classifier"},
		},
		{
			name:       "classifier prints nothing",
			sniffer:    &fakeSniffer{err: declined},
			registry:   &fakeRegistry{err: failed},
			classifier: &fakeClassifier{result: ""},
			expected:   OctetStream,
			calls:      []string{"sniffer", "registry", "classifier"},
		},
		{
			name:       "classifier fails",
			sniffer:    &fakeSniffer{err: declined},
			classifier: &fakeClassifier{err: failed},
			expected:   OctetStream,
			calls:      []string{"sniffer", "classifier"},
		},
		{
			name:     "nothing available",
			expected: OctetStream,
		},
	}

	p := writeTestFile(t, "blob", []byte{0x00, 0x01, 0x02})
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			calls := &callLog{}
			opts := Options{}
			if c.sniffer != nil {
				c.sniffer.log = calls
				opts.Sniffer = c.sniffer
			}
			if c.registry != nil {
				c.registry.log = calls
				opts.Registry = c.registry
			}
			if c.classifier != nil {
				c.classifier.log = calls
				opts.Classifier = c.classifier
			}
			d := newTestDetector(t, opts)
			assert.Equal(t, c.expected, d.Detect(p))
			assert.Equal(t, c.calls, calls.list())
		})
	}
}

func TestDetectWrappedPath(t *testing.T) {
	calls := &callLog{}
	d := newTestDetector(t, Options{
		Sniffer:    &fakeSniffer{log: calls, err: typesniffer.ErrUnknownContent},
		Registry:   &fakeRegistry{log: calls, result: "image/gif"},
		Classifier: &fakeClassifier{log: calls, result: "image/jpeg"},
	})

	assert.Equal(t, OctetStream, d.Detect("file:///data/blob"))
	assert.Equal(t, []string{"sniffer"}, calls.list())

	// the extension still counts for wrapped paths
	assert.Equal(t, "application/pdf", d.Detect("file:///data/report.pdf"))
}

func TestDetectClassifierGetsPath(t *testing.T) {
	calls := &callLog{}
	classifier := &fakeClassifier{log: calls, result: "text/plain"}
	d := newTestDetector(t, Options{Classifier: classifier})

	p := writeTestFile(t, "it's a file", []byte("hello"))
	assert.Equal(t, "text/plain", d.Detect(p))
	assert.Equal(t, []string{p}, classifier.paths)
}

func TestDetectString(t *testing.T) {
	calls := &callLog{}
	d := newTestDetector(t, Options{
		Sniffer:    &fakeSniffer{log: calls, result: "text/plain; charset=utf-8"},
		Classifier: &fakeClassifier{log: calls, result: "image/jpeg"},
	})
	assert.Equal(t, "text/plain", d.DetectString([]byte("hello")))
	assert.Equal(t, []string{"sniffer-bytes"}, calls.list())

	calls = &callLog{}
	d = newTestDetector(t, Options{
		Sniffer:    &fakeSniffer{log: calls, err: typesniffer.ErrUnknownContent},
		Classifier: &fakeClassifier{log: calls, result: "image/jpeg"},
	})
	assert.Equal(t, OctetStream, d.DetectString([]byte{0x00}))
	assert.Equal(t, []string{"sniffer-bytes"}, calls.list())
}

func TestDetectStringSpillsToTempFile(t *testing.T) {
	var spilled []byte
	classifier := &spyClassifier{fn: func(p string) (string, error) {
		var err error
		spilled, err = os.ReadFile(p)
		return "text/plain", err
	}}
	tmp := t.TempDir()
	d := newTestDetector(t, Options{Classifier: classifier, TempDir: tempdir.New(tmp, "detect")})

	data := []byte(strings.Repeat("x", spillSize+100))
	assert.Equal(t, "text/plain", d.DetectString(data))
	assert.Len(t, spilled, spillSize)

	// the temporary file is removed again
	entries, err := os.ReadDir(filepath.Join(tmp, "detect"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDetectReader(t *testing.T) {
	calls := &callLog{}
	d := newTestDetector(t, Options{Sniffer: &fakeSniffer{log: calls, result: "image/png"}})

	ct, err := d.DetectReader("upload.pdf", strings.NewReader("data"))
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", ct)
	assert.Empty(t, calls.list())

	ct, err = d.DetectReader("upload", strings.NewReader("\x89PNG"))
	require.NoError(t, err)
	assert.Equal(t, "image/png", ct)
	assert.Equal(t, []string{"sniffer-bytes"}, calls.list())
}

func TestDetectWithRealSniffer(t *testing.T) {
	d := newTestDetector(t, Options{Sniffer: typesniffer.MagicSniffer{}})

	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")
	p := writeTestFile(t, "picture", png)
	assert.Equal(t, "image/png", d.Detect(p))
	assert.Equal(t, "image/png", d.DetectString(png))
	assert.Equal(t, "text/plain", d.DetectString([]byte("just some text\n")))
}

type spyClassifier struct {
	fn func(path string) (string, error)
}

func (s *spyClassifier) Classify(ctx context.Context, path string) (string, error) {
	return s.fn(path)
}

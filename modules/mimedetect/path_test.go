// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package mimedetect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtensionOf(t *testing.T) {
	cases := map[string]string{
		"a.pdf":                                  "pdf",
		"A.PDF":                                  "pdf",
		"dir/sub/a.tar.gz":                       "gz",
		`C:\Users\x\photo.JPG`:                   "jpg",
		"report.v1508946057.pdf":                 "pdf",
		"report.pdf.v1508946057":                 "pdf",
		"report.pdf.ocTransferId2057600214.part": "pdf",
		"report.pdf.part":                        "pdf",
		"upload.ocTransferId2057600214.part":     "",
		".bashrc":                                "",
		"..hidden":                               "",
		".hidden.txt":                            "txt",
		"noext":                                  "",
		"":                                       "",
		"dir.with.dots/noext":                    "",
		"trailing/slash.txt/":                    "txt",
	}
	for input, expected := range cases {
		assert.Equal(t, expected, extensionOf(input), "input: %q", input)
	}
}

func TestDetectPath(t *testing.T) {
	d := newTestDetector(t, Options{})

	assert.Equal(t, "application/pdf", d.DetectPath("report.v1508946057.pdf"))
	assert.Equal(t, "application/pdf", d.DetectPath("report.pdf.v1508946057"))
	assert.Equal(t, "application/pdf", d.DetectPath("report.pdf.ocTransferId2057600214.part"))
	assert.Equal(t, OctetStream, d.DetectPath("upload.ocTransferId2057600214.part"))
	assert.Equal(t, OctetStream, d.DetectPath(".bashrc"))
	assert.Equal(t, OctetStream, d.DetectPath("noext"))
	assert.Equal(t, "text/plain", d.DetectPath(".notes.TXT"))
	assert.Equal(t, "image/jpeg", d.DetectPath("/var/data/photo.jpg"))
	assert.Equal(t, OctetStream, d.DetectPath("archive.unknownext"))
	// an entry without a primary type is unknown
	assert.Equal(t, OctetStream, d.DetectPath("x.nulltype"))
}

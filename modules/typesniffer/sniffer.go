// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package typesniffer

import (
	"fmt"
	"os"

	"code.gitea.io/mimedetect/modules/setting"
	"code.gitea.io/mimedetect/modules/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/h2non/filetype"
)

// OctetStream is the type reported when the content could not be identified
const OctetStream = "application/octet-stream"

// ErrUnknownContent is returned by a sniffer which could not identify the content.
// The detection chain treats it as "declined" and moves on.
var ErrUnknownContent = util.NewNotExistErrorf("content type could not be identified")

// FileSniffer inspects the leading bytes of a file.
// The returned MIME string may carry parameters, eg: "text/plain; charset=utf-8".
type FileSniffer interface {
	SniffFile(path string) (string, error)
}

// BufferSniffer inspects an in-memory buffer
type BufferSniffer interface {
	SniffBytes(data []byte) (string, error)
}

// Sniffer is a content sniffer which handles both files and buffers
type Sniffer interface {
	FileSniffer
	BufferSniffer
}

// NewSniffer returns the sniffer with the given name, nil means content sniffing is unavailable
func NewSniffer(name string) (Sniffer, error) {
	switch name {
	case setting.SnifferMimetype, "":
		return MagicSniffer{}, nil
	case setting.SnifferFiletype:
		return FiletypeSniffer{}, nil
	case setting.SnifferHTTP:
		return HTTPSniffer{}, nil
	case setting.SnifferNone:
		return nil, nil
	}
	return nil, util.NewInvalidArgumentErrorf("unknown content sniffer %q", name)
}

// MagicSniffer uses the magic number signatures of github.com/gabriel-vasile/mimetype
type MagicSniffer struct{}

func (MagicSniffer) SniffFile(path string) (string, error) {
	m, err := mimetype.DetectFile(path)
	if err != nil {
		return "", err
	}
	return magicResult(m)
}

func (MagicSniffer) SniffBytes(data []byte) (string, error) {
	return magicResult(mimetype.Detect(data))
}

func magicResult(m *mimetype.MIME) (string, error) {
	// the root of the mimetype tree means nothing matched
	if m == nil || m.Is(OctetStream) {
		return "", ErrUnknownContent
	}
	return m.String(), nil
}

// FiletypeSniffer uses github.com/h2non/filetype, it only knows binary formats
type FiletypeSniffer struct{}

func (FiletypeSniffer) SniffFile(path string) (string, error) {
	kind, err := filetype.MatchFile(path)
	if err != nil {
		return "", err
	}
	if kind == filetype.Unknown {
		return "", ErrUnknownContent
	}
	return kind.MIME.Value, nil
}

func (FiletypeSniffer) SniffBytes(data []byte) (string, error) {
	kind, err := filetype.Match(data)
	if err != nil {
		return "", err
	}
	if kind == filetype.Unknown {
		return "", ErrUnknownContent
	}
	return kind.MIME.Value, nil
}

// HTTPSniffer uses the WHATWG sniffing algorithm of net/http extended with SVG detection
type HTTPSniffer struct{}

func (HTTPSniffer) SniffFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	st, err := DetectContentTypeFromReader(f)
	if err != nil {
		return "", fmt.Errorf("unable to sniff %s: %w", path, err)
	}
	return httpResult(st)
}

func (HTTPSniffer) SniffBytes(data []byte) (string, error) {
	return httpResult(DetectContentType(data))
}

func httpResult(st SniffedType) (string, error) {
	if st.Mime() == OctetStream {
		return "", ErrUnknownContent
	}
	return st.String(), nil
}

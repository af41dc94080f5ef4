// Copyright 2025 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnmarshalMixedArray(t *testing.T) {
	var m map[string]any
	err := Unmarshal([]byte(`{"svg": ["image/svg+xml", "text/plain"], "txt": ["text/plain"], "_comment": "x"}`), &m)
	assert.NoError(t, err)
	assert.Len(t, m, 3)
	assert.Equal(t, []any{"image/svg+xml", "text/plain"}, m["svg"])
	assert.Equal(t, "x", m["_comment"])
}

func TestMarshalIndent(t *testing.T) {
	b, err := MarshalIndent(map[string]string{"a": "b"}, "", "  ")
	assert.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": \"b\"\n}", string(b))
}

func TestValid(t *testing.T) {
	assert.True(t, Valid([]byte(`{"a": 1}`)))
	assert.False(t, Valid([]byte(`{"a": `)))
}

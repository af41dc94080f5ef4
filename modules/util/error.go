// Copyright 2022 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package util

import (
	"errors"
	"fmt"
)

// Common Errors forming the base of our error system
//
// Errors returned by the detector and its capabilities can be tested
// against these errors using errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotExist        = errors.New("resource does not exist")
	ErrUnavailable     = errors.New("capability unavailable")
)

// SilentWrap provides a simple wrapper for a wrapped error where the wrapped error message plays no part in the error message
type SilentWrap struct {
	Message string
	Err     error
}

// Error returns the message
func (w SilentWrap) Error() string {
	return w.Message
}

// Unwrap returns the underlying error
func (w SilentWrap) Unwrap() error {
	return w.Err
}

// NewSilentWrapErrorf returns an error that formats as the given text but unwraps as the provided error
func NewSilentWrapErrorf(unwrap error, message string, args ...any) error {
	if len(args) == 0 {
		return SilentWrap{Message: message, Err: unwrap}
	}
	return SilentWrap{Message: fmt.Sprintf(message, args...), Err: unwrap}
}

// NewInvalidArgumentErrorf returns an error that formats as the given text but unwraps as an ErrInvalidArgument
func NewInvalidArgumentErrorf(message string, args ...any) error {
	return NewSilentWrapErrorf(ErrInvalidArgument, message, args...)
}

// NewNotExistErrorf returns an error that formats as the given text but unwraps as an ErrNotExist
func NewNotExistErrorf(message string, args ...any) error {
	return NewSilentWrapErrorf(ErrNotExist, message, args...)
}

// NewUnavailableErrorf returns an error that formats as the given text but unwraps as an ErrUnavailable
func NewUnavailableErrorf(message string, args ...any) error {
	return NewSilentWrapErrorf(ErrUnavailable, message, args...)
}

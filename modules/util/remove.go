// Copyright 2020 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package util

import (
	"errors"
	"os"
	"syscall"
	"time"
)

const windowsSharingViolationError syscall.Errno = 32

func isRetryableRemoveError(err error) bool {
	var pathErr *os.PathError
	if !errors.As(err, &pathErr) {
		return false
	}
	switch pathErr.Err {
	case syscall.EBUSY, syscall.ENOTEMPTY, syscall.EPERM, syscall.EMFILE, syscall.ENFILE, windowsSharingViolationError:
		return true
	}
	return false
}

// Remove removes the named file or (empty) directory with at most 5 attempts.
// A missing file is not an error.
func Remove(name string) error {
	var err error
	for i := 0; i < 5; i++ {
		err = os.Remove(name)
		if err == nil || errors.Is(err, os.ErrNotExist) {
			return nil
		}
		if !isRetryableRemoveError(err) {
			break
		}
		// try again
		<-time.After(100 * time.Millisecond)
	}
	return err
}

// RemoveAll removes the named file or directory with at most 5 attempts.
func RemoveAll(name string) error {
	var err error
	for i := 0; i < 5; i++ {
		err = os.RemoveAll(name)
		if err == nil || !isRetryableRemoveError(err) {
			break
		}
		// try again
		<-time.After(100 * time.Millisecond)
	}
	return err
}

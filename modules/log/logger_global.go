// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"os"
	"sync/atomic"
)

var defaultLogger atomic.Pointer[LoggerImpl]

func init() {
	defaultLogger.Store(NewConsoleLogger(INFO))
}

// GetLogger returns the default logger
func GetLogger() *LoggerImpl {
	return defaultLogger.Load()
}

// SetDefaultLogger replaces the default logger, the previous one is returned
func SetDefaultLogger(l *LoggerImpl) *LoggerImpl {
	return defaultLogger.Swap(l)
}

func GetLevel() Level {
	return GetLogger().GetLevel()
}

func IsTrace() bool {
	return GetLevel() <= TRACE
}

func IsDebug() bool {
	return GetLevel() <= DEBUG
}

func Trace(format string, v ...any) {
	Log(1, TRACE, format, v...)
}

func Debug(format string, v ...any) {
	Log(1, DEBUG, format, v...)
}

func Info(format string, v ...any) {
	Log(1, INFO, format, v...)
}

func Warn(format string, v ...any) {
	Log(1, WARN, format, v...)
}

func Error(format string, v ...any) {
	Log(1, ERROR, format, v...)
}

func Critical(format string, v ...any) {
	Log(1, ERROR, format, v...)
}

var OsExiter = os.Exit

// Fatal records fatal log and exit process
func Fatal(format string, v ...any) {
	Log(1, FATAL, format, v...)
	OsExiter(1)
}

// Log writes a log event to the default logger, skip is relative to the caller of Log
func Log(skip int, level Level, format string, v ...any) {
	GetLogger().Log(skip+1, level, format, v...)
}


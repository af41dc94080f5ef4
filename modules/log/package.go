// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package log provides logging capabilities for mimedetect.
// Concepts:
//
// * Logger: a Logger provides logging functions and writes formatted events to its output
//
// * Event: a single log record (level, caller, message), formatted according to the logger flags
//
// Call graph:
// -> log.Info()
// -> LoggerImpl.Log()
// -> prepare log event, format it with EventFormatText
// -> write the formatted bytes to the output (console by default)
package log

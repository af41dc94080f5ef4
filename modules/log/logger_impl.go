// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// LoggerImpl writes formatted events to a single output
type LoggerImpl struct {
	mu     sync.Mutex
	out    io.Writer
	level  atomic.Int32
	flags  int
	prefix string

	colorize bool
}

var _ Logger = (*LoggerImpl)(nil)

// WriterOption configures the output of a LoggerImpl
type WriterOption struct {
	Level    Level
	Flags    int
	Prefix   string
	Colorize bool
}

// NewLoggerWithWriter creates a logger writing to out
func NewLoggerWithWriter(out io.Writer, opt WriterOption) *LoggerImpl {
	l := &LoggerImpl{out: out, flags: opt.Flags, prefix: opt.Prefix, colorize: opt.Colorize}
	if l.flags == 0 {
		l.flags = LstdFlags
	}
	if opt.Level == UNDEFINED {
		opt.Level = INFO
	}
	l.level.Store(int32(opt.Level))
	return l
}

// NewConsoleLogger creates a logger writing to stderr, colorized when stderr is a terminal
func NewConsoleLogger(level Level) *LoggerImpl {
	return NewLoggerWithWriter(os.Stderr, WriterOption{Level: level, Colorize: CanColorStderr})
}

// SetLevel changes the minimal level of the events to write
func (l *LoggerImpl) SetLevel(level Level) {
	l.level.Store(int32(level))
}

// GetLevel returns the minimal level of all writers
func (l *LoggerImpl) GetLevel() Level {
	return Level(l.level.Load())
}

// LevelEnabled returns true if the level is enabled
func (l *LoggerImpl) LevelEnabled(level Level) bool {
	return level >= l.GetLevel()
}

// Log prepares the log event, if the level matches, the event will be written to the output
func (l *LoggerImpl) Log(skip int, level Level, format string, logArgs ...any) {
	if !l.LevelEnabled(level) {
		return
	}

	event := &Event{
		Time:   time.Now(),
		Level:  level,
		Caller: "?()",
	}

	pc, filename, line, ok := runtime.Caller(skip + 1)
	if ok {
		fn := runtime.FuncForPC(pc)
		if fn != nil {
			event.Caller = fn.Name() + "()"
		}
	}
	event.Filename, event.Line = filename, line

	// freeze the LogStringer arguments, they are formatted right away
	for i, v := range logArgs {
		if s, ok := v.(LogStringer); ok {
			logArgs[i] = s.LogString()
		}
	}
	if len(logArgs) == 0 {
		event.MsgSimpleText = format
	} else {
		event.MsgSimpleText = fmt.Sprintf(format, logArgs...)
	}

	buf := EventFormatText(l.flags, l.colorize, l.prefix, event)
	l.mu.Lock()
	_, _ = l.out.Write(buf)
	l.mu.Unlock()
}

func (l *LoggerImpl) Trace(format string, v ...any) {
	l.Log(1, TRACE, format, v...)
}

func (l *LoggerImpl) Debug(format string, v ...any) {
	l.Log(1, DEBUG, format, v...)
}

func (l *LoggerImpl) Info(format string, v ...any) {
	l.Log(1, INFO, format, v...)
}

func (l *LoggerImpl) Warn(format string, v ...any) {
	l.Log(1, WARN, format, v...)
}

func (l *LoggerImpl) Error(format string, v ...any) {
	l.Log(1, ERROR, format, v...)
}

func (l *LoggerImpl) Critical(format string, v ...any) {
	l.Log(1, ERROR, format, v...)
}

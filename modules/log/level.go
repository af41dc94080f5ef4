// Copyright 2019 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import "strings"

// Level is the severity of an event, events below the logger level are dropped
type Level int

const (
	UNDEFINED Level = iota
	TRACE
	DEBUG
	INFO
	WARN
	ERROR
	FATAL
	NONE
)

var levelNames = [...]string{
	UNDEFINED: "undefined",
	TRACE:     "trace",
	DEBUG:     "debug",
	INFO:      "info",
	WARN:      "warn",
	ERROR:     "error",
	FATAL:     "fatal",
	NONE:      "none",
}

func (l Level) String() string {
	if l < UNDEFINED || l > NONE {
		return "info"
	}
	return levelNames[l]
}

// ColorAttributes returns the console colors of the level initial and name
func (l Level) ColorAttributes() []ColorAttribute {
	switch l {
	case TRACE:
		return []ColorAttribute{Bold, FgCyan}
	case DEBUG:
		return []ColorAttribute{Bold, FgBlue}
	case INFO:
		return []ColorAttribute{Bold, FgGreen}
	case WARN:
		return []ColorAttribute{Bold, FgYellow}
	case ERROR:
		return []ColorAttribute{Bold, FgRed}
	case FATAL:
		return []ColorAttribute{Bold, BgRed}
	}
	return []ColorAttribute{Reset}
}

// LevelFromString parses the LEVEL setting, unknown names fall back to INFO
func LevelFromString(level string) Level {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "warning" {
		return WARN
	}
	for l, name := range levelNames {
		if name == level {
			return Level(l)
		}
	}
	return INFO
}

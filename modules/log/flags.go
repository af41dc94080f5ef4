// Copyright 2019 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import "strings"

// Prefix flags of the text event format, see EventFormatText
const (
	Ldate          = 1 << iota // 2009/01/23
	Ltime                      // 01:23:23
	Lmicroseconds              // 01:23:23.123123, needs Ltime
	Llongfile                  // /a/logger/c/d.go:23
	Lshortfile                 // d.go:23
	Lfuncname                  // runtime.Caller()
	Lshortfuncname             // Caller()
	LUTC                       // date and time in UTC
	Llevelinitial              // [I]
	Llevel                     // [INFO]

	// Lmedfile keeps the last 20 characters of the file name
	Lmedfile = Lshortfile | Llongfile

	LstdFlags = Ldate | Ltime | Lmedfile | Lshortfuncname | Llevelinitial
)

// FlagsFromString parses the comma separated FLAGS setting, unknown names are ignored
func FlagsFromString(from string) int {
	flags := 0
	for _, name := range strings.Split(strings.ToLower(from), ",") {
		switch strings.TrimSpace(name) {
		case "date":
			flags |= Ldate
		case "time":
			flags |= Ltime
		case "microseconds":
			flags |= Lmicroseconds
		case "longfile":
			flags |= Llongfile
		case "shortfile":
			flags |= Lshortfile
		case "medfile":
			flags |= Lmedfile
		case "funcname":
			flags |= Lfuncname
		case "shortfuncname":
			flags |= Lshortfuncname
		case "utc":
			flags |= LUTC
		case "levelinitial":
			flags |= Llevelinitial
		case "level":
			flags |= Llevel
		case "stdflags":
			flags |= LstdFlags
		}
	}
	return flags
}

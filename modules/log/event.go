// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"bytes"
	"strings"
	"time"
)

// Event represents a logging event
type Event struct {
	Time time.Time

	Caller   string
	Filename string
	Line     int

	Level Level

	MsgSimpleText string
}

// Copy of cheap integer to fixed-width decimal to ascii from logger.
func itoa(buf []byte, i, wid int) []byte {
	var s [20]byte
	bp := len(s) - 1
	neg := false
	if i < 0 {
		i, neg = -i, true
	}
	for i >= 10 || wid > 1 {
		wid--
		q := i / 10
		s[bp] = byte('0' + i - q*10)
		bp--
		i = q
	}
	// i < 10
	s[bp] = byte('0' + i)
	if neg {
		bp--
		s[bp] = '-'
	}
	return append(buf, s[bp:]...)
}

// EventFormatText formats the event as a single text line (continuation lines are indented)
func EventFormatText(flags int, colorize bool, prefix string, event *Event) []byte {
	var buf []byte
	buf = append(buf, prefix...)

	t := event.Time
	if flags&(Ldate|Ltime|Lmicroseconds) != 0 {
		if colorize {
			buf = append(buf, fgCyanBytes...)
		}
		if flags&LUTC != 0 {
			t = t.UTC()
		}
		if flags&Ldate != 0 {
			year, month, day := t.Date()
			buf = itoa(buf, year, 4)
			buf = append(buf, '/')
			buf = itoa(buf, int(month), 2)
			buf = append(buf, '/')
			buf = itoa(buf, day, 2)
			buf = append(buf, ' ')
		}
		if flags&(Ltime|Lmicroseconds) != 0 {
			hour, minute, sec := t.Clock()
			buf = itoa(buf, hour, 2)
			buf = append(buf, ':')
			buf = itoa(buf, minute, 2)
			buf = append(buf, ':')
			buf = itoa(buf, sec, 2)
			if flags&Lmicroseconds != 0 {
				buf = append(buf, '.')
				buf = itoa(buf, t.Nanosecond()/1e3, 6)
			}
			buf = append(buf, ' ')
		}
		if colorize {
			buf = append(buf, resetBytes...)
		}
	}

	if flags&(Lshortfile|Llongfile) != 0 {
		if colorize {
			buf = append(buf, fgGreenBytes...)
		}
		file := event.Filename
		if flags&Lmedfile == Lmedfile {
			startIndex := len(file) - 20
			if startIndex > 0 {
				file = "..." + file[startIndex:]
			}
		} else if flags&Lshortfile != 0 {
			startIndex := strings.LastIndexByte(file, '/')
			if startIndex > 0 && startIndex < len(file) {
				file = file[startIndex+1:]
			}
		}
		buf = append(buf, file...)
		buf = append(buf, ':')
		buf = itoa(buf, event.Line, -1)
		if flags&(Lfuncname|Lshortfuncname) != 0 {
			buf = append(buf, ':')
		} else {
			if colorize {
				buf = append(buf, resetBytes...)
			}
			buf = append(buf, ' ')
		}
	}

	if flags&(Lfuncname|Lshortfuncname) != 0 {
		if colorize {
			buf = append(buf, fgGreenBytes...)
		}
		funcName := event.Caller
		if flags&Lshortfuncname != 0 {
			lastIndex := strings.LastIndexByte(funcName, '.')
			if lastIndex > 0 && len(funcName) > lastIndex+1 {
				funcName = funcName[lastIndex+1:]
			}
		}
		buf = append(buf, funcName...)
		if colorize {
			buf = append(buf, resetBytes...)
		}
		buf = append(buf, ' ')
	}

	if flags&(Llevel|Llevelinitial) != 0 {
		level := strings.ToUpper(event.Level.String())
		if colorize {
			buf = append(buf, ColorBytes(event.Level.ColorAttributes()...)...)
		}
		buf = append(buf, '[')
		if flags&Llevelinitial != 0 {
			buf = append(buf, level[0])
		} else {
			buf = append(buf, level...)
		}
		buf = append(buf, ']')
		if colorize {
			buf = append(buf, resetBytes...)
		}
		buf = append(buf, ' ')
	}

	// Now we need to prevent log spoofing:
	msg := strings.TrimSuffix(event.MsgSimpleText, "\n")
	lines := bytes.Split([]byte(msg), []byte("\n"))
	buf = append(buf, lines[0]...)
	for _, line := range lines[1:] {
		buf = append(buf, "\n\t"...)
		buf = append(buf, line...)
	}
	buf = append(buf, '\n')
	return buf
}

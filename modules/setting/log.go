// Copyright 2019 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"os"

	"code.gitea.io/mimedetect/modules/log"
)

// Log settings
var Log = struct {
	Level    log.Level
	Flags    int
	Colorize bool
}{
	Level: log.INFO,
	Flags: log.LstdFlags,
}

func loadLogFrom(rootCfg ConfigProvider) {
	sec := rootCfg.Section("log")
	Log.Level = log.LevelFromString(sec.Key("LEVEL").MustString("info"))
	Log.Flags = log.LstdFlags
	if flags := sec.Key("FLAGS").MustString(""); flags != "" {
		Log.Flags = log.FlagsFromString(flags)
	}
	Log.Colorize = sec.Key("COLORIZE").MustBool(log.CanColorStderr)

	log.SetDefaultLogger(log.NewLoggerWithWriter(os.Stderr, log.WriterOption{
		Level:    Log.Level,
		Flags:    Log.Flags,
		Colorize: Log.Colorize,
	}))
}

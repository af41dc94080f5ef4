// Copyright 2018 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd provides subcommands to the mimedetect binary - detect, icon, etc.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"code.gitea.io/mimedetect/modules/log"
	"code.gitea.io/mimedetect/modules/mimedetect"
	"code.gitea.io/mimedetect/modules/setting"

	"github.com/urfave/cli/v2"
)

// initDetector loads the settings and creates a detector, a broken bundled data set is fatal
func initDetector(c *cli.Context) (*mimedetect.Detector, error) {
	if err := setting.LoadSettings(); err != nil {
		return nil, err
	}
	prepareConsoleLoggerLevel(c)
	log.Debug("Loaded settings from %s", setting.CustomConf)

	d, err := mimedetect.NewFromSettings()
	if err != nil {
		return nil, fmt.Errorf("unable to create the detector: %w", err)
	}
	if err := d.EnsureMappingsLoaded(); err != nil {
		return nil, fmt.Errorf("unable to load the mimetype mapping: %w", err)
	}
	return d, nil
}

func installSignals() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		// install notify
		signalChannel := make(chan os.Signal, 1)

		signal.Notify(
			signalChannel,
			syscall.SIGINT,
			syscall.SIGTERM,
		)
		select {
		case <-signalChannel:
		case <-ctx.Done():
		}
		cancel()
		signal.Reset()
	}()

	return ctx, cancel
}

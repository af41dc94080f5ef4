// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"
)

func cmdDetect() *cli.Command {
	return &cli.Command{
		Name:        "detect",
		Usage:       "Detect the MIME type of files",
		Description: "By default only the file name is used. With --content the content is sniffed when the name is not conclusive.",
		ArgsUsage:   "<path>...",
		Action:      runDetect,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "content",
				Usage: "Sniff the content, ask the OS registry and the external classifier if the name is not conclusive",
			},
			&cli.BoolFlag{
				Name:  "secure",
				Usage: "Also print the type which is safe to send to clients",
			},
		},
	}
}

func cmdSniff() *cli.Command {
	return &cli.Command{
		Name:        "sniff",
		Usage:       "Detect the MIME type of the standard input",
		Description: "The leading bytes of the standard input are sniffed, a known extension of --name wins.",
		Action:      runSniff,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "name",
				Usage: "File name of the input",
			},
			&cli.BoolFlag{
				Name:  "secure",
				Usage: "Also print the type which is safe to send to clients",
			},
		},
	}
}

func runDetect(c *cli.Context) error {
	if !c.Args().Present() {
		return errors.New("no path given")
	}
	d, err := initDetector(c)
	if err != nil {
		return err
	}

	for _, p := range c.Args().Slice() {
		var mimetype string
		if c.Bool("content") {
			mimetype = d.DetectContext(c.Context, p)
		} else {
			mimetype = d.DetectPath(p)
		}
		if c.Bool("secure") {
			_, _ = fmt.Fprintf(c.App.Writer, "%s\t%s\t%s\n", p, mimetype, d.SecureMimeType(mimetype))
		} else {
			_, _ = fmt.Fprintf(c.App.Writer, "%s\t%s\n", p, mimetype)
		}
	}
	return nil
}

func runSniff(c *cli.Context) error {
	d, err := initDetector(c)
	if err != nil {
		return err
	}

	mimetype, err := d.DetectReader(c.String("name"), c.App.Reader)
	if err != nil {
		return fmt.Errorf("unable to read the input: %w", err)
	}
	if c.Bool("secure") {
		_, _ = fmt.Fprintf(c.App.Writer, "%s\t%s\n", mimetype, d.SecureMimeType(mimetype))
	} else {
		_, _ = fmt.Fprintln(c.App.Writer, mimetype)
	}
	return nil
}

// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"

	"code.gitea.io/mimedetect/modules/json"

	"github.com/urfave/cli/v2"
)

func cmdIcon() *cli.Command {
	return &cli.Command{
		Name:      "icon",
		Usage:     "Print the icon path of MIME types",
		ArgsUsage: "<mimetype>...",
		Action:    runIcon,
	}
}

func cmdMappings() *cli.Command {
	return &cli.Command{
		Name:   "mappings",
		Usage:  "Dump the merged extension mapping as JSON",
		Action: runMappings,
	}
}

func cmdAliases() *cli.Command {
	return &cli.Command{
		Name:   "aliases",
		Usage:  "Dump the merged MIME type aliases as JSON",
		Action: runAliases,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "default-only",
				Usage: "Only dump the bundled aliases, without custom overrides",
			},
		},
	}
}

func runIcon(c *cli.Context) error {
	if !c.Args().Present() {
		return errors.New("no mimetype given")
	}
	d, err := initDetector(c)
	if err != nil {
		return err
	}

	for _, mimetype := range c.Args().Slice() {
		icon, err := d.MimeTypeIcon(mimetype)
		if err != nil {
			return fmt.Errorf("unable to find the icon of %s: %w", mimetype, err)
		}
		_, _ = fmt.Fprintf(c.App.Writer, "%s\t%s\n", mimetype, icon)
	}
	return nil
}

func runMappings(c *cli.Context) error {
	d, err := initDetector(c)
	if err != nil {
		return err
	}
	mappings, err := d.AllMappings()
	if err != nil {
		return err
	}
	return writeJSON(c, mappings)
}

func runAliases(c *cli.Context) error {
	d, err := initDetector(c)
	if err != nil {
		return err
	}

	var aliases map[string]string
	if c.Bool("default-only") {
		aliases, err = d.OnlyDefaultAliases()
	} else {
		aliases, err = d.AllAliases()
	}
	if err != nil {
		return err
	}
	return writeJSON(c, aliases)
}

func writeJSON(c *cli.Context, v any) error {
	out, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, string(out))
	return err
}

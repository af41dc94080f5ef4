// Copyright 2026 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package process

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"code.gitea.io/mimedetect/modules/util"

	"github.com/kballard/go-shellquote"
)

// Classifier runs an external content classification utility for a path
type Classifier interface {
	Classify(ctx context.Context, path string) (string, error)
}

// CommandClassifier runs a command like "file -b --mime-type" with the path appended
// and reads the MIME type from the first line of its output.
type CommandClassifier struct {
	manager *Manager
	argv    []string
	timeout time.Duration
}

// NewCommandClassifier parses the command line and checks the executable exists.
// It returns an error wrapping util.ErrUnavailable if the command can not be used.
func NewCommandClassifier(command string, timeout time.Duration) (*CommandClassifier, error) {
	argv, err := shellquote.Split(command)
	if err != nil {
		return nil, util.NewInvalidArgumentErrorf("invalid classifier command %q: %v", command, err)
	}
	if len(argv) == 0 {
		return nil, util.NewUnavailableErrorf("no classifier command configured")
	}
	if _, err := exec.LookPath(argv[0]); err != nil {
		return nil, util.NewUnavailableErrorf("classifier %q is not executable: %v", argv[0], err)
	}
	return &CommandClassifier{manager: GetManager(), argv: argv, timeout: timeout}, nil
}

// String returns the command line
func (c *CommandClassifier) String() string {
	return shellquote.Join(c.argv...)
}

// Classify runs the command, an empty reply is reported as an empty string.
// A path starting with "-" is passed as "./-..." so it is never read as an option.
func (c *CommandClassifier) Classify(ctx context.Context, path string) (string, error) {
	if strings.HasPrefix(path, "-") {
		path = "./" + path
	}
	args := append(c.argv[1:len(c.argv):len(c.argv)], path)
	desc := fmt.Sprintf("Classify: %s", shellquote.Join(append([]string{c.argv[0]}, args...)...))

	stdout, _, err := c.manager.ExecTimeout(ctx, c.timeout, desc, c.argv[0], args...)
	if err != nil {
		return "", err
	}
	line, _, _ := strings.Cut(stdout, "\n")
	return strings.TrimSpace(line), nil
}

// Copyright 2022 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package process

import (
	"bytes"
	"context"
	"os/exec"
	"time"
)

// DefaultTimeout is used when a non-positive timeout is given
const DefaultTimeout = 60 * time.Second

// ExecTimeout runs a command and waits for its completion up to the given timeout
// (or DefaultTimeout if timeout <= 0 is given).
// Returns its complete stdout and stderr
// outputs and an error, if any (including timeout)
func (pm *Manager) ExecTimeout(ctx context.Context, timeout time.Duration, desc, cmdName string, args ...string) (string, string, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	stdOut := new(bytes.Buffer)
	stdErr := new(bytes.Buffer)

	ctx, pid, finished := pm.AddContextTimeout(ctx, timeout, desc)
	defer finished()

	cmd := exec.CommandContext(ctx, cmdName, args...)
	cmd.Stdout = stdOut
	cmd.Stderr = stdErr
	// children holding the output pipes must not block Wait after the context is done
	cmd.WaitDelay = time.Second

	if err := cmd.Start(); err != nil {
		return "", "", err
	}

	err := cmd.Wait()
	if err != nil {
		err = &Error{
			PID:         pid,
			Description: desc,
			Err:         err,
			CtxErr:      ctx.Err(),
			Stdout:      stdOut.String(),
			Stderr:      stdErr.String(),
		}
	}

	return stdOut.String(), stdErr.String(), err
}

/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

//go:build linux || darwin || freebsd || netbsd || openbsd

package process

import (
	"os/exec"
	"syscall"
)

// configureProcessGroup starts the command in its own process group so that
// cancellation also reaches helpers it spawned (git-remote-https and friends).
func configureProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}

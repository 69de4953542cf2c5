/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package process

import "os/exec"

func configureProcessGroup(*exec.Cmd) {}

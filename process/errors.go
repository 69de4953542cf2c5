/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package process

import (
	"context"
	"fmt"
	"time"
)

// ToolError reports a non-zero exit from an external tool. Target is the
// path or (redacted) URL the step operated on.
type ToolError struct {
	Step     string
	Target   string
	ExitCode int
	// Output holds the combined stdout and stderr of the failed command. It
	// is deliberately left out of Error().
	Output string
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s %s: exit status %d", e.Step, e.Target, e.ExitCode)
}

// TimeoutError reports a command that was killed after exceeding its
// allotted time.
type TimeoutError struct {
	Command string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s: timed out after %s", e.Command, e.Timeout)
}

// Is lets errors.Is(err, context.DeadlineExceeded) match timeouts.
func (e *TimeoutError) Is(target error) bool {
	return target == context.DeadlineExceeded
}

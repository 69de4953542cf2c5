/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/chainguard-dev/clog"
	"golang.org/x/sync/semaphore"
)

// waitDelay bounds how long Run waits for output pipes to drain after the
// command has exited or been killed.
const waitDelay = 5 * time.Second

// Command describes a single invocation of an external tool.
type Command struct {
	// Name is the executable, resolved through PATH when it has no separator.
	Name string
	Args []string
	// Dir is the working directory of the command. Empty means the working
	// directory of the calling process.
	Dir string
	// Stdin, when non-empty, is fed to the command's standard input.
	Stdin []byte
	// Env holds extra KEY=VALUE pairs appended after the runner's environment.
	Env []string
}

// String renders the command line with credentials removed from any URL
// arguments. It is safe to log.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, c.Name)
	for _, arg := range c.Args {
		parts = append(parts, Redact(arg))
	}
	return strings.Join(parts, " ")
}

// Result is the outcome of a command that ran to completion.
type Result struct {
	ExitCode int
	// Output is stdout and stderr interleaved in the order they were written.
	Output string
}

// Check returns a *ToolError when the command exited non-zero.
func (r *Result) Check(step, target string) error {
	if r.ExitCode == 0 {
		return nil
	}
	return &ToolError{
		Step:     step,
		Target:   target,
		ExitCode: r.ExitCode,
		Output:   r.Output,
	}
}

// Runner executes external commands. A Runner is safe for concurrent use.
type Runner struct {
	timeout time.Duration
	sem     *semaphore.Weighted
	env     []string
}

// Option configures a Runner.
type Option func(*Runner)

// WithTimeout bounds every invocation. Commands still running when the
// timeout elapses are killed and Run returns a *TimeoutError.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		r.timeout = d
	}
}

// WithMaxConcurrency limits how many commands may run at once. Callers over
// the limit block until a slot frees up or their context is done. Values
// below one leave concurrency unbounded.
func WithMaxConcurrency(n int64) Option {
	return func(r *Runner) {
		if n > 0 {
			r.sem = semaphore.NewWeighted(n)
		}
	}
}

// WithEnv adds KEY=VALUE pairs to the environment of every command.
func WithEnv(kv ...string) Option {
	return func(r *Runner) {
		r.env = append(r.env, kv...)
	}
}

// New constructs a Runner.
func New(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes c to completion. A non-zero exit status is reported through
// Result.ExitCode with a nil error; errors are reserved for commands that
// could not be started, were cancelled, or timed out.
func (r *Runner) Run(ctx context.Context, c Command) (*Result, error) {
	if c.Name == "" {
		return nil, errors.New("command name cannot be empty")
	}

	display := c.String()
	log := clog.FromContext(ctx).With("command", display)
	if c.Dir != "" {
		log = log.With("dir", c.Dir)
	}

	if r.sem != nil {
		if err := r.sem.Acquire(ctx, 1); err != nil {
			return nil, fmt.Errorf("waiting to run %s: %w", display, err)
		}
		defer r.sem.Release(1)
	}

	runCtx := ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	var out bytes.Buffer
	cmd := exec.CommandContext(runCtx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Env = append(append(os.Environ(), r.env...), c.Env...)
	if c.Dir != "" {
		cmd.Env = append(cmd.Env, "PWD="+c.Dir)
	}
	cmd.Stdout = &out
	cmd.Stderr = &out
	cmd.WaitDelay = waitDelay
	if len(c.Stdin) > 0 {
		cmd.Stdin = bytes.NewReader(c.Stdin)
	}
	configureProcessGroup(cmd)

	label := metricLabel(c)
	log.Debug("Running command")
	start := time.Now()
	err := cmd.Run()
	runDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())

	var exitErr *exec.ExitError
	switch {
	case err == nil, errors.Is(err, exec.ErrWaitDelay):
	case ctx.Err() != nil:
		runOutcomes.WithLabelValues(label, "cancelled").Inc()
		return nil, fmt.Errorf("running %s: %w", display, ctx.Err())
	case runCtx.Err() != nil:
		runOutcomes.WithLabelValues(label, "timeout").Inc()
		log.Errorf("Command killed after exceeding %s", r.timeout)
		return nil, &TimeoutError{Command: display, Timeout: r.timeout}
	case errors.As(err, &exitErr):
	default:
		runOutcomes.WithLabelValues(label, "error").Inc()
		return nil, fmt.Errorf("running %s: %w", display, err)
	}

	res := &Result{
		ExitCode: cmd.ProcessState.ExitCode(),
		Output:   out.String(),
	}
	if res.ExitCode != 0 {
		runOutcomes.WithLabelValues(label, "failure").Inc()
		log.With("exit_code", res.ExitCode).Errorf("Command failed: %s", strings.TrimSpace(res.Output))
		return res, nil
	}
	runOutcomes.WithLabelValues(label, "success").Inc()
	return res, nil
}

// Redact strips the user-info component from arg when it is a URL. Any other
// argument is returned unchanged.
func Redact(arg string) string {
	if !strings.Contains(arg, "@") {
		return arg
	}
	u, err := url.Parse(arg)
	if err != nil || u.User == nil || u.Host == "" {
		return arg
	}
	u.User = nil
	return u.String()
}

// metricLabel names a command for metrics, e.g. "git clone".
func metricLabel(c Command) string {
	label := filepath.Base(c.Name)
	if len(c.Args) > 0 && !strings.HasPrefix(c.Args[0], "-") {
		label += " " + c.Args[0]
	}
	return label
}

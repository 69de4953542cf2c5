/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package main implements lintreview, the administrative front end for the
// lint review workspace tooling and its GitHub webhooks.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"chainguard.dev/lintreview/reconcilers/githubreconciler"
	"github.com/chainguard-dev/clog"
	"github.com/google/go-github/v84/github"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// failureExitCode is returned for every failed invocation.
const failureExitCode = 2

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// app holds the state shared by every subcommand.
type app struct {
	verbose     bool
	token       string
	callbackURL string

	cfg *githubreconciler.Config
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCommand(&app{})
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, err)
		return failureExitCode
	}
	return 0
}

func newRootCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "lintreview",
		Short:         "Manage lint review workspaces and webhooks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			logger := clog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			ctx := clog.WithLogger(cmd.Context(), logger)
			cmd.SetContext(ctx)

			cfg, err := githubreconciler.LoadConfig(ctx)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}

	a.addFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		registerCommand(a),
		unregisterCommand(a),
		orgRegisterCommand(a),
		orgUnregisterCommand(a),
		workspaceCommand(a),
	)
	return cmd
}

// addFlags registers the options that apply to every subcommand.
func (a *app) addFlags(flags *pflag.FlagSet) {
	flags.BoolVar(&a.verbose, "verbose", false, "Enable debug logging")
	flags.StringVarP(&a.token, "user", "u", "", "OAuth token to use instead of the configured credentials")
	flags.StringVar(&a.callbackURL, "callback-url", "", "Webhook callback URL (defaults to $CALLBACK_URL)")
}

// failure is what an invocation reports on stderr before exiting non-zero.
type failure struct {
	what string
	err  error
}

func (f *failure) Error() string {
	return fmt.Sprintf("%s failed: %v", f.what, f.err)
}

func (f *failure) Unwrap() error { return f.err }

// config returns the loaded configuration, narrowed to the -u token when
// one was given.
func (a *app) config() *githubreconciler.Config {
	if a.token != "" {
		return a.cfg.WithToken(a.token)
	}
	return a.cfg
}

func (a *app) client(ctx context.Context) (*github.Client, error) {
	return githubreconciler.NewClient(ctx, a.config())
}

func (a *app) callback() (string, error) {
	if a.callbackURL != "" {
		return a.callbackURL, nil
	}
	if a.cfg.CallbackURL != "" {
		return a.cfg.CallbackURL, nil
	}
	return "", &githubreconciler.ConfigurationError{
		Key:    "CALLBACK_URL",
		Reason: "set CALLBACK_URL or pass --callback-url",
	}
}

/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"fmt"
	"io"
	"strconv"

	"chainguard.dev/lintreview/process"
	"chainguard.dev/lintreview/reconcilers/githubreconciler/clonemanager"
	"chainguard.dev/lintreview/reconcilers/githubreconciler/stagemanager"
	"github.com/spf13/cobra"
)

func workspaceCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workspace",
		Short: "Inspect and manage review workspaces",
	}
	cmd.AddCommand(
		workspacePathCommand(a),
		workspaceCheckoutCommand(a),
		workspaceDestroyCommand(a),
		workspaceDiffCommand(a),
		workspaceStageCommand(a),
	)
	return cmd
}

func workspacePathCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path <owner> <repo> <number>",
		Short: "Print the workspace directory of a change",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := parseNumber(args[2])
			if err != nil {
				return &failure{what: "Workspace lookup", err: err}
			}
			path, err := clonemanager.Path(a.cfg.Workspace, args[0], args[1], number)
			if err != nil {
				return &failure{what: "Workspace lookup", err: err}
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func workspaceCheckoutCommand(a *app) *cobra.Command {
	var cloneURL string
	var private bool

	cmd := &cobra.Command{
		Use:   "checkout <owner> <repo> <number> <revision>",
		Short: "Clone or update a workspace and check out a revision",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			const what = "Workspace checkout"
			number, err := parseNumber(args[2])
			if err != nil {
				return &failure{what: what, err: err}
			}
			m, err := a.manager()
			if err != nil {
				return &failure{what: what, err: err}
			}
			ws, err := m.Materialize(cmd.Context(), args[0], args[1], number, clonemanager.CloneOptions{
				URL:         cloneURL,
				Revision:    args[3],
				Private:     private,
				Credentials: a.config(),
			})
			if err != nil {
				return &failure{what: what, err: err}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ws.Path, ws.SHA)
			return nil
		},
	}
	cmd.Flags().StringVar(&cloneURL, "url", "", "Clone URL of the repository")
	cmd.Flags().BoolVar(&private, "private", false, "Authenticate the clone with the configured credentials")
	_ = cmd.MarkFlagRequired("url")
	return cmd
}

func workspaceDestroyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "destroy <owner> <repo> <number>",
		Short: "Remove a workspace",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			const what = "Workspace removal"
			path, m, err := a.workspace(args)
			if err != nil {
				return &failure{what: what, err: err}
			}
			if err := m.Destroy(cmd.Context(), path); err != nil {
				return &failure{what: what, err: err}
			}
			return nil
		},
	}
}

func workspaceDiffCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "diff <owner> <repo> <number>",
		Short: "Print the unstaged changes of a workspace",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			const what = "Workspace diff"
			path, _, err := a.workspace(args)
			if err != nil {
				return &failure{what: what, err: err}
			}
			s, err := a.stager()
			if err != nil {
				return &failure{what: what, err: err}
			}
			out, err := s.Diff(cmd.Context(), path)
			if err != nil {
				return &failure{what: what, err: err}
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func workspaceStageCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stage <owner> <repo> <number>",
		Short: "Stage a patch read from stdin without touching the working tree",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			const what = "Workspace staging"
			path, _, err := a.workspace(args)
			if err != nil {
				return &failure{what: what, err: err}
			}
			patch, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return &failure{what: what, err: err}
			}
			s, err := a.stager()
			if err != nil {
				return &failure{what: what, err: err}
			}
			out, err := s.ApplyCached(cmd.Context(), path, string(patch))
			if err != nil {
				return &failure{what: what, err: err}
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func parseNumber(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid change number %q", s)
	}
	return n, nil
}

func (a *app) runner() *process.Runner {
	return process.New(
		process.WithTimeout(a.cfg.GitTimeout),
		process.WithMaxConcurrency(a.cfg.GitMaxConcurrency),
	)
}

func (a *app) manager() (*clonemanager.Manager, error) {
	return clonemanager.New(a.cfg.Workspace, a.runner(), clonemanager.WithGitPath(a.cfg.GitPath))
}

func (a *app) stager() (*stagemanager.Stager, error) {
	return stagemanager.New(a.runner(), stagemanager.WithGitPath(a.cfg.GitPath))
}

// workspace resolves the directory named by <owner> <repo> <number>.
func (a *app) workspace(args []string) (string, *clonemanager.Manager, error) {
	number, err := parseNumber(args[2])
	if err != nil {
		return "", nil, err
	}
	m, err := a.manager()
	if err != nil {
		return "", nil, err
	}
	path, err := m.Path(args[0], args[1], number)
	if err != nil {
		return "", nil, err
	}
	return path, m, nil
}

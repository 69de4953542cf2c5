/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"context"
	"fmt"

	"chainguard.dev/lintreview/reconcilers/githubreconciler/hookreconciler"
	"github.com/google/go-github/v84/github"
	"github.com/spf13/cobra"
)

type reconcileFunc func(ctx context.Context, target hookreconciler.Target, callbackURL string) error

func register(ctx context.Context, target hookreconciler.Target, callbackURL string) error {
	_, err := hookreconciler.Register(ctx, target, callbackURL)
	return err
}

func repository(owner, repo string) func(*github.Client) hookreconciler.Target {
	return func(c *github.Client) hookreconciler.Target {
		return hookreconciler.NewRepositoryTarget(c, owner, repo)
	}
}

func organization(org string) func(*github.Client) hookreconciler.Target {
	return func(c *github.Client) hookreconciler.Target {
		return hookreconciler.NewOrganizationTarget(c, org)
	}
}

func registerCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "register <user> <repo>",
		Short: "Register the review webhook on a repository",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.reconcile(cmd, "Hook registration", "Hook registered successfully",
				register, repository(args[0], args[1]))
		},
	}
}

func unregisterCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unregister <user> <repo>",
		Short: "Remove the review webhook from a repository",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.reconcile(cmd, "Hook removal", "Hook removed successfully",
				hookreconciler.Unregister, repository(args[0], args[1]))
		},
	}
}

func orgRegisterCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "org-register <org_name>",
		Short: "Register the review webhook on an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.reconcile(cmd, "Org hook registration", "Org hook registered successfully",
				register, organization(args[0]))
		},
	}
}

func orgUnregisterCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "org-unregister <org_name>",
		Short: "Remove the review webhook from an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.reconcile(cmd, "Org hook removal", "Org hook removed successfully",
				hookreconciler.Unregister, organization(args[0]))
		},
	}
}

// reconcile runs fn against the target built from an authenticated client
// and reports done on success.
func (a *app) reconcile(cmd *cobra.Command, what, done string, fn reconcileFunc, target func(*github.Client) hookreconciler.Target) error {
	ctx := cmd.Context()

	callbackURL, err := a.callback()
	if err != nil {
		return &failure{what: what, err: err}
	}
	client, err := a.client(ctx)
	if err != nil {
		return &failure{what: what, err: err}
	}
	if err := fn(ctx, target(client), callbackURL); err != nil {
		return &failure{what: what, err: err}
	}

	fmt.Fprintln(cmd.OutOrStdout(), done)
	return nil
}

/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package hookreconciler keeps a lint review webhook registered, or
// unregistered, on a GitHub repository or organization.
//
// A hook is identified by its callback URL rather than its GitHub ID. The
// same algorithm runs against either scope through the Target interface:
//
//	// Ensure a pull_request hook pointing at the review endpoint exists.
//	hook, err := hookreconciler.Register(ctx, hookreconciler.NewRepositoryTarget(gh, "acme", "widget"), endpoint)
//
//	// Remove it again from the whole organization.
//	err = hookreconciler.Unregister(ctx, hookreconciler.NewOrganizationTarget(gh, "acme"), endpoint)
//
// Both operations list before they act, so a concurrent change on GitHub
// between the two steps can race. They are safe to retry from scratch.
package hookreconciler

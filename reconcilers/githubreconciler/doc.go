/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package githubreconciler holds the configuration and credential plumbing
// shared by the lint review reconcilers: environment configuration, clone
// credentials and authenticated GitHub API clients.
//
// Credentials are resolved in a fixed order of preference: an OAuth token
// (paired with the x-oauth-basic sentinel password), then an explicit
// user/password pair, then a GitHub App installation. Resolved credentials
// are never persisted; callers hold them for the duration of one operation.
package githubreconciler

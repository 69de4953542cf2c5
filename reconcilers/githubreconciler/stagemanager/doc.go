/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package stagemanager moves tool-produced fixes from a workspace's working
// tree into its git index.
//
// The fixer flow is: a lint tool rewrites files in the working tree, Diff
// captures those edits as a unified diff, and ApplyCached stages a diff in
// the index while leaving working-tree files untouched. A separate commit
// step then publishes only what was staged.
package stagemanager

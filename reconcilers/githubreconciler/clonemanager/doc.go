/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package clonemanager materializes per-change working copies of GitHub
// repositories for lint reviews. A Manager is configured with a workspace
// root and maps each (owner, repo, change number) to a unique directory
// beneath it:
//
//	<root>/<owner>/<repo>/<number>
//
// CloneOrUpdate clones into that directory the first time and fetches from
// origin on subsequent calls, finishing with a checkout of the requested
// revision either way. Destroy removes the directory and is safe to repeat.
//
// Operations on one workspace path must not overlap. Manager does not
// serialize them itself; callers that may race on a path can guard it with
// Locks. Distinct paths are independent and may be worked on in parallel.
package clonemanager

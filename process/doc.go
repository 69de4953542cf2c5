/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package process runs external commands on behalf of the workspace and
// staging managers.
//
// Every invocation carries its own working directory, so concurrent callers
// never share a mutable "current directory". A Runner reports the exit status
// and the combined stdout/stderr stream of the command; a non-zero exit is
// returned as data, not as an error, and callers decide whether it is fatal
// (see Result.Check). Runs that exceed the configured timeout are killed and
// surface a *TimeoutError.
package process

/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package hookreconciler

import "fmt"

// HookNotFoundError reports an unregister request for a callback URL that
// has no hook on the target.
type HookNotFoundError struct {
	Target string
	URL    string
}

func (e *HookNotFoundError) Error() string {
	return fmt.Sprintf("no hook with url %s on %s", e.URL, e.Target)
}

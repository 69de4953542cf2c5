/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package githubreconciler

import "fmt"

// ConfigurationError reports a missing or unusable configuration value.
type ConfigurationError struct {
	// Key is the configuration key at fault, e.g. "WORKSPACE".
	Key    string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s is not configured", e.Key)
	}
	return fmt.Sprintf("%s: %s", e.Key, e.Reason)
}

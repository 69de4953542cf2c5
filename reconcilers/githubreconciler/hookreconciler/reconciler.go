/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package hookreconciler

import (
	"context"
	"errors"
	"fmt"

	"github.com/chainguard-dev/clog"
	"github.com/google/go-github/v84/github"
)

const (
	hookName        = "web"
	hookContentType = "json"
	hookEvent       = "pull_request"
)

// DesiredHook is the hook Register creates for callbackURL.
func DesiredHook(callbackURL string) *github.Hook {
	return &github.Hook{
		Name:   github.Ptr(hookName),
		Active: github.Ptr(true),
		Config: &github.HookConfig{
			ContentType: github.Ptr(hookContentType),
			URL:         github.Ptr(callbackURL),
		},
		Events: []string{hookEvent},
	}
}

// Register ensures target has a hook delivering pull_request events to
// callbackURL. When one already exists it is returned untouched; otherwise
// DesiredHook(callbackURL) is created and the created hook returned.
func Register(ctx context.Context, target Target, callbackURL string) (*github.Hook, error) {
	if callbackURL == "" {
		return nil, errors.New("callback url cannot be empty")
	}
	log := clog.FromContext(ctx).With("target", target.String(), "url", callbackURL)

	hooks, err := target.ListHooks(ctx)
	if err != nil {
		reconcileOutcomes.WithLabelValues("register", "error").Inc()
		return nil, fmt.Errorf("listing hooks on %s: %w", target, err)
	}

	if existing := matching(hooks, callbackURL); len(existing) > 0 {
		log.With("hook_id", existing[0].GetID()).Info("Hook already registered")
		reconcileOutcomes.WithLabelValues("register", "exists").Inc()
		return existing[0], nil
	}

	created, err := target.CreateHook(ctx, DesiredHook(callbackURL))
	if err != nil {
		log.Errorf("Creating hook failed: %v", err)
		reconcileOutcomes.WithLabelValues("register", "error").Inc()
		return nil, fmt.Errorf("creating hook on %s: %w", target, err)
	}
	log.With("hook_id", created.GetID()).Info("Hook created")
	reconcileOutcomes.WithLabelValues("register", "created").Inc()
	return created, nil
}

// Unregister deletes the hook on target whose callback URL is callbackURL.
// Should duplicates exist they are all removed. A *HookNotFoundError is
// returned when no hook matches, since that usually means the caller is
// reconciling against the wrong URL.
func Unregister(ctx context.Context, target Target, callbackURL string) error {
	if callbackURL == "" {
		return errors.New("callback url cannot be empty")
	}
	log := clog.FromContext(ctx).With("target", target.String(), "url", callbackURL)

	hooks, err := target.ListHooks(ctx)
	if err != nil {
		reconcileOutcomes.WithLabelValues("unregister", "error").Inc()
		return fmt.Errorf("listing hooks on %s: %w", target, err)
	}

	found := matching(hooks, callbackURL)
	if len(found) == 0 {
		log.Warn("No hook to remove")
		reconcileOutcomes.WithLabelValues("unregister", "not_found").Inc()
		return &HookNotFoundError{Target: target.String(), URL: callbackURL}
	}

	for _, hook := range found {
		if err := target.DeleteHook(ctx, hook.GetID()); err != nil {
			log.Errorf("Deleting hook %d failed: %v", hook.GetID(), err)
			reconcileOutcomes.WithLabelValues("unregister", "error").Inc()
			return fmt.Errorf("deleting hook %d on %s: %w", hook.GetID(), target, err)
		}
		log.With("hook_id", hook.GetID()).Info("Hook removed")
	}
	reconcileOutcomes.WithLabelValues("unregister", "deleted").Inc()
	return nil
}

func matching(hooks []*github.Hook, callbackURL string) []*github.Hook {
	var out []*github.Hook
	for _, hook := range hooks {
		if hook.GetConfig().GetURL() == callbackURL {
			out = append(out, hook)
		}
	}
	return out
}

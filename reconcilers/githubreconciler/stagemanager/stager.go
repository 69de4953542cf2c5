/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package stagemanager

import (
	"context"
	"errors"
	"fmt"

	"chainguard.dev/lintreview/process"
	"github.com/chainguard-dev/clog"
	"github.com/waigani/diffparser"
)

// Stager diffs and stages changes in workspaces.
type Stager struct {
	runner  *process.Runner
	gitPath string
}

// Option configures a Stager.
type Option func(*Stager)

// WithGitPath overrides the git executable, which defaults to "git" on PATH.
func WithGitPath(path string) Option {
	return func(s *Stager) {
		s.gitPath = path
	}
}

// New constructs a Stager that runs git through runner.
func New(runner *process.Runner, opts ...Option) (*Stager, error) {
	if runner == nil {
		return nil, errors.New("runner cannot be nil")
	}
	s := &Stager{
		runner:  runner,
		gitPath: "git",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Diff returns the unstaged changes in the working tree at path, computed
// with the patience algorithm so that files full of repeated lines produce
// fewer misaligned hunks.
func (s *Stager) Diff(ctx context.Context, path string) (string, error) {
	res, err := s.git(ctx, "diff", path, nil, "diff", "--patience")
	if err != nil {
		return "", err
	}
	return res.Output, nil
}

// ApplyCached applies patch to the index of the repository at path. The
// working tree is not modified. An empty patch is a no-op that does not
// invoke git.
func (s *Stager) ApplyCached(ctx context.Context, path, patch string) (string, error) {
	log := clog.FromContext(ctx).With("path", path)
	if len(patch) == 0 {
		log.Debug("Empty patch, nothing to stage")
		return "", nil
	}

	if files, err := ChangedFiles(patch); err != nil {
		log.Debugf("Unable to summarize patch: %v", err)
	} else {
		log.With("files", len(files)).Infof("Staging changes to %v", files)
	}

	res, err := s.git(ctx, "apply", path, []byte(patch), "apply", "--cached")
	if err != nil {
		return "", err
	}
	return res.Output, nil
}

func (s *Stager) git(ctx context.Context, step, path string, stdin []byte, args ...string) (*process.Result, error) {
	if path == "" {
		return nil, errors.New("path cannot be empty")
	}

	res, err := s.runner.Run(ctx, process.Command{
		Name:  s.gitPath,
		Args:  args,
		Dir:   path,
		Stdin: stdin,
	})
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", step, path, err)
	}
	if err := res.Check(step, path); err != nil {
		clog.FromContext(ctx).With("step", step, "path", path).Errorf("Unable to %s changes: %s", step, res.Output)
		return nil, err
	}
	return res, nil
}

// ChangedFiles lists the files a unified diff touches, in the order they
// appear. Deleted files are reported by their original name.
func ChangedFiles(patch string) ([]string, error) {
	diff, err := diffparser.Parse(patch)
	if err != nil {
		return nil, fmt.Errorf("parsing diff: %w", err)
	}

	seen := make(map[string]struct{}, len(diff.Files))
	files := make([]string, 0, len(diff.Files))
	for _, f := range diff.Files {
		name := f.NewName
		if f.Mode == diffparser.DELETED || name == "" {
			name = f.OrigName
		}
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		files = append(files, name)
	}
	return files, nil
}

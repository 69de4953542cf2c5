/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package clonemanager

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"chainguard.dev/lintreview/process"
	"chainguard.dev/lintreview/reconcilers/githubreconciler"
	"github.com/chainguard-dev/clog"
	"github.com/go-git/go-git/v5"
)

const (
	gitDir       = ".git"
	originRemote = "origin"
)

// CredentialSource resolves credentials for private clones.
// *githubreconciler.Config satisfies it.
type CredentialSource interface {
	Credential(ctx context.Context) (*githubreconciler.Credential, error)
}

// Manager owns the workspaces under a single root directory.
type Manager struct {
	root    string
	gitPath string
	runner  *process.Runner
}

// Option configures a Manager.
type Option func(*Manager)

// WithGitPath overrides the git executable, which defaults to "git" on PATH.
func WithGitPath(path string) Option {
	return func(m *Manager) {
		m.gitPath = path
	}
}

// New constructs a Manager rooted at root. It returns a
// *githubreconciler.ConfigurationError when root is empty.
func New(root string, runner *process.Runner, opts ...Option) (*Manager, error) {
	if runner == nil {
		return nil, errors.New("runner cannot be nil")
	}

	abs, err := absRoot(root)
	if err != nil {
		return nil, err
	}

	m := &Manager{
		root:    abs,
		gitPath: "git",
		runner:  runner,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Root returns the absolute workspace root.
func (m *Manager) Root() string {
	return m.root
}

// Path returns the workspace directory for a change.
func (m *Manager) Path(owner, repo string, number int) (string, error) {
	return join(m.root, owner, repo, number)
}

// Path computes root/owner/repo/number as a clean absolute path. The result
// is lexical and depends only on its arguments: trailing separators on root
// are ignored and symlinks are never resolved, so creating the root later
// does not change it. It returns a *githubreconciler.ConfigurationError when root is
// empty.
func Path(root, owner, repo string, number int) (string, error) {
	abs, err := absRoot(root)
	if err != nil {
		return "", err
	}
	return join(abs, owner, repo, number)
}

func absRoot(root string) (string, error) {
	if strings.TrimSpace(root) == "" {
		return "", &githubreconciler.ConfigurationError{
			Key:    "WORKSPACE",
			Reason: "the workspace root is required to create clones",
		}
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolving workspace root: %w", err)
	}
	return abs, nil
}

func join(root, owner, repo string, number int) (string, error) {
	if err := validateElement("owner", owner); err != nil {
		return "", err
	}
	if err := validateElement("repo", repo); err != nil {
		return "", err
	}
	if number < 0 {
		return "", fmt.Errorf("change number cannot be negative: %d", number)
	}
	return filepath.Join(root, owner, repo, strconv.Itoa(number)), nil
}

// validateElement keeps each component a single path element so no two
// workspaces alias and none escapes the root.
func validateElement(kind, s string) error {
	switch {
	case s == "":
		return fmt.Errorf("%s cannot be empty", kind)
	case s == "." || s == "..":
		return fmt.Errorf("%s %q is not a valid path element", kind, s)
	case strings.ContainsAny(s, `/\`+"\x00"):
		return fmt.Errorf("%s %q must not contain path separators", kind, s)
	}
	return nil
}

// owned makes path absolute and checks that it lies strictly under the root.
// Like the root itself it is compared lexically: symlinks are not resolved,
// so a path is owned only when spelled from the configured root.
func (m *Manager) owned(path string) (string, error) {
	if path == "" {
		return "", errors.New("path cannot be empty")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	rel, err := filepath.Rel(m.root, abs)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %s is outside workspace root %s", abs, m.root)
	}
	return abs, nil
}

// CloneOptions describes the desired state of a workspace.
type CloneOptions struct {
	// URL is the clone URL without credentials.
	URL string
	// Path is the workspace directory, normally obtained from Path.
	Path string
	// Revision is the commit, branch or tag to check out.
	Revision string
	// Private requests an authenticated clone using Credentials.
	Private     bool
	Credentials CredentialSource
}

// Workspace is a materialized working copy of a change.
type Workspace struct {
	Owner  string
	Repo   string
	Number int
	Path   string
	// SHA is the commit checked out in the working tree.
	SHA string
}

// Materialize clones or updates the workspace for owner/repo#number and checks
// out revision.
func (m *Manager) Materialize(ctx context.Context, owner, repo string, number int, opts CloneOptions) (*Workspace, error) {
	path, err := m.Path(owner, repo, number)
	if err != nil {
		return nil, err
	}
	opts.Path = path

	sha, err := m.CloneOrUpdate(ctx, opts)
	if err != nil {
		return nil, err
	}

	return &Workspace{
		Owner:  owner,
		Repo:   repo,
		Number: number,
		Path:   path,
		SHA:    sha,
	}, nil
}

// CloneOrUpdate brings opts.Path to opts.Revision. A path without git
// metadata is cloned from opts.URL; an existing clone fetches from origin
// instead. When opts.Private is set both are authenticated with
// opts.Credentials for that invocation only. Either way the revision is then
// checked out and its commit SHA returned.
//
// A non-zero exit from clone, fetch or checkout is returned as a
// *process.ToolError naming the failed step. Nothing is retried.
func (m *Manager) CloneOrUpdate(ctx context.Context, opts CloneOptions) (string, error) {
	switch {
	case opts.URL == "":
		return "", errors.New("clone url cannot be empty")
	case opts.Revision == "":
		return "", errors.New("revision cannot be empty")
	}

	path, err := m.owned(opts.Path)
	if err != nil {
		return "", err
	}

	log := clog.FromContext(ctx).With("path", path, "url", process.Redact(opts.URL))
	log.Infof("Cloning/updating repository into %s", path)

	auth, err := m.authEnv(ctx, opts)
	if err != nil {
		return "", err
	}

	if m.Exists(ctx, path) {
		log.Debug("Existing clone found, fetching from origin")
		if err := m.fetch(ctx, path, auth); err != nil {
			return "", err
		}
	} else {
		log.Debug("No clone found, cloning a new one")
		if err := m.clone(ctx, opts.URL, path, auth); err != nil {
			return "", err
		}
	}

	log.Infof("Checking out %s", opts.Revision)
	if err := m.checkout(ctx, path, opts.Revision); err != nil {
		return "", err
	}

	return head(path)
}

// authEnv resolves the git environment that authenticates a private
// workspace for one invocation. Public workspaces need none. The credential
// is never embedded in the clone URL, which git would persist as the origin.
func (m *Manager) authEnv(ctx context.Context, opts CloneOptions) ([]string, error) {
	if !opts.Private {
		return nil, nil
	}
	if opts.Credentials == nil {
		return nil, &githubreconciler.ConfigurationError{
			Key:    "GITHUB_OAUTH_TOKEN",
			Reason: "a private clone was requested without credentials",
		}
	}
	cred, err := opts.Credentials.Credential(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolving clone credentials: %w", err)
	}
	return cred.GitConfigEnv(opts.URL)
}

func (m *Manager) clone(ctx context.Context, cloneURL, path string, auth []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating workspace parent: %w", err)
	}
	return m.git(ctx, "clone", process.Redact(cloneURL), "", auth, "clone", cloneURL, path)
}

func (m *Manager) fetch(ctx context.Context, path string, auth []string) error {
	return m.git(ctx, "fetch", path, path, auth, "fetch", originRemote)
}

func (m *Manager) checkout(ctx context.Context, path, ref string) error {
	return m.git(ctx, "checkout", path, path, nil, "checkout", ref)
}

// git runs one git step in dir and converts a non-zero exit into a
// *process.ToolError. target names the path or redacted URL in errors.
func (m *Manager) git(ctx context.Context, step, target, dir string, env []string, args ...string) error {
	res, err := m.runner.Run(ctx, process.Command{
		Name: m.gitPath,
		Args: args,
		Dir:  dir,
		Env:  append([]string{"GIT_TERMINAL_PROMPT=0"}, env...),
	})
	if err != nil {
		return fmt.Errorf("%s %s: %w", step, target, err)
	}
	if err := res.Check(step, target); err != nil {
		clog.FromContext(ctx).With("step", step, "target", target).Errorf("Unable to %s %s", step, target)
		return err
	}
	return nil
}

func head(path string) (string, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return "", fmt.Errorf("opening repo: %w", err)
	}
	ref, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("reading HEAD: %w", err)
	}
	return ref.Hash().String(), nil
}

// Exists reports whether path holds git metadata. Missing or unreadable
// paths report false.
func (m *Manager) Exists(ctx context.Context, path string) bool {
	meta := filepath.Join(path, gitDir)
	if _, err := os.Stat(meta); err != nil {
		clog.FromContext(ctx).Debugf("No git metadata at %s: %v", meta, err)
		return false
	}
	return true
}

// Destroy removes the workspace at path and everything beneath it. Removing
// an absent workspace succeeds.
func (m *Manager) Destroy(ctx context.Context, path string) error {
	path, err := m.owned(path)
	if err != nil {
		return err
	}

	clog.FromContext(ctx).With("path", path).Info("Destroying workspace")
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("removing workspace %s: %w", path, err)
	}
	return nil
}

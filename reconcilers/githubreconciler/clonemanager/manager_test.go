/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package clonemanager

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"chainguard.dev/lintreview/process"
	"chainguard.dev/lintreview/reconcilers/githubreconciler"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPath(t *testing.T) {
	tests := []struct {
		name string
		root string
	}{
		{name: "plain", root: "/work"},
		{name: "trailing separator", root: "/work/"},
		{name: "doubled separators", root: "/work//"},
		{name: "dot segments", root: "/work/./tmp/.."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Path(tt.root, "acme", "widget", 42)
			if err != nil {
				t.Fatalf("Path: %v", err)
			}
			if got != "/work/acme/widget/42" {
				t.Errorf("Path = %q, want %q", got, "/work/acme/widget/42")
			}

			again, err := Path(tt.root, "acme", "widget", 42)
			if err != nil {
				t.Fatalf("Path: %v", err)
			}
			if again != got {
				t.Errorf("Path not stable: %q then %q", got, again)
			}
		})
	}
}

func TestPathRelativeRoot(t *testing.T) {
	got, err := Path("workspaces", "acme", "widget", 7)
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("Path = %q, want an absolute path", got)
	}
	if !strings.HasSuffix(got, filepath.Join("workspaces", "acme", "widget", "7")) {
		t.Errorf("Path = %q, want suffix workspaces/acme/widget/7", got)
	}
}

func TestPathIsLexical(t *testing.T) {
	ctx := context.Background()
	tmp := t.TempDir()
	root := filepath.Join(tmp, "root")
	want := filepath.Join(root, "acme", "widget", "1")

	before, err := Path(root, "acme", "widget", 1)
	if err != nil {
		t.Fatalf("Path: %v", err)
	}

	// Bringing the root into existence as a symlink must not move the
	// workspace.
	target := filepath.Join(tmp, "target")
	if err := os.MkdirAll(target, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.Symlink(target, root); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	after, err := Path(root, "acme", "widget", 1)
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if before != want || after != want {
		t.Errorf("Path before/after root creation = %q, %q, want %q", before, after, want)
	}

	mgr, err := New(root, process.New())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	path, err := mgr.Path("acme", "widget", 1)
	if err != nil {
		t.Fatalf("Manager.Path: %v", err)
	}
	if path != want {
		t.Errorf("Manager.Path = %q, want %q", path, want)
	}

	// Ownership is judged on the same lexical spelling.
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := mgr.Destroy(ctx, filepath.Join(target, "acme", "widget", "1")); err == nil {
		t.Error("Destroy via the resolved spelling: expected error")
	}
	if err := mgr.Destroy(ctx, path); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	if _, err := os.Stat(filepath.Join(target, "acme", "widget", "1")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("workspace still present behind the symlinked root: %v", err)
	}
}

func TestPathNotConfigured(t *testing.T) {
	for _, root := range []string{"", "  "} {
		_, err := Path(root, "acme", "widget", 42)

		var cfgErr *githubreconciler.ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("Path(%q): got %v, want *ConfigurationError", root, err)
		}
		if cfgErr.Key != "WORKSPACE" {
			t.Errorf("ConfigurationError.Key = %q, want WORKSPACE", cfgErr.Key)
		}
	}

	if _, err := New("", process.New()); err == nil {
		t.Error("New: expected error for empty workspace root")
	}
}

func TestPathRejectsUnsafeElements(t *testing.T) {
	tests := []struct {
		owner, repo string
		number      int
	}{
		{"", "widget", 1},
		{"acme", "", 1},
		{"..", "widget", 1},
		{"acme", ".", 1},
		{"acme/evil", "widget", 1},
		{"acme", `wid\get`, 1},
		{"acme", "widget", -1},
	}
	for _, tt := range tests {
		if got, err := Path("/work", tt.owner, tt.repo, tt.number); err == nil {
			t.Errorf("Path(%q, %q, %d) = %q, want error", tt.owner, tt.repo, tt.number, got)
		}
	}
}

func TestCloneOrUpdate(t *testing.T) {
	requireGit(t)
	ctx := context.Background()

	origin, first := initTestRepo(t)
	mgr := newTestManager(t)

	path, err := mgr.Path("acme", "widget", 42)
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if mgr.Exists(ctx, path) {
		t.Fatal("Exists before clone = true")
	}

	opts := CloneOptions{URL: origin, Path: path, Revision: first}
	sha, err := mgr.CloneOrUpdate(ctx, opts)
	if err != nil {
		t.Fatalf("CloneOrUpdate (clone): %v", err)
	}
	if sha != first {
		t.Errorf("SHA after clone = %s, want %s", sha, first)
	}
	if !mgr.Exists(ctx, path) {
		t.Fatal("Exists after clone = false")
	}

	// A second identical call takes the fetch branch and lands on the same
	// revision.
	sha, err = mgr.CloneOrUpdate(ctx, opts)
	if err != nil {
		t.Fatalf("CloneOrUpdate (repeat): %v", err)
	}
	if sha != first {
		t.Errorf("SHA after repeat = %s, want %s", sha, first)
	}

	second := commitFile(t, origin, "packages/bar.yaml", "name: bar")
	opts.Revision = second
	sha, err = mgr.CloneOrUpdate(ctx, opts)
	if err != nil {
		t.Fatalf("CloneOrUpdate (update): %v", err)
	}
	if sha != second {
		t.Errorf("SHA after update = %s, want %s", sha, second)
	}
	if _, err := os.Stat(filepath.Join(path, "packages", "bar.yaml")); err != nil {
		t.Errorf("expected fetched file in working tree: %v", err)
	}
}

func TestMaterialize(t *testing.T) {
	requireGit(t)
	ctx := context.Background()

	origin, sha := initTestRepo(t)
	mgr := newTestManager(t)

	ws, err := mgr.Materialize(ctx, "acme", "widget", 42, CloneOptions{URL: origin, Revision: sha})
	if err != nil {
		t.Fatalf("Materialize: %v", err)
	}

	want := &Workspace{
		Owner:  "acme",
		Repo:   "widget",
		Number: 42,
		Path:   filepath.Join(mgr.Root(), "acme", "widget", "42"),
		SHA:    sha,
	}
	if diff := cmp.Diff(want, ws); diff != "" {
		t.Errorf("Workspace mismatch (-want +got):\n%s", diff)
	}
}

func TestCloneOrUpdateUnknownRevision(t *testing.T) {
	requireGit(t)
	ctx := context.Background()

	origin, _ := initTestRepo(t)
	mgr := newTestManager(t)
	path, _ := mgr.Path("acme", "widget", 1)

	_, err := mgr.CloneOrUpdate(ctx, CloneOptions{URL: origin, Path: path, Revision: "does-not-exist"})

	var toolErr *process.ToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("CloneOrUpdate: got %v, want *process.ToolError", err)
	}
	if toolErr.Step != "checkout" || toolErr.Target != path {
		t.Errorf("ToolError = {Step: %q, Target: %q}, want {checkout, %q}", toolErr.Step, toolErr.Target, path)
	}
	if toolErr.Output == "" {
		t.Error("ToolError.Output is empty, want git's message")
	}
}

func TestCloneOrUpdateCloneFailure(t *testing.T) {
	requireGit(t)
	ctx := context.Background()

	mgr := newTestManager(t)
	path, _ := mgr.Path("acme", "widget", 1)
	missing := filepath.Join(t.TempDir(), "no-such-repo")

	_, err := mgr.CloneOrUpdate(ctx, CloneOptions{URL: missing, Path: path, Revision: "master"})

	var toolErr *process.ToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("CloneOrUpdate: got %v, want *process.ToolError", err)
	}
	if toolErr.Step != "clone" || toolErr.Target != missing {
		t.Errorf("ToolError = {Step: %q, Target: %q}, want {clone, %q}", toolErr.Step, toolErr.Target, missing)
	}
	if mgr.Exists(ctx, path) {
		t.Error("Exists after failed clone = true")
	}
}

func TestCloneOrUpdateValidation(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t)
	path, _ := mgr.Path("acme", "widget", 1)

	tests := []struct {
		name string
		opts CloneOptions
	}{
		{"missing url", CloneOptions{Path: path, Revision: "main"}},
		{"missing revision", CloneOptions{URL: "https://github.com/acme/widget", Path: path}},
		{"missing path", CloneOptions{URL: "https://github.com/acme/widget", Revision: "main"}},
		{"outside root", CloneOptions{URL: "https://github.com/acme/widget", Path: t.TempDir(), Revision: "main"}},
		{"root itself", CloneOptions{URL: "https://github.com/acme/widget", Path: mgr.Root(), Revision: "main"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := mgr.CloneOrUpdate(ctx, tt.opts); err == nil {
				t.Error("CloneOrUpdate: expected error")
			}
		})
	}
}

func TestPrivateCloneWithoutCredentials(t *testing.T) {
	ctx := context.Background()
	gitLog, gitPath := fakeGit(t, 0)
	mgr := newTestManager(t, WithGitPath(gitPath))
	path, _ := mgr.Path("acme", "widget", 42)

	for _, creds := range []CredentialSource{nil, &githubreconciler.Config{}} {
		_, err := mgr.CloneOrUpdate(ctx, CloneOptions{
			URL:         "https://github.com/acme/widget.git",
			Path:        path,
			Revision:    "main",
			Private:     true,
			Credentials: creds,
		})

		var cfgErr *githubreconciler.ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("CloneOrUpdate: got %v, want *ConfigurationError", err)
		}
	}
	if calls := readGitLog(t, gitLog); len(calls) != 0 {
		t.Errorf("git invoked without credentials: %v", calls)
	}
}

func TestPrivateCloneAuthenticatesPerInvocation(t *testing.T) {
	ctx := context.Background()
	gitLog, gitPath := fakeGit(t, 128)
	mgr := newTestManager(t, WithGitPath(gitPath))
	path, _ := mgr.Path("acme", "widget", 42)

	_, err := mgr.CloneOrUpdate(ctx, CloneOptions{
		URL:         "https://github.com/acme/widget.git",
		Path:        path,
		Revision:    "main",
		Private:     true,
		Credentials: &githubreconciler.Config{OAuthToken: "s3cr3t-token"},
	})

	var toolErr *process.ToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("CloneOrUpdate: got %v, want *process.ToolError", err)
	}
	if toolErr.Step != "clone" {
		t.Errorf("ToolError.Step = %q, want clone", toolErr.Step)
	}
	if strings.Contains(err.Error(), "s3cr3t-token") || strings.Contains(toolErr.Target, "s3cr3t-token") {
		t.Errorf("credential leaked into error: %v (target %q)", err, toolErr.Target)
	}

	// The clone URL stays bare; the credential only reaches git through the
	// environment of this one invocation.
	want := []gitCall{{
		Auth: basicHeader("s3cr3t-token", githubreconciler.TokenPassword),
		Args: []string{"clone", "https://github.com/acme/widget.git", path},
	}}
	got := readGitLog(t, gitLog)
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(gitCall{}, "Dir")); diff != "" {
		t.Errorf("git invocations mismatch (-want +got):\n%s", diff)
	}
}

func TestPrivateUpdateAuthenticatesFetch(t *testing.T) {
	ctx := context.Background()
	gitLog, gitPath := fakeGit(t, 0)
	mgr := newTestManager(t, WithGitPath(gitPath))
	path, _ := mgr.Path("acme", "widget", 42)
	initRepoAt(t, path)

	if _, err := mgr.CloneOrUpdate(ctx, CloneOptions{
		URL:         "https://github.com/acme/widget.git",
		Path:        path,
		Revision:    "abc123",
		Private:     true,
		Credentials: &githubreconciler.Config{OAuthToken: "s3cr3t-token"},
	}); err != nil {
		t.Fatalf("CloneOrUpdate: %v", err)
	}

	dir := realPath(t, path)
	want := []gitCall{
		{Dir: dir, Auth: basicHeader("s3cr3t-token", githubreconciler.TokenPassword), Args: []string{"fetch", "origin"}},
		{Dir: dir, Args: []string{"checkout", "abc123"}},
	}
	if diff := cmp.Diff(want, readGitLog(t, gitLog)); diff != "" {
		t.Errorf("git invocations mismatch (-want +got):\n%s", diff)
	}
}

func TestPrivateCloneKeepsTokenOffDisk(t *testing.T) {
	requireGit(t)
	ctx := context.Background()

	origin, first := initTestRepo(t)
	const remote = "https://example.invalid/acme/widget.git"

	// Route the private https remote to the local origin through a scratch
	// global config.
	home := t.TempDir()
	gitconfig := filepath.Join(home, ".gitconfig")
	config := "[url \"" + origin + "\"]\n\tinsteadOf = " + remote + "\n"
	if err := os.WriteFile(gitconfig, []byte(config), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	runner := process.New(
		process.WithTimeout(time.Minute),
		process.WithEnv("HOME="+home, "XDG_CONFIG_HOME="+home, "GIT_CONFIG_GLOBAL="+gitconfig, "GIT_CONFIG_NOSYSTEM=1"),
	)
	mgr, err := New(t.TempDir(), runner)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	path, _ := mgr.Path("acme", "widget", 42)

	opts := CloneOptions{
		URL:         remote,
		Path:        path,
		Revision:    first,
		Private:     true,
		Credentials: &githubreconciler.Config{OAuthToken: "s3cr3t-token"},
	}
	for _, step := range []string{"clone", "fetch"} {
		sha, err := mgr.CloneOrUpdate(ctx, opts)
		if err != nil {
			t.Fatalf("CloneOrUpdate (%s): %v", step, err)
		}
		if sha != first {
			t.Errorf("SHA after %s = %s, want %s", step, sha, first)
		}
	}

	cfg, err := os.ReadFile(filepath.Join(path, ".git", "config"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(cfg), "url = "+remote) {
		t.Errorf("origin url not recorded as given:\n%s", cfg)
	}

	secrets := []string{"s3cr3t-token", basicHeader("s3cr3t-token", githubreconciler.TokenPassword)}
	err = filepath.WalkDir(filepath.Join(path, ".git"), func(p string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		for _, secret := range secrets {
			if strings.Contains(string(data), secret) {
				t.Errorf("credential persisted in %s", p)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WalkDir: %v", err)
	}
}

func TestPublicCloneUsesBareURL(t *testing.T) {
	ctx := context.Background()
	gitLog, gitPath := fakeGit(t, 128)
	mgr := newTestManager(t, WithGitPath(gitPath))
	path, _ := mgr.Path("acme", "widget", 42)

	_, err := mgr.CloneOrUpdate(ctx, CloneOptions{
		URL:         "https://github.com/acme/widget.git",
		Path:        path,
		Revision:    "main",
		Credentials: &githubreconciler.Config{OAuthToken: "s3cr3t-token"},
	})
	if err == nil {
		t.Fatal("CloneOrUpdate: expected the fake clone to fail")
	}

	want := [][]string{{"clone", "https://github.com/acme/widget.git", path}}
	if diff := cmp.Diff(want, argsOnly(readGitLog(t, gitLog))); diff != "" {
		t.Errorf("git invocations mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateRunsInWorkspace(t *testing.T) {
	ctx := context.Background()
	gitLog, gitPath := fakeGit(t, 0)
	mgr := newTestManager(t, WithGitPath(gitPath))
	path, _ := mgr.Path("acme", "widget", 42)

	// A real repository at the workspace path puts the manager in the
	// update branch and lets it read HEAD after the fake checkout.
	sha := initRepoAt(t, path)

	got, err := mgr.CloneOrUpdate(ctx, CloneOptions{URL: "https://github.com/acme/widget.git", Path: path, Revision: "abc123"})
	if err != nil {
		t.Fatalf("CloneOrUpdate: %v", err)
	}
	if got != sha {
		t.Errorf("SHA = %s, want %s", got, sha)
	}

	dir := realPath(t, path)
	want := []gitCall{
		{Dir: dir, Args: []string{"fetch", "origin"}},
		{Dir: dir, Args: []string{"checkout", "abc123"}},
	}
	if diff := cmp.Diff(want, readGitLog(t, gitLog)); diff != "" {
		t.Errorf("git invocations mismatch (-want +got):\n%s", diff)
	}
}

func TestDestroy(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t)
	path, _ := mgr.Path("acme", "widget", 42)

	initRepoAt(t, path)
	if !mgr.Exists(ctx, path) {
		t.Fatal("Exists before destroy = false")
	}

	if err := mgr.Destroy(ctx, path); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	if mgr.Exists(ctx, path) {
		t.Error("Exists after destroy = true")
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("workspace directory still present: %v", err)
	}

	if err := mgr.Destroy(ctx, path); err != nil {
		t.Errorf("Destroy on absent workspace: %v", err)
	}
}

func TestDestroyOutsideRoot(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t)
	outside := t.TempDir()

	if err := mgr.Destroy(ctx, outside); err == nil {
		t.Fatal("Destroy outside root: expected error")
	}
	if _, err := os.Stat(outside); err != nil {
		t.Errorf("directory outside root was touched: %v", err)
	}
	if err := mgr.Destroy(ctx, mgr.Root()); err == nil {
		t.Error("Destroy of the root: expected error")
	}
}

func TestExistsWithoutGitMetadata(t *testing.T) {
	ctx := context.Background()
	mgr := newTestManager(t)

	plain := filepath.Join(mgr.Root(), "acme", "widget", "3")
	if err := os.MkdirAll(plain, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if mgr.Exists(ctx, plain) {
		t.Error("Exists on directory without .git = true")
	}
	if mgr.Exists(ctx, filepath.Join(mgr.Root(), "missing")) {
		t.Error("Exists on missing path = true")
	}
}

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
}

func newTestManager(t *testing.T, opts ...Option) *Manager {
	t.Helper()
	mgr, err := New(t.TempDir(), process.New(process.WithTimeout(time.Minute)), opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return mgr
}

// initTestRepo creates an origin repository with a single commit on master
// and returns its directory and head SHA.
func initTestRepo(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	return dir, initRepoAt(t, dir)
}

func initRepoAt(t *testing.T, dir string) string {
	t.Helper()

	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit: %v", err)
	}
	if err := repo.Storer.SetReference(plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName("master"))); err != nil {
		t.Fatalf("SetReference: %v", err)
	}
	return commitFile(t, dir, "packages/foo.yaml", "name: foo")
}

func commitFile(t *testing.T, dir, rel, content string) string {
	t.Helper()

	repo, err := git.PlainOpen(dir)
	if err != nil {
		t.Fatalf("PlainOpen: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree: %v", err)
	}

	file := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := wt.Add(rel); err != nil {
		t.Fatalf("Add: %v", err)
	}

	hash, err := wt.Commit("add "+rel, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	return hash.String()
}

type gitCall struct {
	Dir string
	// Auth is the extra HTTP header handed to git through its environment.
	Auth string
	Args []string
}

// fakeGit installs a shell script standing in for git. Each invocation
// appends its working directory, injected HTTP header and arguments to the
// returned log, one call per line with fields separated by tabs, then exits
// with status.
func fakeGit(t *testing.T, status int) (logPath, gitPath string) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	dir := t.TempDir()
	logPath = filepath.Join(dir, "calls.log")
	gitPath = filepath.Join(dir, "git")
	script := "#!/bin/sh\n" +
		"{ printf '%s\\t%s' \"$(pwd -P)\" \"${GIT_CONFIG_VALUE_0:-}\"; for a in \"$@\"; do printf '\\t%s' \"$a\"; done; printf '\\n'; } >> '" + logPath + "'\n" +
		"exit " + strconv.Itoa(status) + "\n"
	if err := os.WriteFile(gitPath, []byte(script), 0o755); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return logPath, gitPath
}

func readGitLog(t *testing.T, path string) []gitCall {
	t.Helper()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	var calls []gitCall
	for _, line := range strings.Split(strings.TrimSuffix(string(data), "\n"), "\n") {
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		dir := fields[0]
		if resolved, err := filepath.EvalSymlinks(dir); err == nil {
			dir = resolved
		}
		calls = append(calls, gitCall{Dir: dir, Auth: fields[1], Args: fields[2:]})
	}
	return calls
}

// realPath resolves symlinks the way the fake git's pwd -P does.
func realPath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("EvalSymlinks: %v", err)
	}
	return resolved
}

func basicHeader(user, secret string) string {
	return "Authorization: Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+secret))
}

func argsOnly(calls []gitCall) [][]string {
	out := make([][]string, 0, len(calls))
	for _, c := range calls {
		out = append(out, c.Args)
	}
	return out
}

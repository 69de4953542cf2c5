/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package hookreconciler

import (
	"context"
	"fmt"

	"github.com/google/go-github/v84/github"
)

// listPageSize is the largest page GitHub serves for hook listings.
const listPageSize = 100

// Target is a collection of webhooks owned by one GitHub scope.
type Target interface {
	// String names the scope for logs and errors.
	String() string

	ListHooks(ctx context.Context) ([]*github.Hook, error)
	CreateHook(ctx context.Context, hook *github.Hook) (*github.Hook, error)
	DeleteHook(ctx context.Context, id int64) error
}

// RepositoryTarget is the hook collection of a single repository.
type RepositoryTarget struct {
	client *github.Client
	owner  string
	repo   string
}

var _ Target = (*RepositoryTarget)(nil)

// NewRepositoryTarget returns the hook collection of owner/repo.
func NewRepositoryTarget(client *github.Client, owner, repo string) *RepositoryTarget {
	return &RepositoryTarget{client: client, owner: owner, repo: repo}
}

func (t *RepositoryTarget) String() string {
	return fmt.Sprintf("%s/%s", t.owner, t.repo)
}

// ListHooks returns every hook on the repository, following pagination.
func (t *RepositoryTarget) ListHooks(ctx context.Context) ([]*github.Hook, error) {
	return listAll(func(opts *github.ListOptions) ([]*github.Hook, *github.Response, error) {
		return t.client.Repositories.ListHooks(ctx, t.owner, t.repo, opts)
	})
}

func (t *RepositoryTarget) CreateHook(ctx context.Context, hook *github.Hook) (*github.Hook, error) {
	created, _, err := t.client.Repositories.CreateHook(ctx, t.owner, t.repo, hook)
	return created, err
}

func (t *RepositoryTarget) DeleteHook(ctx context.Context, id int64) error {
	_, err := t.client.Repositories.DeleteHook(ctx, t.owner, t.repo, id)
	return err
}

// OrganizationTarget is the organization-wide hook collection, which fires
// for every repository in the organization.
type OrganizationTarget struct {
	client *github.Client
	org    string
}

var _ Target = (*OrganizationTarget)(nil)

// NewOrganizationTarget returns the hook collection of org.
func NewOrganizationTarget(client *github.Client, org string) *OrganizationTarget {
	return &OrganizationTarget{client: client, org: org}
}

func (t *OrganizationTarget) String() string {
	return "org " + t.org
}

// ListHooks returns every hook on the organization, following pagination.
func (t *OrganizationTarget) ListHooks(ctx context.Context) ([]*github.Hook, error) {
	return listAll(func(opts *github.ListOptions) ([]*github.Hook, *github.Response, error) {
		return t.client.Organizations.ListHooks(ctx, t.org, opts)
	})
}

func (t *OrganizationTarget) CreateHook(ctx context.Context, hook *github.Hook) (*github.Hook, error) {
	created, _, err := t.client.Organizations.CreateHook(ctx, t.org, hook)
	return created, err
}

func (t *OrganizationTarget) DeleteHook(ctx context.Context, id int64) error {
	_, err := t.client.Organizations.DeleteHook(ctx, t.org, id)
	return err
}

func listAll(list func(*github.ListOptions) ([]*github.Hook, *github.Response, error)) ([]*github.Hook, error) {
	opts := &github.ListOptions{PerPage: listPageSize}
	var all []*github.Hook
	for {
		hooks, resp, err := list(opts)
		if err != nil {
			return nil, err
		}
		all = append(all, hooks...)
		if resp == nil || resp.NextPage == 0 {
			return all, nil
		}
		opts.Page = resp.NextPage
	}
}

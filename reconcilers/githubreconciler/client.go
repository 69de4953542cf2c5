/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package githubreconciler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/chainguard-dev/clog"
	"github.com/google/go-github/v84/github"
	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/oauth2"
)

// NewClient constructs a GitHub API client authenticated with the configured
// credentials, in the same order of preference as Config.Credential.
// Transient failures are retried at the transport layer up to
// Config.ClientRetryMax times.
func NewClient(ctx context.Context, cfg *Config) (*github.Client, error) {
	retrying := retryablehttp.NewClient()
	retrying.RetryMax = cfg.ClientRetryMax
	retrying.Logger = clog.FromContext(ctx)
	transport := retrying.StandardClient().Transport

	var httpClient *http.Client
	switch {
	case cfg.OAuthToken != "":
		// GitHub OAuth tokens never expire.
		ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Transport: transport})
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.OAuthToken}))

	case cfg.User != "" || cfg.Password != "":
		if err := cfg.checkBasic(); err != nil {
			return nil, err
		}
		basic := &github.BasicAuthTransport{
			Username:  cfg.User,
			Password:  cfg.Password,
			Transport: transport,
		}
		httpClient = basic.Client()

	case cfg.hasApp():
		itr, err := cfg.appTransport(transport)
		if err != nil {
			return nil, err
		}
		httpClient = &http.Client{Transport: itr}

	default:
		return nil, &ConfigurationError{
			Key:    "GITHUB_OAUTH_TOKEN",
			Reason: "GitHub API access requires GITHUB_OAUTH_TOKEN, GITHUB_USER and GITHUB_PASSWORD, or GitHub App credentials",
		}
	}

	client := github.NewClient(httpClient)
	if cfg.IsEnterprise() {
		ent, err := client.WithEnterpriseURLs(cfg.GitHubURL, cfg.GitHubURL)
		if err != nil {
			return nil, fmt.Errorf("configuring enterprise urls: %w", err)
		}
		client = ent
	}
	return client, nil
}

/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package githubreconciler

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// DefaultGitHubURL is the public GitHub API endpoint.
const DefaultGitHubURL = "https://api.github.com/"

// Config is the environment configuration consumed by the lint review
// tooling.
type Config struct {
	// Workspace is the filesystem root under which clones are created.
	Workspace string `env:"WORKSPACE"`

	GitHubURL  string `env:"GITHUB_URL,default=https://api.github.com/"`
	OAuthToken string `env:"GITHUB_OAUTH_TOKEN"`
	User       string `env:"GITHUB_USER"`
	Password   string `env:"GITHUB_PASSWORD"`

	// GitHub App installation credentials, used when neither a token nor a
	// user/password pair is configured.
	AppID             int64  `env:"GITHUB_APP_ID"`
	AppInstallationID int64  `env:"GITHUB_APP_INSTALLATION_ID"`
	AppPrivateKeyPath string `env:"GITHUB_APP_PRIVATE_KEY_PATH"`

	// ClientRetryMax bounds HTTP retries for GitHub API requests.
	ClientRetryMax int `env:"GITHUB_CLIENT_RETRY_MAX,default=3"`

	// CallbackURL is the webhook endpoint registered on repositories and
	// organizations.
	CallbackURL string `env:"CALLBACK_URL"`

	GitPath           string        `env:"GIT_PATH,default=git"`
	GitTimeout        time.Duration `env:"GIT_TIMEOUT,default=10m"`
	GitMaxConcurrency int64         `env:"GIT_MAX_CONCURRENCY,default=0"`
}

// LoadConfig reads Config from the process environment.
func LoadConfig(ctx context.Context) (*Config, error) {
	return loadConfig(ctx, envconfig.OsLookuper())
}

func loadConfig(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		if key, ok := envKey(err); ok {
			return nil, fmt.Errorf("processing config: %s: %w", key, err)
		}
		return nil, fmt.Errorf("processing config: %w", err)
	}
	return &cfg, nil
}

// envKey names the environment variable behind a field error. envconfig
// reports the Go field name, which means nothing to an operator.
func envKey(err error) (string, bool) {
	t := reflect.TypeFor[Config]()
	for i := range t.NumField() {
		f := t.Field(i)
		if strings.HasPrefix(err.Error(), f.Name+":") {
			key, _, _ := strings.Cut(f.Tag.Get("env"), ",")
			return key, key != ""
		}
	}
	return "", false
}

// WithToken returns a copy of the configuration whose only credential is the
// given OAuth token. Used when an administrator's token is supplied on the
// command line in place of the configured identity.
func (c *Config) WithToken(token string) *Config {
	cp := *c
	cp.OAuthToken = token
	cp.User = ""
	cp.Password = ""
	cp.AppID = 0
	cp.AppInstallationID = 0
	cp.AppPrivateKeyPath = ""
	return &cp
}

// IsEnterprise reports whether the configuration targets a GitHub Enterprise
// installation rather than github.com.
func (c *Config) IsEnterprise() bool {
	u := strings.TrimSuffix(c.GitHubURL, "/")
	return u != "" && u != strings.TrimSuffix(DefaultGitHubURL, "/")
}

func (c *Config) hasApp() bool {
	return c.AppID != 0 && c.AppInstallationID != 0 && c.AppPrivateKeyPath != ""
}

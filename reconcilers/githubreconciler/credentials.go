/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package githubreconciler

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/chainguard-dev/clog"
)

const (
	// TokenPassword is the sentinel password paired with an OAuth token
	// when the token is presented as the user name.
	TokenPassword = "x-oauth-basic"

	// installationTokenUser is the user name GitHub expects alongside an App
	// installation token.
	installationTokenUser = "x-access-token"
)

// Credential is a resolved (user, secret) pair for authenticating a clone.
// It formats as a redacted placeholder so it can't leak through logs.
type Credential struct {
	User   string
	Secret string
}

func (c Credential) String() string { return "[redacted]" }

// LogValue implements slog.LogValuer.
func (c Credential) LogValue() slog.Value { return slog.StringValue("[redacted]") }

// GitConfigEnv returns the environment for a single git invocation that
// authenticates HTTP requests to rawURL's host with the credential. The
// secret travels as an http.extraHeader set through GIT_CONFIG_COUNT, so it is
// never written to the repository configuration and lives only as long as
// the process it is handed to.
func (c Credential) GitConfigEnv(rawURL string) ([]string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing clone url: %w", err)
	}
	if (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return nil, errors.New("authenticated clones require an http(s) clone url")
	}
	basic := base64.StdEncoding.EncodeToString([]byte(c.User + ":" + c.Secret))
	return []string{
		"GIT_CONFIG_COUNT=1",
		"GIT_CONFIG_KEY_0=http." + u.Scheme + "://" + u.Host + "/.extraHeader",
		"GIT_CONFIG_VALUE_0=Authorization: Basic " + basic,
	}, nil
}

// Credential resolves the clone credential from the configuration. An OAuth
// token wins over a user/password pair, which wins over a GitHub App
// installation. A *ConfigurationError is returned when nothing usable is
// configured.
func (c *Config) Credential(ctx context.Context) (*Credential, error) {
	log := clog.FromContext(ctx)

	switch {
	case c.OAuthToken != "":
		log.Debug("Using OAuth token credentials")
		return &Credential{User: c.OAuthToken, Secret: TokenPassword}, nil

	case c.User != "" || c.Password != "":
		if err := c.checkBasic(); err != nil {
			return nil, err
		}
		log.With("user", c.User).Debug("Using user/password credentials")
		return &Credential{User: c.User, Secret: c.Password}, nil

	case c.hasApp():
		itr, err := c.appTransport(http.DefaultTransport)
		if err != nil {
			return nil, err
		}
		token, err := itr.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("minting installation token: %w", err)
		}
		log.With("app_id", c.AppID).Debug("Using GitHub App installation credentials")
		return &Credential{User: installationTokenUser, Secret: token}, nil

	default:
		return nil, &ConfigurationError{
			Key:    "GITHUB_OAUTH_TOKEN",
			Reason: "no GitHub credentials configured; set GITHUB_OAUTH_TOKEN or GITHUB_USER and GITHUB_PASSWORD",
		}
	}
}

func (c *Config) checkBasic() error {
	switch {
	case c.User == "":
		return &ConfigurationError{Key: "GITHUB_USER", Reason: "required when GITHUB_PASSWORD is set"}
	case c.Password == "":
		return &ConfigurationError{Key: "GITHUB_PASSWORD", Reason: "required when GITHUB_USER is set"}
	}
	return nil
}

func (c *Config) appTransport(base http.RoundTripper) (*ghinstallation.Transport, error) {
	itr, err := ghinstallation.NewKeyFromFile(base, c.AppID, c.AppInstallationID, c.AppPrivateKeyPath)
	if err != nil {
		return nil, &ConfigurationError{Key: "GITHUB_APP_PRIVATE_KEY_PATH", Reason: err.Error()}
	}
	if c.IsEnterprise() {
		itr.BaseURL = strings.TrimSuffix(c.GitHubURL, "/")
	}
	return itr, nil
}

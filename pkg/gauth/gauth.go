// Package gauth acquires Google OAuth2 access tokens for the calendar
// submission client. The interactive flow (browser URL + pasted code)
// runs once; subsequent calls refresh silently from the cached token
// file.
package gauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// ErrNoToken indicates no cached token exists and the caller did not
// allow an interactive flow.
var ErrNoToken = errors.New("no cached token; run the auth command first")

// Config holds the OAuth client identity and the token cache location.
type Config struct {
	ClientID     string
	ClientSecret string
	TokenFile    string
}

// Provider hands out access tokens, refreshing from the cache file.
type Provider struct {
	oauth     *oauth2.Config
	tokenFile string
}

// NewProvider creates a token provider for the calendar scope.
func NewProvider(cfg Config) *Provider {
	return &Provider{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Scopes:       []string{calendar.CalendarEventsScope},
			Endpoint:     google.Endpoint,
			RedirectURL:  "urn:ietf:wg:oauth:2.0:oob",
		},
		tokenFile: cfg.TokenFile,
	}
}

// Token returns a valid access token, refreshing from the cached
// token file. The interactive bootstrap (AuthCodeURL + Exchange) must
// have run before the first call.
func (p *Provider) Token(ctx context.Context) (*oauth2.Token, error) {
	tok, err := p.tokenFromFile()
	if err != nil {
		return nil, err
	}

	source := p.oauth.TokenSource(ctx, tok)
	fresh, err := source.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}

	// Persist rotated refresh/access tokens.
	if fresh.AccessToken != tok.AccessToken {
		if saveErr := p.saveToken(fresh); saveErr != nil {
			return nil, saveErr
		}
	}
	return fresh, nil
}

// AuthCodeURL returns the browser URL for the interactive flow.
func (p *Provider) AuthCodeURL() string {
	return p.oauth.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
}

// Exchange trades an authorization code for a token and caches it.
func (p *Provider) Exchange(ctx context.Context, code string) error {
	tok, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return p.saveToken(tok)
}

// TokenSource adapts the provider to oauth2.TokenSource.
func (p *Provider) TokenSource(ctx context.Context) oauth2.TokenSource {
	return &providerSource{ctx: ctx, p: p}
}

type providerSource struct {
	ctx context.Context
	p   *Provider
}

func (s *providerSource) Token() (*oauth2.Token, error) {
	return s.p.Token(s.ctx)
}

func (p *Provider) tokenFromFile() (*oauth2.Token, error) {
	raw, err := os.ReadFile(p.tokenFile)
	if os.IsNotExist(err) {
		return nil, ErrNoToken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(raw, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse token file %s: %w", p.tokenFile, err)
	}
	return &tok, nil
}

func (p *Provider) saveToken(tok *oauth2.Token) error {
	raw, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}
	if err := os.WriteFile(p.tokenFile, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

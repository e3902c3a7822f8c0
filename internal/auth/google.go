package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// Profile is the provider-neutral shape handed to the identity resolver.
type Profile struct {
	ProviderID  string
	DisplayName string
	Email       string
	AvatarURL   string
}

// googleUser is the userinfo response from Google.
type googleUser struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// GoogleProvider drives the Google OAuth authorization-code flow:
// consent URL, code exchange, and profile fetch.
type GoogleProvider struct {
	config      *oauth2.Config
	userInfoURL string
	client      *http.Client
}

// NewGoogleProvider creates a provider requesting profile and email scopes.
func NewGoogleProvider(clientID, clientSecret, callbackURL string) *GoogleProvider {
	return &GoogleProvider{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     google.Endpoint,
			RedirectURL:  callbackURL,
			Scopes:       []string{"profile", "email"},
		},
		userInfoURL: googleUserInfoURL,
		client:      &http.Client{},
	}
}

// AuthCodeURL returns the consent screen URL for the given CSRF state.
func (p *GoogleProvider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state)
}

// Exchange trades an authorization code for an access token.
func (p *GoogleProvider) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("code exchange failed: %w", err)
	}
	return token, nil
}

// FetchProfile retrieves the authenticated user's profile from the
// provider's userinfo endpoint.
func (p *GoogleProvider) FetchProfile(ctx context.Context, token *oauth2.Token) (*Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("userinfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		return nil, fmt.Errorf("userinfo request returned %d: %s", resp.StatusCode, string(body))
	}

	var gu googleUser
	if err := json.NewDecoder(resp.Body).Decode(&gu); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo response: %w", err)
	}
	if gu.ID == "" {
		return nil, fmt.Errorf("userinfo response missing subject id")
	}

	return &Profile{
		ProviderID:  gu.ID,
		DisplayName: gu.Name,
		Email:       gu.Email,
		AvatarURL:   gu.Picture,
	}, nil
}

// SetEndpoints overrides the provider endpoints. Used by tests to point at
// a stub server.
func (p *GoogleProvider) SetEndpoints(authURL, tokenURL, userInfoURL string) {
	p.config.Endpoint = oauth2.Endpoint{AuthURL: authURL, TokenURL: tokenURL}
	p.userInfoURL = userInfoURL
}

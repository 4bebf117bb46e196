package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const profileEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"

// Profile is the slice of a Google account used to provision a store owner
// on first sign-in
type Profile struct {
	Subject       string `json:"id"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"verified_email"`
	FirstName     string `json:"given_name"`
	LastName      string `json:"family_name"`
	PictureURL    string `json:"picture"`
}

// GoogleOAuthConfig carries the client credentials for Google sign-in.
// Leaving them empty disables the flow without failing startup, for
// deployments that run on password logins only.
type GoogleOAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// GoogleOAuthService drives the authorization-code flow for signing store
// owners in with a Google account
type GoogleOAuthService struct {
	oauth *oauth2.Config
}

// NewGoogleOAuthService creates a new Google OAuth service
func NewGoogleOAuthService(cfg GoogleOAuthConfig) *GoogleOAuthService {
	return &GoogleOAuthService{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
	}
}

// IsConfigured reports whether client credentials are present
func (s *GoogleOAuthService) IsConfigured() bool {
	return s.oauth.ClientID != "" && s.oauth.ClientSecret != ""
}

// GetAuthURL builds the consent URL carrying the anti-forgery state
func (s *GoogleOAuthService) GetAuthURL(state string) string {
	return s.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// ExchangeCode trades the authorization code for a token set
func (s *GoogleOAuthService) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}
	return token, nil
}

// FetchProfile loads the signed-in account's profile using the access token
func (s *GoogleOAuthService) FetchProfile(ctx context.Context, token *oauth2.Token) (*Profile, error) {
	resp, err := s.oauth.Client(ctx, token).Get(profileEndpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch google profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch google profile: unexpected status %d", resp.StatusCode)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode google profile: %w", err)
	}
	return &profile, nil
}

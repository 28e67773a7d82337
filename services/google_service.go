package services

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/RohitDakare/ByteForce/apperror"
	"github.com/RohitDakare/ByteForce/config"
)

// GoogleClaims represents the verified claims returned by Google's tokeninfo
// endpoint for an ID token. Google returns every value as a string.
type GoogleClaims struct {
	Audience string `json:"aud"`   // must match our configured client ID
	Email    string `json:"email"` // identity key, required
	Name     string `json:"name"`
	Picture  string `json:"picture"`
}

// GoogleService verifies Google ID tokens against Google's tokeninfo
// endpoint. The endpoint validates the token's signature and expiry; we
// additionally check the audience against the configured client ID so tokens
// issued for other applications are rejected.
type GoogleService struct {
	clientID     string
	tokenInfoURL string
	httpClient   *http.Client
}

// NewGoogleService creates a new Google verification service instance
func NewGoogleService(cfg *config.Config) *GoogleService {
	return &GoogleService{
		clientID:     cfg.GoogleClientID,
		tokenInfoURL: cfg.GoogleTokenInfoURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Verify validates the ID token and returns its claims.
// Any verification failure (malformed, expired, bad signature, wrong
// audience) is reported as an invalid-token error; the caller surfaces it as
// a client error without detail about which check failed.
func (s *GoogleService) Verify(idToken string) (*GoogleClaims, error) {
	endpoint := fmt.Sprintf("%s?id_token=%s", s.tokenInfoURL, url.QueryEscape(idToken))

	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create tokeninfo request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call tokeninfo endpoint: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Printf("Failed to close tokeninfo response body: %v", closeErr)
		}
	}()

	// Google answers non-200 for malformed, expired or badly signed tokens.
	if resp.StatusCode != http.StatusOK {
		return nil, apperror.InvalidToken("Invalid Google token")
	}

	var claims GoogleClaims
	if err := json.NewDecoder(resp.Body).Decode(&claims); err != nil {
		return nil, apperror.InvalidToken("Invalid Google token")
	}

	if claims.Audience != s.clientID {
		return nil, apperror.InvalidToken("Invalid Google token")
	}

	if claims.Email == "" {
		return nil, apperror.InvalidToken("Google token has no email claim")
	}

	return &claims, nil
}

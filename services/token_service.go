package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session token parameters. The middleware validates issuer and audience, so
// these must match what it is configured with.
const (
	SessionIssuer   = "byteforce-api"
	SessionAudience = "byteforce"
	SessionDuration = 24 * time.Hour
)

// TokenService issues signed session tokens. Sessions are stateless: the
// token itself carries the user id and expiry, signed with HS256, and no
// session state is kept server-side.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a TokenService using the given signing secret
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Generate creates and signs a session token for the given user id with the
// standard 24 hour expiry.
func (s *TokenService) Generate(userID uint) (string, error) {
	return s.GenerateWithDuration(userID, SessionDuration)
}

// GenerateWithDuration creates a session token with a custom lifetime.
// Used by tests to mint expired tokens.
func (s *TokenService) GenerateWithDuration(userID uint, d time.Duration) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		Issuer:    SessionIssuer,
		Audience:  jwt.ClaimStrings{SessionAudience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(d)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}

	return signed, nil
}

package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/RohitDakare/ByteForce/models"
	"github.com/RohitDakare/ByteForce/repository"
	"github.com/RohitDakare/ByteForce/services"
)

// MintSessionToken issues a valid session token for the given user id,
// signed with the same secret the middleware under test is configured with.
func MintSessionToken(tb testing.TB, secret string, userID uint) string {
	tb.Helper()

	token, err := services.NewTokenService(secret).Generate(userID)
	if err != nil {
		tb.Fatalf("Failed to mint session token: %v", err)
	}
	return token
}

// MintExpiredSessionToken issues a well-formed session token that expired
// over 24 hours ago.
func MintExpiredSessionToken(tb testing.TB, secret string, userID uint) string {
	tb.Helper()

	token, err := services.NewTokenService(secret).GenerateWithDuration(userID, -25*time.Hour)
	if err != nil {
		tb.Fatalf("Failed to mint expired session token: %v", err)
	}
	return token
}

// SeedUserWithDefaults creates a user the way sign-in does: the user row
// plus its five default skills in one transaction.
func SeedUserWithDefaults(tb testing.TB, db *gorm.DB, email string) *models.User {
	tb.Helper()

	user := &models.User{Email: email}
	if err := repository.NewUserRepository(db).CreateWithDefaultSkills(user); err != nil {
		tb.Fatalf("Failed to seed user: %v", err)
	}
	return user
}

// FakeTokenInfoServer stands in for Google's tokeninfo endpoint. It answers
// 200 with the configured claims for the one known token and 400 for
// everything else, which is how Google reports malformed, expired and badly
// signed tokens.
func FakeTokenInfoServer(tb testing.TB, validToken, claims string) *httptest.Server {
	tb.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id_token") != validToken {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"invalid_token"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(claims))
	}))
}

package services

import (
	"fmt"

	"github.com/RohitDakare/ByteForce/apperror"
	"github.com/RohitDakare/ByteForce/models"
	"github.com/RohitDakare/ByteForce/repository"
)

// AuthService exchanges a verified Google identity for a local user and a
// session token.
type AuthService struct {
	users  *repository.UserRepository
	google *GoogleService
	tokens *TokenService
}

// NewAuthService creates an AuthService with its collaborators injected.
func NewAuthService(users *repository.UserRepository, google *GoogleService, tokens *TokenService) *AuthService {
	return &AuthService{
		users:  users,
		google: google,
		tokens: tokens,
	}
}

// Authenticate verifies the Google ID token, finds or creates the local user
// and issues a session token. A previously unseen email gets a new user row
// plus the five default skills, created together in one transaction.
func (s *AuthService) Authenticate(idToken string) (string, *models.User, error) {
	claims, err := s.google.Verify(idToken)
	if err != nil {
		return "", nil, err
	}

	user, err := s.users.FindByEmail(claims.Email)
	if err != nil {
		return "", nil, apperror.Persistence("look up user", err)
	}

	if user == nil {
		user = &models.User{
			Email:   claims.Email,
			Name:    claims.Name,
			Picture: claims.Picture,
		}
		if err := s.users.CreateWithDefaultSkills(user); err != nil {
			return "", nil, apperror.Persistence("create user", err)
		}
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("issuing session token: %w", err)
	}

	return token, user, nil
}

// Profile returns the user for an authenticated session. The id comes from a
// verified token, but the row is still checked so a deleted user cannot keep
// using an old session.
func (s *AuthService) Profile(userID uint) (*models.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, apperror.Persistence("look up user", err)
	}
	if user == nil {
		return nil, apperror.UserNotFound()
	}
	return user, nil
}

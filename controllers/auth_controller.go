package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RohitDakare/ByteForce/middleware"
	"github.com/RohitDakare/ByteForce/services"
)

// GoogleSignInRequest represents the request body for Google sign-in
type GoogleSignInRequest struct {
	Token string `json:"token" binding:"required"`
}

// AuthController handles the authentication endpoints.
type AuthController struct {
	auth *services.AuthService
}

// NewAuthController creates an AuthController backed by the given service.
func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// GoogleSignIn handles POST /api/auth/google - verifies a Google ID token,
// finds or creates the user and returns a session token with the user's
// public summary.
func (ac *AuthController) GoogleSignIn(c *gin.Context) {
	var req GoogleSignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Token is required"})
		return
	}

	token, user, err := ac.auth.Authenticate(req.Token)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user.Summary(),
	})
}

// Me handles GET /api/auth/me - returns the authenticated user's summary.
func (ac *AuthController) Me(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Could not extract user information"})
		return
	}

	user, err := ac.auth.Profile(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user.Summary())
}

// Logout handles POST /api/auth/logout - sessions are stateless, so logout
// is an acknowledgement; the client discards its token.
func (ac *AuthController) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

package middleware

import (
	"context"
	"log"
	"net/http"
	"strconv"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/gin-gonic/gin"

	"github.com/RohitDakare/ByteForce/config"
	"github.com/RohitDakare/ByteForce/services"
)

// EnsureValidSession is a middleware that checks the validity of the session
// token on every protected route. The token is the HS256 JWT this API issued
// at sign-in; the validator checks signature, expiry, issuer and audience
// with the same secret used at issuance. On success the embedded user id is
// placed in the Gin context; on any failure the request is rejected before
// handler logic runs.
func EnsureValidSession(cfg *config.Config) gin.HandlerFunc {
	keyFunc := func(ctx context.Context) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	}

	jwtValidator, err := validator.New(
		keyFunc,
		validator.HS256,
		services.SessionIssuer,
		[]string{services.SessionAudience},
	)
	if err != nil {
		log.Fatalf("Failed to set up the session token validator: %v", err)
	}

	errorHandler := func(w http.ResponseWriter, r *http.Request, err error) {
		log.Printf("Encountered error while validating session token: %v", err)
		writeAuthError(w, "Invalid or expired session token")
	}

	middleware := jwtmiddleware.New(
		jwtValidator.ValidateToken,
		jwtmiddleware.WithErrorHandler(errorHandler),
	)

	return func(c *gin.Context) {
		encounteredError := true

		var handler http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
			token := r.Context().Value(jwtmiddleware.ContextKey{}).(*validator.ValidatedClaims)

			// The subject carries the user id assigned at sign-in.
			userID, err := strconv.ParseUint(token.RegisteredClaims.Subject, 10, 32)
			if err != nil {
				log.Printf("Session token has a non-numeric subject: %v", err)
				writeAuthError(w, "Invalid or expired session token")
				return
			}

			encounteredError = false
			c.Set("user_id", uint(userID))
			c.Next()
		}

		// Use the JWT middleware to check the token
		middleware.CheckJWT(handler).ServeHTTP(c.Writer, c.Request)

		if encounteredError {
			c.Abort()
		}
	}
}

// writeAuthError writes the standard 401 error body.
func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if _, err := w.Write([]byte(`{"error":"` + message + `"}`)); err != nil {
		log.Printf("Failed to write error response: %v", err)
	}
}

// GetUserID extracts the authenticated user's id from the Gin context
func GetUserID(c *gin.Context) (uint, error) {
	value, exists := c.Get("user_id")
	if !exists {
		return 0, &AuthError{Code: "MISSING_USER_ID", Message: "User ID not found in context"}
	}

	userID, ok := value.(uint)
	if !ok {
		return 0, &AuthError{Code: "INVALID_USER_ID", Message: "User ID is not a uint"}
	}

	return userID, nil
}

// AuthError represents an authentication error
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

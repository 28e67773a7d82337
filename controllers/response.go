package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RohitDakare/ByteForce/apperror"
)

// respondError maps a service error to its HTTP status and writes the
// standard error body. This is the only place status codes are assigned to
// the error taxonomy, so every handler fails the same way.
//
// Underlying causes (datastore error text and the like) are logged here and
// never sent to clients.
func respondError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		if appErr.Cause != nil {
			log.Printf("%s: %v", appErr.Message, appErr.Cause)
		}

		status := http.StatusBadRequest
		switch {
		case errors.Is(err, apperror.ErrInvalidToken):
			status = http.StatusBadRequest
		case errors.Is(err, apperror.ErrAuthentication):
			status = http.StatusUnauthorized
		case errors.Is(err, apperror.ErrValidation):
			status = http.StatusBadRequest
		case errors.Is(err, apperror.ErrUserNotFound), errors.Is(err, apperror.ErrSkillNotFound):
			status = http.StatusNotFound
		case errors.Is(err, apperror.ErrPersistence):
			status = http.StatusBadRequest
		}

		c.JSON(status, gin.H{"error": appErr.Message})
		return
	}

	// Unknown error: never expose internal details to the client.
	log.Printf("Unexpected error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "An internal error occurred"})
}

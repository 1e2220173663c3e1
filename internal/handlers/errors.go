package handlers

import (
	"net/http"

	"github.com/coinsguard/coinsguard-api/internal/forms"
	apperrors "github.com/coinsguard/coinsguard-api/pkg/errors"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Error   string            `json:"error" example:"Validation failed"`
	Details []forms.Violation `json:"details,omitempty"`
}

// attachError attaches err to the gin context so the observability middleware
// can include the reason in the request log. c.Error() returns *gin.Error (not
// the error interface), so we suppress errcheck here intentionally.
func attachError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err) //nolint:errcheck
	}
}

// respondError sends an error JSON response and attaches the error to the gin context
// so the observability middleware can include the reason in the request log.
func respondError(c *gin.Context, status int, message string, err error) {
	attachError(c, err)
	c.JSON(status, ErrorResponse{Error: message})
}

// respondErrorWithDetails sends an error response with an additional details field.
func respondErrorWithDetails(c *gin.Context, status int, message string, details []forms.Violation, err error) { //nolint:unparam
	attachError(c, err)
	c.JSON(status, ErrorResponse{Error: message, Details: details})
}

// respondServiceError maps service errors to client responses. Driver
// messages only ever reach the log.
func respondServiceError(c *gin.Context, err error) {
	var verr *forms.ValidationError
	switch {
	case apperrors.As(err, &verr):
		respondErrorWithDetails(c, http.StatusUnprocessableEntity, "Validation failed", verr.Violations, err)
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, "Invalid request", err)
	case apperrors.Is(err, apperrors.ErrStorageUnavailable):
		respondError(c, http.StatusServiceUnavailable, "Storage temporarily unavailable", err)
	case apperrors.Is(err, apperrors.ErrStorageWriteFailed):
		respondError(c, http.StatusInternalServerError, "Failed to save submission", err)
	default:
		respondError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

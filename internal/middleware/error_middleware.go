package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deren/greenhub/internal/pkg/apperrors"
	"github.com/deren/greenhub/internal/pkg/flash"
	"github.com/deren/greenhub/internal/pkg/logger"
)

// HandleError maps service errors to the redirect-plus-notice contract. Every
// user-visible failure degrades to a redirect with a flash message; only a
// missing row surfaces as a 404 and only unexpected errors as a 500.
//
// fallback is where validation and precondition failures send the caller,
// normally the page the form lives on.
func HandleError(c *gin.Context, err error, fallback string) {
	if fallback == "" {
		fallback = "/"
	}

	var vErr *apperrors.ValidationError
	switch {
	case errors.As(err, &vErr):
		flash.SetNotice(c, flash.Notice{
			Level:   flash.LevelError,
			Message: "Please correct the errors below.",
			Fields:  vErr.Fields,
		})
		c.Redirect(http.StatusSeeOther, fallback)

	case errors.Is(err, apperrors.ErrAuthRequired):
		flash.Set(c, flash.LevelError, "You need to be logged in to do that.")
		c.Redirect(http.StatusSeeOther, "/login")

	case errors.Is(err, apperrors.ErrPermissionDenied):
		flash.Set(c, flash.LevelError, "You don't have permission to do that.")
		c.Redirect(http.StatusSeeOther, "/")

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		flash.Set(c, flash.LevelError, "Invalid username or password.")
		c.Redirect(http.StatusSeeOther, "/login")

	case errors.Is(err, apperrors.ErrUsernameTaken):
		flash.Set(c, flash.LevelError, "That username is already taken.")
		c.Redirect(http.StatusSeeOther, "/signup")

	case errors.Is(err, apperrors.ErrDuplicateRequest):
		flash.Set(c, flash.LevelInfo, "You have already submitted a volunteer request.")
		c.Redirect(http.StatusSeeOther, "/events")

	case errors.Is(err, apperrors.ErrRequestMissing):
		flash.Set(c, flash.LevelError, "You must submit a volunteer request before applying for an event.")
		c.Redirect(http.StatusSeeOther, "/volunteer")

	case errors.Is(err, apperrors.ErrRequestNotApproved):
		flash.Set(c, flash.LevelError, "Your volunteer request is not approved yet.")
		c.Redirect(http.StatusSeeOther, "/events")

	case errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrPostNotFound),
		errors.Is(err, apperrors.ErrFeedbackNotFound),
		errors.Is(err, apperrors.ErrEventNotFound),
		errors.Is(err, apperrors.ErrRequestNotFound),
		errors.Is(err, apperrors.ErrApplicationNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})

	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error in handler")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

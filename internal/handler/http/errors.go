package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tusharnayak1515/users-data-backend/internal/service"
)

// HandleServiceError maps a service error to its HTTP response.
// Validation failures, conflicts and in-flow not-found conditions are
// client errors (400); failed ownership is 405; anything unexpected is
// a 500. The listing route maps service.ErrUserNotFound to 404 itself
// before delegating here.
func HandleServiceError(c *gin.Context, err error) {
	var validationErr service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		ErrorResponse(c, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, service.ErrEmailInUse),
		errors.Is(err, service.ErrPhoneInUse),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrPhoneTaken),
		errors.Is(err, service.ErrNoAccount),
		errors.Is(err, service.ErrIncorrectPassword),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrDataNotFound):
		ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotAllowed):
		ErrorResponse(c, http.StatusMethodNotAllowed, err.Error())
	default:
		logrus.WithError(err).Error("Unhandled internal server error")
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
	}
}

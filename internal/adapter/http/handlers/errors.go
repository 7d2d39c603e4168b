package handlers

import (
	"errors"
	"net/http"

	"brokerage_crm/internal/domain/domainerr"
	"brokerage_crm/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

// mapError translates the domain taxonomy into the HTTP envelope. Validation and not-found
// messages are returned as-is; anything else becomes a generic 500.
func mapError(err error) *pkg.AppError {
	var validation *domainerr.ValidationError
	switch {
	case errors.As(err, &validation):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", validation.Message, http.StatusBadRequest)
	case errors.Is(err, domainerr.ErrValidation):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, domainerr.ErrUnsupportedCarrier):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_CARRIER", err.Error(), http.StatusBadRequest)
	case errors.Is(err, domainerr.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", err.Error(), http.StatusNotFound)
	case errors.Is(err, domainerr.ErrSessionAlreadyCompleted):
		return pkg.NewDomainErrorSimple("SESSION_ALREADY_COMPLETED", err.Error(), http.StatusConflict)
	case errors.Is(err, domainerr.ErrPersistenceConflict):
		return pkg.NewDomainErrorSimple("CONFLICT", "Concurrent write conflict, retry the request", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Internal server error", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, err error) {
	appErr := mapError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

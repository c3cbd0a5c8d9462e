package http

import (
	"errors"
	"net/http"

	"warehouse/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps a use case error to an HTTP status. Typed domain errors
// carry their message to the client; anything unclassified is logged and
// hidden behind a generic 500.
func (s *Server) respondError(ctx echo.Context, err error) error {
	var status int

	switch {
	case errors.Is(err, errs.ErrObjectNotFound), errors.Is(err, errs.ErrProductsNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrVersionConflict),
		errors.Is(err, errs.ErrDuplicateKey),
		errors.Is(err, errs.ErrProductInUse):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrInsufficientInventory),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		status = http.StatusBadRequest
	default:
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return ctx.JSON(status, ErrorResponse{Code: status, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

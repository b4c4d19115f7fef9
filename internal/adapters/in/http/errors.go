package http

import (
	"errors"
	"fmt"
	"net/http"

	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// StatusFor maps an error kind to its HTTP status code.
func StatusFor(kind errs.Kind) int {
	switch kind {
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindNotOwner:
		return http.StatusForbidden
	case errs.KindInvalidTransition:
		return http.StatusConflict
	case errs.KindInvalidItem:
		return http.StatusUnprocessableEntity
	case errs.KindNoAvailableCourier:
		return http.StatusServiceUnavailable
	case errs.KindConflict:
		return http.StatusConflict
	case errs.KindInvalidArgument:
		return http.StatusBadRequest
	case errs.KindStorageFailure:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler renders handler errors as ErrorResponse. Storage failures are
// logged and reported without their details.
func (s *Server) ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var response ErrorResponse
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		response = ErrorResponse{
			Code:    httpErr.Code,
			Kind:    "http",
			Message: fmt.Sprint(httpErr.Message),
		}
	} else {
		kind := errs.KindOf(err)
		response = ErrorResponse{
			Code:    StatusFor(kind),
			Kind:    kind.String(),
			Message: err.Error(),
		}
		if kind == errs.KindStorageFailure {
			s.logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err,
			)
			response.Message = "internal error"
		}
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(response.Code)
	} else {
		writeErr = c.JSON(response.Code, response)
	}
	if writeErr != nil {
		s.logger.ErrorContext(c.Request().Context(), "failed to write error response", "error", writeErr)
	}
}

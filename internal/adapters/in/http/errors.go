package http

import (
	"errors"
	"net/http"

	"logistics/internal/generated/servers"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps a domain error onto the HTTP status the API documents for it.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrCapacityExceeded),
		errors.Is(err, errs.ErrDriverOccupied),
		errors.Is(err, errs.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, errs.ErrNoRoute):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func errorResponse(ctx echo.Context, err error) error {
	code := statusOf(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = http.StatusText(code)
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}

func notFound(ctx echo.Context, what string) error {
	return ctx.JSON(http.StatusNotFound, servers.Error{
		Code:    http.StatusNotFound,
		Message: what + " not found",
	})
}

// httpErrorHandler renders errors that escape the handlers (routing, binding,
// parameter parsing, panics turned into errors) with the same body as domain
// errors.
func httpErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		_ = errorResponse(ctx, err)
		return
	}

	message := http.StatusText(he.Code)
	if m, ok := he.Message.(string); ok {
		message = m
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(he.Code)
		return
	}

	_ = ctx.JSON(he.Code, servers.Error{
		Code:    he.Code,
		Message: message,
	})
}

package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"siged/internal/adapter/middleware"
	"siged/internal/domain/document"
	"siged/internal/domain/domainerr"
)

// Observer counts operation outcomes.
type Observer interface {
	Observe(operation string, err error)
}

type nopObserver struct{}

func (nopObserver) Observe(string, error) {}

func observerOrNop(o Observer) Observer {
	if o == nil {
		return nopObserver{}
	}
	return o
}

// StatusFor maps a usecase error onto an HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, document.ErrStaleDocument):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainerr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrStorage):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func writeError(c echo.Context, err error) error {
	c.Set(middleware.ErrorContextKey, err)
	status := StatusFor(err)

	var de *domainerr.Error
	switch {
	case errors.As(err, &de):
		resp := ErrorResponse{Error: de.Code, Message: de.Message}
		if de.Field != "" {
			resp.Details = []FieldError{{Field: de.Field, Message: de.Message}}
		}
		return c.JSON(status, resp)
	case errors.Is(err, document.ErrStaleDocument):
		return c.JSON(status, ErrorResponse{Error: "concurrent_modification", Message: "the records were modified concurrently, retry the request"})
	case status == http.StatusServiceUnavailable:
		return c.JSON(status, ErrorResponse{Error: "storage_unavailable", Message: "records storage is unavailable"})
	}
	return c.JSON(status, ErrorResponse{Error: "internal_error"})
}

// bindAndValidate answers 400 on malformed bodies and 422 on shape errors.
// A false return means the response was already written.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		c.Set(middleware.ErrorContextKey, err)
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_body"})
	}
	if err := c.Validate(req); err != nil {
		c.Set(middleware.ErrorContextKey, err)
		return false, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation_failed",
			Details: ToFieldErrors(err),
		})
	}
	return true, nil
}

// intParam answers 400 when the path parameter is not an integer.
func intParam(c echo.Context, name string) (int, bool, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.Set(middleware.ErrorContextKey, err)
		return 0, false, c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_path_param",
			Details: []FieldError{{Field: name, Message: "must be an integer"}},
		})
	}
	return v, true, nil
}

func ok(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

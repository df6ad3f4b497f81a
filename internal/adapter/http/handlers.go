package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"siged/internal/usecase/records"
)

type Handler struct{ records *records.Usecase }

func NewHandler(records *records.Usecase) *Handler { return &Handler{records: records} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// Document returns the whole persisted records document.
func (h *Handler) Document(c echo.Context) error {
	doc, err := h.records.Document(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, doc)
}

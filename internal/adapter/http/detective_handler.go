package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"siged/internal/usecase/detective"
)

type DetectiveHandler struct {
	uc  *detective.Usecase
	obs Observer
}

func NewDetectiveHandler(uc *detective.Usecase, obs Observer) *DetectiveHandler {
	return &DetectiveHandler{uc: uc, obs: observerOrNop(obs)}
}

type promoteReq struct {
	NewLevel *int `json:"newLevel" validate:"required,gte=1"`
}

func (h *DetectiveHandler) Get(c echo.Context) error {
	d, err := h.uc.Get(c.Request().Context(), c.Param("dni"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true, "detective": d})
}

func (h *DetectiveHandler) List(c echo.Context) error {
	list, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *DetectiveHandler) ListPromotable(c echo.Context) error {
	list, err := h.uc.ListPromotable(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *DetectiveHandler) Promote(c echo.Context) error {
	var req promoteReq
	if done, err := bindAndValidate(c, &req); !done {
		return err
	}
	err := h.uc.Promote(c.Request().Context(), c.Param("dni"), *req.NewLevel)
	h.obs.Observe("promote_detective", err)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c)
}

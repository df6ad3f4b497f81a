package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"siged/internal/usecase/court"
)

type CourtHandler struct {
	uc  *court.Usecase
	obs Observer
}

func NewCourtHandler(uc *court.Usecase, obs Observer) *CourtHandler {
	return &CourtHandler{uc: uc, obs: observerOrNop(obs)}
}

type createCourtReq struct {
	CIF     string `json:"cif"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type updateCourtReq struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

func (h *CourtHandler) Create(c echo.Context) error {
	var req createCourtReq
	if done, err := bindAndValidate(c, &req); !done {
		return err
	}
	created, err := h.uc.Create(c.Request().Context(), court.CreateInput(req))
	h.obs.Observe("create_court", err)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"ok": true, "court": created})
}

func (h *CourtHandler) Update(c echo.Context) error {
	var req updateCourtReq
	if done, err := bindAndValidate(c, &req); !done {
		return err
	}
	updated, err := h.uc.Update(c.Request().Context(), c.Param("cif"), court.UpdateInput(req))
	h.obs.Observe("update_court", err)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true, "court": updated})
}

func (h *CourtHandler) Delete(c echo.Context) error {
	err := h.uc.Delete(c.Request().Context(), c.Param("cif"))
	h.obs.Observe("delete_court", err)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c)
}

func (h *CourtHandler) Get(c echo.Context) error {
	found, err := h.uc.Get(c.Request().Context(), c.Param("cif"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, found)
}

func (h *CourtHandler) List(c echo.Context) error {
	courts, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, courts)
}

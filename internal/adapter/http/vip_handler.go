package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"siged/internal/usecase/vip"
)

type VipHandler struct {
	uc  *vip.Usecase
	obs Observer
}

func NewVipHandler(uc *vip.Usecase, obs Observer) *VipHandler {
	return &VipHandler{uc: uc, obs: observerOrNop(obs)}
}

type createVipReq struct {
	CourtCIF     string   `json:"court_cif"     validate:"required"`
	Description  string   `json:"description"`
	Payment      *float64 `json:"payment"       validate:"required,dec2"`
	CreationDate string   `json:"creation_date" validate:"required,civildate"`
}

type assignVipReq struct {
	DetectiveID    string `json:"detectiveId"     validate:"required"`
	AssignmentDate string `json:"assignment_date" validate:"required,civildate"`
}

type finaliseVipReq struct {
	CompletionDate string `json:"completion_date" validate:"required,civildate"`
}

func (h *VipHandler) Create(c echo.Context) error {
	var req createVipReq
	if done, err := bindAndValidate(c, &req); !done {
		return err
	}
	created, err := h.uc.Create(c.Request().Context(), vip.CreateInput{
		CourtCIF:     req.CourtCIF,
		Description:  req.Description,
		Payment:      *req.Payment,
		CreationDate: req.CreationDate,
	})
	h.obs.Observe("create_vip_case", err)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"ok": true, "vip_case": created})
}

func (h *VipHandler) Assign(c echo.Context) error {
	id, valid, err := intParam(c, "id")
	if !valid {
		return err
	}
	var req assignVipReq
	if done, err := bindAndValidate(c, &req); !done {
		return err
	}
	updated, err := h.uc.Assign(c.Request().Context(), id, vip.AssignInput(req))
	h.obs.Observe("assign_vip_case", err)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true, "vip_case": updated})
}

func (h *VipHandler) Finalise(c echo.Context) error {
	id, valid, err := intParam(c, "id")
	if !valid {
		return err
	}
	var req finaliseVipReq
	if done, err := bindAndValidate(c, &req); !done {
		return err
	}
	updated, err := h.uc.Finalise(c.Request().Context(), id, vip.FinaliseInput(req))
	h.obs.Observe("finalise_vip_case", err)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true, "vip_case": updated})
}

// List honours ?state=unassigned|assigned|completed|all.
func (h *VipHandler) List(c echo.Context) error {
	cases, err := h.uc.List(c.Request().Context(), c.QueryParam("state"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, cases)
}

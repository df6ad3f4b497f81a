package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"siged/internal/usecase/slip"
)

type SlipHandler struct {
	uc  *slip.Usecase
	obs Observer
}

func NewSlipHandler(uc *slip.Usecase, obs Observer) *SlipHandler {
	return &SlipHandler{uc: uc, obs: observerOrNop(obs)}
}

type createSlipReq struct {
	ReportID          int      `json:"report_id"            validate:"required"`
	CourtCIF          string   `json:"court_cif"            validate:"required"`
	AmountPaidByCourt *float64 `json:"amount_paid_by_court" validate:"required,dec2"`
	Date              string   `json:"date"                 validate:"required,civildate"`
}

func (h *SlipHandler) Create(c echo.Context) error {
	var req createSlipReq
	if done, err := bindAndValidate(c, &req); !done {
		return err
	}
	created, err := h.uc.Create(c.Request().Context(), slip.CreateInput{
		ReportID:          req.ReportID,
		CourtCIF:          req.CourtCIF,
		AmountPaidByCourt: *req.AmountPaidByCourt,
		Date:              req.Date,
	})
	h.obs.Observe("create_slip", err)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"ok": true, "slip": created})
}

func (h *SlipHandler) List(c echo.Context) error {
	slips, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, slips)
}

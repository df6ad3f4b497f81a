package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"siged/internal/usecase/report"
)

type ReportHandler struct {
	uc  *report.Usecase
	obs Observer
}

func NewReportHandler(uc *report.Usecase, obs Observer) *ReportHandler {
	return &ReportHandler{uc: uc, obs: observerOrNop(obs)}
}

// Field rules are enforced by the usecase so each failure keeps its own code.
type createReportReq struct {
	DetectiveID string `json:"detectiveId"`
	NumPhotos   int    `json:"num_photos"`
	Description string `json:"description"`
}

func (h *ReportHandler) Create(c echo.Context) error {
	var req createReportReq
	if done, err := bindAndValidate(c, &req); !done {
		return err
	}
	created, err := h.uc.Create(c.Request().Context(), report.CreateInput(req))
	h.obs.Observe("create_report", err)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"ok": true, "report": created})
}

func (h *ReportHandler) List(c echo.Context) error {
	reports, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, reports)
}

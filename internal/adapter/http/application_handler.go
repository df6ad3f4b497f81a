package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"siged/internal/usecase/application"
)

type ApplicationHandler struct {
	uc  *application.Usecase
	obs Observer
}

func NewApplicationHandler(uc *application.Usecase, obs Observer) *ApplicationHandler {
	return &ApplicationHandler{uc: uc, obs: observerOrNop(obs)}
}

type submitApplicationReq struct {
	NationalID string `json:"national_id" validate:"required,dni"`
	FirstName  string `json:"first_name"  validate:"required"`
	LastName   string `json:"last_name"   validate:"required"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code" validate:"required"`
	Telephone  string `json:"telephone"   validate:"required"`
	Date       string `json:"date"        validate:"required,civildate"`
	Equipment  string `json:"equipment"   validate:"required"`
	CV         string `json:"cv"          validate:"required"`
}

type approveApplicationReq struct {
	Level *int `json:"level" validate:"required,gte=1"`
}

func (h *ApplicationHandler) Submit(c echo.Context) error {
	var req submitApplicationReq
	if done, err := bindAndValidate(c, &req); !done {
		return err
	}
	created, err := h.uc.Submit(c.Request().Context(), application.SubmitInput(req))
	h.obs.Observe("submit_application", err)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"ok": true, "application": created})
}

func (h *ApplicationHandler) Approve(c echo.Context) error {
	id, valid, err := intParam(c, "id")
	if !valid {
		return err
	}
	var req approveApplicationReq
	if done, err := bindAndValidate(c, &req); !done {
		return err
	}
	err = h.uc.Approve(c.Request().Context(), id, *req.Level)
	h.obs.Observe("approve_application", err)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c)
}

func (h *ApplicationHandler) Reject(c echo.Context) error {
	id, valid, err := intParam(c, "id")
	if !valid {
		return err
	}
	err = h.uc.Reject(c.Request().Context(), id)
	h.obs.Observe("reject_application", err)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c)
}

// List honours ?status=pending|approved|rejected|all.
func (h *ApplicationHandler) List(c echo.Context) error {
	apps, err := h.uc.List(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) ListApproved(c echo.Context) error {
	apps, err := h.uc.ListApproved(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, apps)
}

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"siged/internal/usecase/level"
)

type LevelHandler struct {
	uc  *level.Usecase
	obs Observer
}

func NewLevelHandler(uc *level.Usecase, obs Observer) *LevelHandler {
	return &LevelHandler{uc: uc, obs: observerOrNop(obs)}
}

type updatePriceReq struct {
	Price *float64 `json:"price" validate:"required,dec2"`
}

func (h *LevelHandler) List(c echo.Context) error {
	levels, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, levels)
}

func (h *LevelHandler) UpdatePrice(c echo.Context) error {
	lvl, valid, err := intParam(c, "level")
	if !valid {
		return err
	}
	var req updatePriceReq
	if done, err := bindAndValidate(c, &req); !done {
		return err
	}
	err = h.uc.UpdatePrice(c.Request().Context(), lvl, *req.Price)
	h.obs.Observe("update_level_price", err)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c)
}

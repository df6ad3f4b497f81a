package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Root         *Handler
	Applications *ApplicationHandler
	Detectives   *DetectiveHandler
	Levels       *LevelHandler
	Reports      *ReportHandler
	Slips        *SlipHandler
	Courts       *CourtHandler
	Vip          *VipHandler
}

// Register mounts the records API under /api plus /health and, when
// metrics is non-nil, /metrics.
func Register(e *echo.Echo, h Handlers, metrics http.Handler) {
	e.Validator = NewValidator()

	e.GET("/health", h.Root.Health)
	if metrics != nil {
		e.GET("/metrics", echo.WrapHandler(metrics))
	}

	api := e.Group("/api")
	api.GET("/db", h.Root.Document)

	api.GET("/detectives", h.Detectives.List)
	api.GET("/detectives/promotable", h.Detectives.ListPromotable)
	api.GET("/detectives/:dni", h.Detectives.Get)
	api.POST("/detectives/:dni/promote", h.Detectives.Promote)

	api.GET("/applications", h.Applications.List)
	api.GET("/applications/approved", h.Applications.ListApproved)
	api.POST("/applications", h.Applications.Submit)
	api.POST("/applications/:id/approve", h.Applications.Approve)
	api.POST("/applications/:id/reject", h.Applications.Reject)

	api.GET("/levels", h.Levels.List)
	api.POST("/levels/:level/price", h.Levels.UpdatePrice)

	api.GET("/reports", h.Reports.List)
	api.POST("/reports", h.Reports.Create)

	api.GET("/courts", h.Courts.List)
	api.POST("/courts", h.Courts.Create)
	api.GET("/courts/:cif", h.Courts.Get)
	api.PUT("/courts/:cif", h.Courts.Update)
	api.DELETE("/courts/:cif", h.Courts.Delete)

	api.GET("/slips", h.Slips.List)
	api.POST("/slips", h.Slips.Create)

	api.GET("/vip", h.Vip.List)
	api.POST("/vip", h.Vip.Create)
	api.POST("/vip/:id/assign", h.Vip.Assign)
	api.POST("/vip/:id/complete", h.Vip.Finalise)
}

package http

import (
	"log/slog"
	"net/http"

	"github.com/shiftlog/duty-dashboard-go/internal/domain/dashboard"
	"github.com/shiftlog/duty-dashboard-go/internal/handler/http/response"
	"github.com/shiftlog/duty-dashboard-go/internal/pkg/htmldash"
)

type PageHandler interface {
	// Dashboard serves the HTML dashboard page
	Dashboard(w http.ResponseWriter, r *http.Request)
}

type pageHandlerImpl struct {
	dashboardService dashboard.DashboardService
	renderer         *htmldash.Renderer
}

func NewPageHandler(dashboardService dashboard.DashboardService, renderer *htmldash.Renderer) PageHandler {
	return &pageHandlerImpl{
		dashboardService: dashboardService,
		renderer:         renderer,
	}
}

// Dashboard handles GET /dashboard, honoring the same query filters as
// the JSON endpoints.
func (h *pageHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	data, err := h.dashboardService.GetDashboard(r.Context(), filterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, data); err != nil {
		slog.Error("Failed to render dashboard page", "error", err)
	}
}

package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"whatsapp-reviews/internal/dashboard/service"
	"whatsapp-reviews/internal/dashboard/view"
	"whatsapp-reviews/internal/shared/response"
)

type DashboardHandler struct {
	dashboard *service.Dashboard
	formatter view.DateFormatter
}

func NewDashboardHandler(dashboard *service.Dashboard, formatter view.DateFormatter) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		formatter: formatter,
	}
}

// =====================================================
// PAGE
// =====================================================

// Page renders the review table. The first visit starts the initial load.
// GET /
func (h *DashboardHandler) Page(c *gin.Context) {
	h.dashboard.Mount(backgroundContext(c))

	state := h.dashboard.Snapshot()
	page := view.NewPage(state.Reviews, state.Loading, state.Error, h.formatter)

	c.HTML(http.StatusOK, view.PageTemplate, page)
}

// Refresh re-fetches every review and sends the browser back to the page.
// The fetch keeps running after the redirect.
// POST /refresh
func (h *DashboardHandler) Refresh(c *gin.Context) {
	h.dashboard.Trigger(backgroundContext(c))
	c.Redirect(http.StatusSeeOther, "/")
}

// State exposes the current dashboard state as JSON
// GET /state
func (h *DashboardHandler) State(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboard.Snapshot())
}

// Health
// GET /health
func (h *DashboardHandler) Health(c *gin.Context) {
	response.Health(c)
}

// backgroundContext keeps request values but outlives the request
func backgroundContext(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}

package http

import (
	"errors"
	"net/http"

	"stock-sentiment-dashboard/internal/dashboard/dto"
	"stock-sentiment-dashboard/internal/dashboard/render"
	"stock-sentiment-dashboard/internal/dashboard/service"
	"stock-sentiment-dashboard/pkg/logger"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the HTML dashboard.
type DashboardHandler struct {
	sessions service.SessionService
	cookie   SessionCookie
	logger   *logger.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(sessions service.SessionService, cookie SessionCookie, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{sessions: sessions, cookie: cookie, logger: logger}
}

// RegisterRoutes registers the page routes to the Echo group.
func (h *DashboardHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/", h.Index)
	g.POST("/search", h.Search)
	g.POST("/email", h.RequestEmail)
	g.POST("/reset", h.Reset)
	g.GET("/healthz", h.Health)
}

// Index renders the session's dashboard. The first visit activates the session.
func (h *DashboardHandler) Index(c echo.Context) error {
	ctx := c.Request().Context()
	state, err := h.sessions.Open(ctx, h.cookie.ID(c))
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to open dashboard session", logger.ErrorField(err))
		return c.String(http.StatusInternalServerError, "Failed to load dashboard")
	}
	return c.Render(http.StatusOK, render.PageTemplate, render.NewPage(state))
}

// Search starts a search for the submitted keyword and redirects back to the dashboard.
func (h *DashboardHandler) Search(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.sessions.Search(ctx, h.cookie.ID(c), c.FormValue("keyword")); err != nil {
		h.logRejected(c, "Search rejected", err)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// RequestEmail starts an email report request and redirects back to the dashboard.
func (h *DashboardHandler) RequestEmail(c echo.Context) error {
	var form dto.EmailReportForm
	if err := c.Bind(&form); err != nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	if err := h.sessions.RequestEmail(c.Request().Context(), h.cookie.ID(c), form); err != nil {
		h.logRejected(c, "Email report request rejected", err)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// Reset discards the session's dashboard and redirects to a freshly activated one.
func (h *DashboardHandler) Reset(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.sessions.Reset(ctx, h.cookie.ID(c)); err != nil {
		h.logger.ErrorContext(ctx, "Failed to reset dashboard session", logger.ErrorField(err))
		return c.String(http.StatusInternalServerError, "Failed to reset dashboard")
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// Health reports liveness.
func (h *DashboardHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h *DashboardHandler) logRejected(c echo.Context, msg string, err error) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		h.logger.DebugContext(c.Request().Context(), msg, logger.StringField("reason", validationErr.Message))
		return
	}
	h.logger.ErrorContext(c.Request().Context(), msg, logger.ErrorField(err))
}

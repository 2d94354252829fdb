package http

import (
	"errors"
	"net/http"

	"stock-sentiment-dashboard/internal/dashboard/dto"
	"stock-sentiment-dashboard/internal/dashboard/service"
	"stock-sentiment-dashboard/pkg/logger"

	"github.com/labstack/echo/v4"
)

// APIHandler exposes the session view state as JSON.
type APIHandler struct {
	sessions service.SessionService
	cookie   SessionCookie
	logger   *logger.Logger
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(sessions service.SessionService, cookie SessionCookie, logger *logger.Logger) *APIHandler {
	return &APIHandler{sessions: sessions, cookie: cookie, logger: logger}
}

// RegisterRoutes registers the API routes to the Echo group.
func (h *APIHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/state", h.GetState)
	g.DELETE("/state", h.ResetState)
	g.POST("/search", h.Search)
	g.POST("/email", h.RequestEmail)
}

// GetState godoc
// @Summary Get the session view state
// @Description Returns the dashboard state of the calling session, activating it on first use
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.ViewStateRecord
// @Failure 500 {object} dto.ErrorResponse
// @Router /state [get]
func (h *APIHandler) GetState(c echo.Context) error {
	state, err := h.sessions.Open(c.Request().Context(), h.cookie.ID(c))
	if err != nil {
		h.logger.ErrorContext(c.Request().Context(), "Failed to open dashboard session", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, state.Record())
}

// ResetState godoc
// @Summary Reset the session view state
// @Description Discards the dashboard state of the calling session
// @Tags dashboard
// @Success 204
// @Failure 500 {object} dto.ErrorResponse
// @Router /state [delete]
func (h *APIHandler) ResetState(c echo.Context) error {
	if err := h.sessions.Reset(c.Request().Context(), h.cookie.ID(c)); err != nil {
		h.logger.ErrorContext(c.Request().Context(), "Failed to reset dashboard session", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

// Search godoc
// @Summary Search a keyword
// @Description Starts loading the dashboard for a keyword. Poll /state for the result.
// @Tags dashboard
// @Accept  json
// @Produce  json
// @Param   search  body    dto.SearchRequest   true    "Keyword to load"
// @Success 202 {object} dto.AcceptedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /search [post]
func (h *APIHandler) Search(c echo.Context) error {
	var req dto.SearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}

	err := h.sessions.Search(c.Request().Context(), h.cookie.ID(c), req.Keyword)
	return h.accepted(c, err)
}

// RequestEmail godoc
// @Summary Request an email report
// @Description Queues an emailed sentiment report. Poll /state for the submission status.
// @Tags dashboard
// @Accept  json
// @Produce  json
// @Param   report  body    dto.EmailReportForm   true    "Report parameters"
// @Success 202 {object} dto.AcceptedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /email [post]
func (h *APIHandler) RequestEmail(c echo.Context) error {
	var form dto.EmailReportForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}

	err := h.sessions.RequestEmail(c.Request().Context(), h.cookie.ID(c), form)
	return h.accepted(c, err)
}

func (h *APIHandler) accepted(c echo.Context, err error) error {
	var validationErr *service.ValidationError
	switch {
	case err == nil:
		return c.JSON(http.StatusAccepted, dto.AcceptedResponse{Status: "accepted"})
	case errors.As(err, &validationErr):
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: validationErr.Message})
	default:
		h.logger.ErrorContext(c.Request().Context(), "Failed to start dashboard operation", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
}

package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/http/handlers/common"
	"github.com/ignatzorin/portfolio-backend/internal/service"
	"github.com/ignatzorin/portfolio-backend/internal/validation"
)

// AnalyticsHandler принимает просмотры страниц и отдаёт статистику.
type AnalyticsHandler struct {
	analytics *service.AnalyticsService
}

// NewAnalyticsHandler создаёт новый хэндлер.
func NewAnalyticsHandler(analytics *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// Track обрабатывает POST /analytics/track и отвечает 201. Пустое тело означает просмотр корня без сессии.
func (h *AnalyticsHandler) Track(c *gin.Context) {
	var req dto.TrackRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		common.Fail(c, validation.BindingError(err))
		return
	}

	sessionID, err := h.analytics.Track(c.Request.Context(), service.Visit{
		SessionID: req.SessionID,
		Path:      req.Path,
		Title:     req.Title,
		Duration:  req.Duration,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Referer:   c.Request.Referer(),
	})
	if err != nil {
		common.Fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.TrackResponse{
		Status:    "success",
		SessionID: sessionID,
		Message:   "Page view tracked",
	})
}

// Stats обрабатывает GET /analytics/stats?days=N.
func (h *AnalyticsHandler) Stats(c *gin.Context) {
	days, err := common.IntQuery(c, "days", service.DefaultStatsDays)
	if err != nil {
		common.Fail(c, err)
		return
	}

	stats, err := h.analytics.Stats(c.Request.Context(), days)
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Recent обрабатывает GET /analytics/recent?limit=N.
func (h *AnalyticsHandler) Recent(c *gin.Context) {
	limit, err := common.IntQuery(c, "limit", service.DefaultRecentSize)
	if err != nil {
		common.Fail(c, err)
		return
	}

	recent, err := h.analytics.Recent(c.Request.Context(), limit)
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, recent)
}

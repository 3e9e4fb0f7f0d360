package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/http/handlers/common"
	"github.com/ignatzorin/portfolio-backend/internal/service"
)

// NewsHandler обслуживает маршруты публикаций в СМИ (/news и /media-coverage).
type NewsHandler struct {
	news *service.NewsService
}

// NewNewsHandler создаёт новый хэндлер.
func NewNewsHandler(news *service.NewsService) *NewsHandler {
	return &NewsHandler{news: news}
}

// ListArticles обрабатывает GET /news.
func (h *NewsHandler) ListArticles(c *gin.Context) {
	page, err := common.GetPage(c)
	if err != nil {
		common.Fail(c, err)
		return
	}
	userID, err := common.OptionalUserID(c)
	if err != nil {
		common.Fail(c, err)
		return
	}

	items, err := h.news.ListArticles(c.Request.Context(), userID, page)
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetArticle обрабатывает GET /news/:id.
func (h *NewsHandler) GetArticle(c *gin.Context) {
	item, err := h.news.GetArticle(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateArticle обрабатывает POST /news.
func (h *NewsHandler) CreateArticle(c *gin.Context) {
	var req dto.NewsInput
	if err := common.BindJSON(c, &req); err != nil {
		common.Fail(c, err)
		return
	}

	item, err := h.news.CreateArticle(c.Request.Context(), req)
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateArticle обрабатывает PUT /news/:id.
func (h *NewsHandler) UpdateArticle(c *gin.Context) {
	var req dto.NewsInput
	if err := common.BindJSON(c, &req); err != nil {
		common.Fail(c, err)
		return
	}

	item, err := h.news.UpdateArticle(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteArticle обрабатывает DELETE /news/:id.
func (h *NewsHandler) DeleteArticle(c *gin.Context) {
	item, err := h.news.DeleteArticle(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

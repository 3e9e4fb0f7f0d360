package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/http/handlers/common"
	"github.com/ignatzorin/portfolio-backend/internal/service"
)

// CompetitionHandler обслуживает маршруты конкурсов.
type CompetitionHandler struct {
	competitions *service.CompetitionService
}

// NewCompetitionHandler создаёт новый хэндлер.
func NewCompetitionHandler(competitions *service.CompetitionService) *CompetitionHandler {
	return &CompetitionHandler{competitions: competitions}
}

// ListCompetitions обрабатывает GET /competitions.
func (h *CompetitionHandler) ListCompetitions(c *gin.Context) {
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

	items, err := h.competitions.ListCompetitions(c.Request.Context(), userID, page)
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetCompetition обрабатывает GET /competitions/:id.
func (h *CompetitionHandler) GetCompetition(c *gin.Context) {
	item, err := h.competitions.GetCompetition(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateCompetition обрабатывает POST /competitions.
func (h *CompetitionHandler) CreateCompetition(c *gin.Context) {
	var req dto.CompetitionInput
	if err := common.BindJSON(c, &req); err != nil {
		common.Fail(c, err)
		return
	}

	item, err := h.competitions.CreateCompetition(c.Request.Context(), req)
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateCompetition обрабатывает PUT /competitions/:id.
func (h *CompetitionHandler) UpdateCompetition(c *gin.Context) {
	var req dto.CompetitionInput
	if err := common.BindJSON(c, &req); err != nil {
		common.Fail(c, err)
		return
	}

	item, err := h.competitions.UpdateCompetition(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteCompetition обрабатывает DELETE /competitions/:id.
func (h *CompetitionHandler) DeleteCompetition(c *gin.Context) {
	item, err := h.competitions.DeleteCompetition(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/http/handlers/common"
	"github.com/ignatzorin/portfolio-backend/internal/service"
)

// SkillHandler обслуживает маршруты навыков.
type SkillHandler struct {
	skills *service.SkillService
}

// NewSkillHandler создаёт новый хэндлер.
func NewSkillHandler(skills *service.SkillService) *SkillHandler {
	return &SkillHandler{skills: skills}
}

// ListSkills обрабатывает GET /skills.
func (h *SkillHandler) ListSkills(c *gin.Context) {
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

	items, err := h.skills.ListSkills(c.Request.Context(), userID, page)
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetSkill обрабатывает GET /skills/:id.
func (h *SkillHandler) GetSkill(c *gin.Context) {
	item, err := h.skills.GetSkill(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateSkill обрабатывает POST /skills.
func (h *SkillHandler) CreateSkill(c *gin.Context) {
	var req dto.SkillInput
	if err := common.BindJSON(c, &req); err != nil {
		common.Fail(c, err)
		return
	}

	item, err := h.skills.CreateSkill(c.Request.Context(), req)
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateSkill обрабатывает PUT /skills/:id.
func (h *SkillHandler) UpdateSkill(c *gin.Context) {
	var req dto.SkillInput
	if err := common.BindJSON(c, &req); err != nil {
		common.Fail(c, err)
		return
	}

	item, err := h.skills.UpdateSkill(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteSkill обрабатывает DELETE /skills/:id.
func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	item, err := h.skills.DeleteSkill(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

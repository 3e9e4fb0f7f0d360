package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/http/handlers/common"
	"github.com/ignatzorin/portfolio-backend/internal/service"
)

// PatentHandler обслуживает маршруты патентов.
type PatentHandler struct {
	patents *service.PatentService
}

// NewPatentHandler создаёт новый хэндлер.
func NewPatentHandler(patents *service.PatentService) *PatentHandler {
	return &PatentHandler{patents: patents}
}

// ListPatents обрабатывает GET /patents. Фильтр user_id важнее category.
func (h *PatentHandler) ListPatents(c *gin.Context) {
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

	filter := service.PatentFilter{UserID: userID, Category: c.Query("category")}
	items, err := h.patents.ListPatents(c.Request.Context(), filter, page)
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetPatent обрабатывает GET /patents/:id.
func (h *PatentHandler) GetPatent(c *gin.Context) {
	p, err := h.patents.GetPatent(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// CreatePatent обрабатывает POST /patents.
func (h *PatentHandler) CreatePatent(c *gin.Context) {
	var req dto.PatentInput
	if err := common.BindJSON(c, &req); err != nil {
		common.Fail(c, err)
		return
	}

	p, err := h.patents.CreatePatent(c.Request.Context(), req)
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// UpdatePatent обрабатывает PUT /patents/:id.
func (h *PatentHandler) UpdatePatent(c *gin.Context) {
	var req dto.PatentInput
	if err := common.BindJSON(c, &req); err != nil {
		common.Fail(c, err)
		return
	}

	p, err := h.patents.UpdatePatent(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeletePatent обрабатывает DELETE /patents/:id.
func (h *PatentHandler) DeletePatent(c *gin.Context) {
	p, err := h.patents.DeletePatent(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

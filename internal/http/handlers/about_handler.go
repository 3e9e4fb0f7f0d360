package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/http/handlers/common"
	"github.com/ignatzorin/portfolio-backend/internal/service"
)

// AboutValueHandler обслуживает маршруты карточек «Обо мне».
type AboutValueHandler struct {
	values *service.AboutValueService
}

// NewAboutValueHandler создаёт новый хэндлер.
func NewAboutValueHandler(values *service.AboutValueService) *AboutValueHandler {
	return &AboutValueHandler{values: values}
}

// ListValues обрабатывает GET /about-values. active=true оставляет только активные карточки.
func (h *AboutValueHandler) ListValues(c *gin.Context) {
	page, err := common.GetPage(c)
	if err != nil {
		common.Fail(c, err)
		return
	}

	activeOnly := c.Query("active") == "true"
	items, err := h.values.ListValues(c.Request.Context(), activeOnly, page)
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetValue обрабатывает GET /about-values/:id.
func (h *AboutValueHandler) GetValue(c *gin.Context) {
	v, err := h.values.GetValue(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// CreateValue обрабатывает POST /about-values.
func (h *AboutValueHandler) CreateValue(c *gin.Context) {
	var req dto.AboutValueInput
	if err := common.BindJSON(c, &req); err != nil {
		common.Fail(c, err)
		return
	}

	v, err := h.values.CreateValue(c.Request.Context(), req)
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// UpdateValue обрабатывает PUT /about-values/:id.
func (h *AboutValueHandler) UpdateValue(c *gin.Context) {
	var req dto.AboutValueInput
	if err := common.BindJSON(c, &req); err != nil {
		common.Fail(c, err)
		return
	}

	v, err := h.values.UpdateValue(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// DeleteValue обрабатывает DELETE /about-values/:id.
func (h *AboutValueHandler) DeleteValue(c *gin.Context) {
	v, err := h.values.DeleteValue(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// Reorder обрабатывает POST /about-values/reorder.
func (h *AboutValueHandler) Reorder(c *gin.Context) {
	var req dto.ReorderRequest
	if err := common.BindJSON(c, &req); err != nil {
		common.Fail(c, err)
		return
	}

	if err := h.values.Reorder(c.Request.Context(), req.OrderedIDs); err != nil {
		common.Fail(c, err)
		return
	}

	items, err := h.values.ListValues(c.Request.Context(), false, common.DefaultPage())
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/http/handlers/common"
	"github.com/ignatzorin/portfolio-backend/internal/service"
)

// ProjectHandler обслуживает маршруты проектов.
type ProjectHandler struct {
	projects *service.ProjectService
}

// NewProjectHandler создаёт новый хэндлер.
func NewProjectHandler(projects *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// ListProjects обрабатывает GET /projects.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
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

	items, err := h.projects.ListProjects(c.Request.Context(), userID, page)
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetProject обрабатывает GET /projects/:id.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	item, err := h.projects.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateProject обрабатывает POST /projects.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.ProjectInput
	if err := common.BindJSON(c, &req); err != nil {
		common.Fail(c, err)
		return
	}

	item, err := h.projects.CreateProject(c.Request.Context(), req)
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateProject обрабатывает PUT /projects/:id.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var req dto.ProjectInput
	if err := common.BindJSON(c, &req); err != nil {
		common.Fail(c, err)
		return
	}

	item, err := h.projects.UpdateProject(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteProject обрабатывает DELETE /projects/:id.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	item, err := h.projects.DeleteProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/http/handlers/common"
	"github.com/ignatzorin/portfolio-backend/internal/service"
)

// UserHandler обслуживает маршруты пользователей и профиля владельца.
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler создаёт новый хэндлер.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// ListUsers обрабатывает GET /users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, err := common.GetPage(c)
	if err != nil {
		common.Fail(c, err)
		return
	}

	users, err := h.users.ListUsers(c.Request.Context(), page)
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser обрабатывает GET /users/:id.
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.users.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUser обрабатывает POST /users.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.UserInput
	if err := common.BindJSON(c, &req); err != nil {
		common.Fail(c, err)
		return
	}

	user, err := h.users.CreateUser(c.Request.Context(), req)
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// UpdateUser обрабатывает PUT /users/:id.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UserInput
	if err := common.BindJSON(c, &req); err != nil {
		common.Fail(c, err)
		return
	}

	user, err := h.users.UpdateUser(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetOwner обрабатывает GET /user.
func (h *UserHandler) GetOwner(c *gin.Context) {
	owner, err := h.users.GetOwnerProfile(c.Request.Context())
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, owner)
}

// UpdateOwner обрабатывает POST /user/update.
func (h *UserHandler) UpdateOwner(c *gin.Context) {
	var req dto.UserInput
	if err := common.BindJSON(c, &req); err != nil {
		common.Fail(c, err)
		return
	}

	owner, err := h.users.UpsertOwner(c.Request.Context(), req)
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, owner)
}

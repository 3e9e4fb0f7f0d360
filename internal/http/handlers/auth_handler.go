package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/http/handlers/common"
	"github.com/ignatzorin/portfolio-backend/internal/logger"
	"github.com/ignatzorin/portfolio-backend/internal/service"
)

// AuthHandler проверяет пароль администратора.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler создаёт новый хэндлер.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login обрабатывает POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := common.BindJSON(c, &req); err != nil {
		common.Fail(c, err)
		return
	}

	if err := h.auth.Login(c.Request.Context(), req.Password); err != nil {
		logger.FromContext(c.Request.Context()).WithField("client_ip", c.ClientIP()).Warn("admin login failed")
		common.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Success: true, Message: "Login successful"})
}

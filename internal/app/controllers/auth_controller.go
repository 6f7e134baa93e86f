package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grupoidi/deptoweb/internal/app/models/dto"
	"github.com/grupoidi/deptoweb/internal/app/services"
	"github.com/grupoidi/deptoweb/internal/middleware"
)

// AuthController exposes the admin authentication endpoint
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new authentication controller
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login handles POST /auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	token, err := ctrl.authService.Login(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, token)
}

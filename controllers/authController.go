package controllers

import (
	"MigrantHealth/handlers"
	"MigrantHealth/middlewares"
	"MigrantHealth/models"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Handler *handlers.AuthHandler
	Loader  middlewares.SessionLoader
}

// NewAuthController creates a new AuthController with the given AuthHandler
func NewAuthController(authHandler *handlers.AuthHandler, loader middlewares.SessionLoader) *AuthController {
	return &AuthController{
		Handler: authHandler,
		Loader:  loader,
	}
}

// RegisterRoutes initializes all authentication and account routes
func (ac *AuthController) RegisterRoutes(router *gin.Engine) {
	// Public routes: no session required
	router.POST("/login", ac.Handler.Login)
	router.GET("/toggle_theme", ac.Handler.ToggleTheme)

	// Any authenticated session
	router.GET("/logout",
		middlewares.RequireSession(ac.Loader),
		ac.Handler.Logout)

	// Admin only
	router.POST("/create_user",
		middlewares.RequireSession(ac.Loader, models.RoleAdmin),
		ac.Handler.CreateUser)

	// Patient only, acting on self
	router.POST("/change_password",
		middlewares.RequireSession(ac.Loader, models.RolePatient),
		ac.Handler.ChangePassword)
}

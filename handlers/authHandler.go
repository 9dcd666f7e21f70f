package handlers

import (
	"net/http"

	"MigrantHealth/middlewares"
	"MigrantHealth/services"
	"MigrantHealth/sessions"

	"github.com/gin-gonic/gin"
)

// SessionManager is the slice of the session manager the handlers need.
// *sessions.Manager satisfies this.
type SessionManager interface {
	Create(c *gin.Context, session *sessions.Session) error
	Load(c *gin.Context) (*sessions.Session, error)
	Destroy(c *gin.Context) error
	ToggleTheme(c *gin.Context) (string, error)
}

type AuthHandler struct {
	AuthService services.AuthService
	Sessions    SessionManager
}

func NewAuthHandler(authService services.AuthService, sessionManager SessionManager) *AuthHandler {
	return &AuthHandler{
		AuthService: authService,
		Sessions:    sessionManager,
	}
}

// Login authenticates the user and establishes a session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var credentials struct {
		Username string `json:"username" form:"username"`
		Password string `json:"password" form:"password"`
	}
	if err := c.ShouldBind(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	user, err := h.AuthService.Authenticate(ctx, credentials.Username, credentials.Password)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}

	session := &sessions.Session{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}
	if err := h.Sessions.Create(c, session); err != nil {
		middlewares.HttpError(c, "Failed to establish session", http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"role":     user.Role,
		},
		"theme":    session.Theme,
		"redirect": middlewares.DashboardPath,
	})
}

// Logout destroys the session unconditionally and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.Sessions.Destroy(c); err != nil {
		middlewares.HttpError(c, "Failed to log out", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "You have been logged out.",
		"redirect": middlewares.LoginPath,
	})
}

// ToggleTheme flips the session's theme preference. No business-logic
// effect; anonymous callers get the default theme back unchanged.
func (h *AuthHandler) ToggleTheme(c *gin.Context) {
	theme, err := h.Sessions.ToggleTheme(c)
	if err != nil {
		middlewares.HttpError(c, "Failed to toggle theme", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

// CreateUser lets an admin create an account with an explicit role.
func (h *AuthHandler) CreateUser(c *gin.Context) {
	var payload struct {
		Username string `json:"username" form:"username"`
		Password string `json:"password" form:"password"`
		Role     string `json:"role" form:"role"`
	}
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	user, err := h.AuthService.CreateUser(ctx, payload.Username, payload.Password, payload.Role)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User '" + user.Username + "' created successfully!",
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}

// ChangePassword lets a patient replace their own password.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	session, ok := middlewares.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":    "Please log in to access this page.",
			"redirect": middlewares.LoginPath,
		})
		return
	}

	var payload struct {
		OldPassword     string `json:"old_password" form:"old_password"`
		NewPassword     string `json:"new_password" form:"new_password"`
		ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
	}
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	err := h.AuthService.ChangePassword(ctx, session.UserID,
		payload.OldPassword, payload.NewPassword, payload.ConfirmPassword)
	if err != nil {
		middlewares.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Your password has been changed successfully.",
		"redirect": middlewares.DashboardPath,
	})
}

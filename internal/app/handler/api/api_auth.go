package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shiptracker/internal/app/ds"
	"shiptracker/internal/app/handler/middleware"
)

type AuthHandler struct {
	Auth interface {
		Login(ctx context.Context, login, password string) (string, error)
		Logout(ctx context.Context, token string) error
	}
	SessionTTLSeconds int
}

// @Summary Login and start a session
// @Description Authenticate user, set session cookie and return the session token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body ds.LoginRequest true "Credentials"
// @Success 200 {object} object "message: string, data: {token: string}"
// @Failure 400 {object} object "error: blank login or password"
// @Failure 401 {object} object "error: invalid credentials"
// @Router /api/auth/login [post]
func (h *AuthHandler) LoginAPI(c *gin.Context) {
	var credentials ds.LoginRequest
	if err := c.BindJSON(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(credentials.Login) == "" || strings.TrimSpace(credentials.Password) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "login and password must not be blank"})
		return
	}

	token, err := h.Auth.Login(c.Request.Context(), credentials.Login, credentials.Password)
	if err != nil {
		if errors.Is(err, ds.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": ds.ErrInvalidCredentials.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.SetCookie(middleware.SessionCookie, token, h.SessionTTLSeconds, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data":    gin.H{"token": token},
	})
}

// @Summary Logout and invalidate the session
// @Tags auth
// @Produce json
// @Success 200 {object} object "message: string"
// @Failure 401 {object} object "error: message"
// @Router /api/auth/logout [post]
func (h *AuthHandler) LogoutAPI(c *gin.Context) {
	token := c.GetString(middleware.ContextToken)
	if err := h.Auth.Logout(c.Request.Context(), token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "logout failed"})
		return
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// @Summary Get the currently logged-in user
// @Tags auth
// @Produce json
// @Success 200 {object} object "data: {login: string, role: string}"
// @Failure 401 {object} object "error: message"
// @Router /api/auth/me [get]
func (h *AuthHandler) MeAPI(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"login": c.GetString(middleware.ContextLogin),
			"role":  c.GetString(middleware.ContextRole),
		},
	})
}

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shiptracker/internal/app/ds"
)

// SessionCookie — имя куки с токеном сессии
const SessionCookie = "session_id"

// Ключи контекста gin, проставляемые после успешной аутентификации
const (
	ContextLogin = "login"
	ContextRole  = "role"
	ContextToken = "session_token"
)

type principalResolver interface {
	CurrentPrincipal(ctx context.Context, token string) (*ds.Session, error)
}

// AuthMiddleware - проверка сессии из куки или заголовка Authorization.
// Защищённые маршруты получают login/role в контексте gin.
func AuthMiddleware(auth principalResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(SessionCookie)
		if err != nil || tokenStr == "" {
			authHeader := c.GetHeader("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
				return
			}
			tokenStr = strings.TrimPrefix(authHeader, "Bearer ")
		}

		session, err := auth.CurrentPrincipal(c.Request.Context(), tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		c.Set(ContextLogin, session.Login)
		c.Set(ContextRole, session.Role)
		c.Set(ContextToken, tokenStr)
		c.Next()
	}
}

package middleware

import (
	"net/http"
	"strings"

	"blog-backend/internal/app/pkg/auth"

	"github.com/gin-gonic/gin"
)

const (
	UserIDKey  = "user_id"
	IsAdminKey = "is_admin"

	SessionCookieName = "session_id"
)

// AuthService содержит сервисы для аутентификации
type AuthService struct {
	JWT     *auth.JWTService
	Session *auth.SessionService
}

// AuthMiddleware проверяет аутентификацию через JWT или сессию;
// без неё запрос обрывается с 401
func AuthMiddleware(authSvc *AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if resolveIdentity(c, authSvc) {
			c.Next()
			return
		}

		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		c.Abort()
	}
}

// OptionalAuthMiddleware кладет личность в контекст если она есть,
// но не требует авторизации (HTML-страницы решают сами)
func OptionalAuthMiddleware(authSvc *AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		resolveIdentity(c, authSvc)
		c.Next()
	}
}

// RequireAdminMiddleware проверяет, что пользователь - администратор
func RequireAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, exists := c.Get(IsAdminKey)
		if !exists || !isAdmin.(bool) {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func resolveIdentity(c *gin.Context, authSvc *AuthService) bool {
	// Пытаемся получить JWT из заголовка Authorization
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := authSvc.JWT.Validate(tokenString)
		if err == nil {
			c.Set(UserIDKey, claims.UserID)
			c.Set(IsAdminKey, claims.IsAdmin)
			return true
		}
	}

	// Пытаемся получить сессию из cookie
	sessionID, err := c.Cookie(SessionCookieName)
	if err == nil && sessionID != "" {
		sessionData, err := authSvc.Session.Get(c.Request.Context(), sessionID)
		if err == nil && sessionData != nil {
			c.Set(UserIDKey, sessionData.UserID)
			c.Set(IsAdminKey, sessionData.IsAdmin)
			// Продлеваем сессию при каждом запросе
			_ = authSvc.Session.Extend(c.Request.Context(), sessionID)
			return true
		}
	}

	return false
}

// GetCurrentUserID получает ID текущего пользователя из контекста
func GetCurrentUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	return userID.(uint), true
}

// IsCurrentUserAdmin проверяет, является ли текущий пользователь администратором
func IsCurrentUserAdmin(c *gin.Context) bool {
	isAdmin, exists := c.Get(IsAdminKey)
	if !exists {
		return false
	}
	return isAdmin.(bool)
}

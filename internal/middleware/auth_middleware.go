package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/repositories"
	"github.com/yigit/alumnihub/internal/pkg/auth"
)

// SessionCookieName is the cookie carrying the session token for browser clients
const SessionCookieName = "session"

// Context keys set by SessionAuth
const (
	ContextUserID       = "userID"
	ContextUserType     = "userType"
	ContextSessionToken = "sessionToken"
)

// AuthMiddleware guards routes behind the session store
type AuthMiddleware struct {
	sessions *auth.SessionStore
	userRepo *repositories.UserRepository
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(sessions *auth.SessionStore, userRepo *repositories.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
		userRepo: userRepo,
	}
}

// SessionAuth resolves the opaque session token to a user and rejects the
// request when no valid session is bound. The token is read from the
// Authorization header, falling back to the session cookie.
func (m *AuthMiddleware) SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		userID, err := m.sessions.Resolve(token)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Invalid or expired session")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		user, err := m.userRepo.FindByID(userID)
		if err != nil {
			// Session outlived the user record; treat as unauthenticated
			m.sessions.Revoke(token)
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		if !user.IsActive {
			m.sessions.Revoke(token)
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeAccountDisabled, "Account is disabled")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextUserType, string(user.UserType))
		c.Set(ContextSessionToken, token)

		c.Next()
	}
}

// AdminRequired rejects authenticated requests whose account is not an
// admin. Must run after SessionAuth.
func (m *AuthMiddleware) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		userType, exists := c.Get(ContextUserType)
		if !exists {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		if userType != string(models.UserTypeAdmin) {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Admin privileges required")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Next()
	}
}

// extractToken pulls the session token from the Authorization header or the
// session cookie. The header form must use the Bearer scheme.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	if cookie, err := c.Cookie(SessionCookieName); err == nil {
		return cookie
	}
	return ""
}

package auth

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-api/api/types"
	"github.com/killallgit/podcast-api/internal/models"
	authService "github.com/killallgit/podcast-api/internal/services/auth"
	"github.com/killallgit/podcast-api/internal/services/users"
)

// Context keys set by the middleware
const (
	ContextUser   = "user"
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// Handler authenticates requests with bearer tokens
type Handler struct {
	verifier types.TokenVerifier
	users    users.UserService
}

// NewHandler creates a new auth handler
func NewHandler(verifier types.TokenVerifier, users users.UserService) *Handler {
	return &Handler{
		verifier: verifier,
		users:    users,
	}
}

// AuthMiddleware resolves the bearer token to a stored user
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			types.SendUnauthorized(c, "Authorization header required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			types.SendUnauthorized(c, "Invalid authorization header format")
			return
		}

		claims, err := h.verifier.Verify(parts[1])
		if err != nil {
			if errors.Is(err, authService.ErrTokenExpired) {
				types.SendUnauthorized(c, "Token expired")
			} else {
				types.SendUnauthorized(c, "Invalid token")
			}
			return
		}

		// the token may outlive the account
		found := h.users.FindByID(c.Request.Context(), claims.ID)
		if !found.OK {
			if found.Status() >= 500 {
				types.Abort(c, found.Output)
				return
			}
			types.SendUnauthorized(c, "Invalid token")
			return
		}

		c.Set(ContextUser, found.User)
		c.Set(ContextUserID, found.User.ID)
		c.Set(ContextRole, found.User.Role)

		c.Next()
	}
}

// RequireRole allows only authenticated users holding one of roles
func (h *Handler) RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			types.SendUnauthorized(c, "Authentication required")
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		types.SendForbidden(c, "Insufficient permissions")
	}
}

// CurrentUser returns the user stored by AuthMiddleware
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextUser)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok && user != nil
}

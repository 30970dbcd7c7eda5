package auth

import (
	"net/http"
	"strings"

	apperrors "lead-dashboard-backend/internal/errors"
	"lead-dashboard-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const identityKey = "identity"

// AuthMiddleware resolves the caller identity before any team operation runs
type AuthMiddleware struct {
	resolver IdentityResolver
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(resolver IdentityResolver) *AuthMiddleware {
	return &AuthMiddleware{resolver: resolver}
}

// RequireAuth validates the bearer credential and sets the identity on the context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, apperrors.ErrMissingCredential)
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || strings.TrimSpace(tokenString) == "" {
			abortUnauthorized(c, apperrors.NewAuthenticationError("invalid authorization header format"))
			return
		}

		identity, err := m.resolver.Resolve(c.Request.Context(), tokenString)
		if err != nil {
			if !apperrors.IsAuthentication(err) {
				logger.WithContext(c.Request.Context()).WithError(err).Error("identity resolution failed")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve identity", "kind": apperrors.KindInternal})
				c.Abort()
				return
			}
			abortUnauthorized(c, err)
			return
		}

		SetIdentity(c, identity)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, err error) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error(), "kind": apperrors.KindUnauthorized})
	c.Abort()
}

// SetIdentity stores identity on the gin context and tags the request context for logging
func SetIdentity(c *gin.Context, identity *Identity) {
	c.Set(identityKey, identity)
	c.Set("user_id", identity.UserID)
	c.Request = c.Request.WithContext(logger.ContextWithUserID(c.Request.Context(), identity.UserID.String()))
}

// GetIdentity is a helper function to extract the caller identity from context
func GetIdentity(c *gin.Context) (*Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}

	identity, ok := value.(*Identity)
	return identity, ok && identity != nil
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	identity, ok := GetIdentity(c)
	if !ok {
		return uuid.Nil, false
	}
	return identity.UserID, true
}

package auth

import (
	"context"
	"net/http"
	"strings"

	"maintenance-hub-backend/internal/database/models"
	apperrors "maintenance-hub-backend/internal/errors"
	"maintenance-hub-backend/internal/logger"
	"maintenance-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys set by RequireAuth
const (
	ActorKey      = "actor"
	AuthClaimsKey = "auth_claims"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates the session token and then loads the user's role row
// and profile. A missing or invalid token is a 401; a missing role row or an
// inactive profile is a 403.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			return
		}

		// Validate token
		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		actor, err := m.service.LoadActor(claims)
		if err != nil {
			if apperrors.IsNotFound(err) || apperrors.IsAuthorization(err) {
				c.JSON(http.StatusForbidden, gin.H{"error": "Access denied", "details": err.Error()})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user role", "details": err.Error()})
			}
			c.Abort()
			return
		}

		// Set user context
		c.Set("user_id", actor.UserID)
		c.Set("email", actor.Email)
		c.Set("role", actor.Role)
		if actor.CompanyID != nil {
			c.Set("company_id", *actor.CompanyID)
		}
		c.Set(AuthClaimsKey, claims)
		c.Set(ActorKey, actor)

		ctx := context.WithValue(c.Request.Context(), logger.EmailKey, actor.Email)
		if actor.CompanyID != nil {
			ctx = context.WithValue(ctx, logger.CompanyIDKey, actor.CompanyID.String())
		}
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole allows the request only when the actor holds one of the roles.
// It must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		if !actor.HasRole(allowed...) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Role not allowed for this resource"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireCompany rejects users that are not assigned to a company. Super
// admins pass since they name the company per request.
func (m *AuthMiddleware) RequireCompany() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		if actor.CompanyID == nil && !actor.IsSuperAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": apperrors.ErrNoCompanyAssigned.Error()})
			c.Abort()
			return
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
		c.Abort()
		return "", false
	}

	// Extract token from Bearer header
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
		c.Abort()
		return "", false
	}
	return tokenString, true
}

// ActorFromContext returns the actor set by RequireAuth
func ActorFromContext(c *gin.Context) (*service.Actor, bool) {
	value, exists := c.Get(ActorKey)
	if !exists {
		return nil, false
	}

	actor, ok := value.(*service.Actor)
	return actor, ok
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get(AuthClaimsKey)
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}

package handlers

import (
	"maintenance-hub-backend/internal/auth"
	"maintenance-hub-backend/internal/database/models"
	"maintenance-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func newActor(role models.Role) *service.Actor {
	companyID := uuid.New()
	return &service.Actor{
		UserID:    uuid.New(),
		Email:     "tech@acme.test",
		Role:      role,
		CompanyID: &companyID,
	}
}

// withActor stands in for auth.RequireAuth
func withActor(actor *service.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if actor != nil {
			c.Set(auth.ActorKey, actor)
		}
		c.Next()
	}
}

package service

import (
	"fmt"
	"math"
	"time"

	"maintenance-hub-backend/internal/database/models"
	apperrors "maintenance-hub-backend/internal/errors"

	"github.com/google/uuid"
)

// Actor is the authenticated user a request runs for. It is rebuilt from the
// role row on every request.
type Actor struct {
	UserID    uuid.UUID
	Email     string
	Role      models.Role
	CompanyID *uuid.UUID
}

// IsSuperAdmin reports whether the actor may cross company boundaries
func (a *Actor) IsSuperAdmin() bool {
	return a != nil && a.Role == models.RoleSuperAdmin
}

// HasRole reports whether the actor holds one of the roles
func (a *Actor) HasRole(roles ...models.Role) bool {
	if a == nil {
		return false
	}
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}

// CompanyScope resolves the company a request operates on. Super admins may
// name any company; everyone else is pinned to their own.
func (a *Actor) CompanyScope(requested *uuid.UUID) (uuid.UUID, error) {
	if a == nil {
		return uuid.Nil, apperrors.ErrForbidden
	}
	if a.IsSuperAdmin() {
		if requested != nil && *requested != uuid.Nil {
			return *requested, nil
		}
		if a.CompanyID != nil {
			return *a.CompanyID, nil
		}
		return uuid.Nil, apperrors.NewValidationError("company_id", "company_id is required")
	}
	if a.CompanyID == nil {
		return uuid.Nil, apperrors.ErrNoCompanyAssigned
	}
	if requested != nil && *requested != uuid.Nil && *requested != *a.CompanyID {
		return uuid.Nil, apperrors.ErrCrossCompanyAccess
	}
	return *a.CompanyID, nil
}

// CanAccess reports whether a row owned by companyID is visible to the actor
func (a *Actor) CanAccess(companyID uuid.UUID) bool {
	if a.IsSuperAdmin() {
		return true
	}
	return a != nil && a.CompanyID != nil && *a.CompanyID == companyID
}

// nowFunc is the service clock
var nowFunc = func() time.Time {
	return time.Now().UTC()
}

func validationFailed(err error) error {
	return fmt.Errorf("validation failed: %w", apperrors.NewValidationFailure(err))
}

// normalizePage applies the default page size and returns the row offset
func normalizePage(page, pageSize int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize, (page - 1) * pageSize
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// round2 rounds money and percentages for display
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package seed

import (
	"testing"

	"maintenance-hub-backend/internal/database/models"
	"maintenance-hub-backend/internal/service"
	"maintenance-hub-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSeed = `
companies:
  - name: Acme Mining
    tax_id: "12.345.678/0001-90"
    email: ops@acme.example.com
users:
  - email: Admin@Acme.example.com
    full_name: Ana Admin
    password: change-me-now
    role: admin
    company: Acme Mining
  - email: tech@acme.example.com
    full_name: Tomas Tech
    password: change-me-now
    company: Acme Mining
machinery:
  - company: Acme Mining
    name: Excavator 320
    manufacturer: CAT
    serial_number: CAT-320-001
    category: excavators
    acquisition_date: "2021-04-12"
    acquisition_cost: 250000
parts:
  - company: Acme Mining
    part_number: HF-100
    name: Hydraulic filter
    quantity: 3
    minimum_quantity: 5
    unit_price: 42.5
tutorials:
  - title: Getting started
    video_url: https://videos.example.com/start.mp4
    category: getting-started
    published: true
`

func TestApplyIsIdempotent(t *testing.T) {
	db := testutils.NewTestDB(t)

	file, err := Parse([]byte(sampleSeed))
	require.NoError(t, err)

	result, err := Apply(db, file)
	require.NoError(t, err)
	assert.Equal(t, Count{Created: 1, Total: 1}, result.Companies)
	assert.Equal(t, Count{Created: 2, Total: 2}, result.Users)
	assert.Equal(t, Count{Created: 1, Total: 1}, result.Machinery)
	assert.Equal(t, Count{Created: 1, Total: 1}, result.Parts)
	assert.Equal(t, Count{Created: 1, Total: 1}, result.Tutorials)

	var admin models.Profile
	require.NoError(t, db.Preload("Role").Where("email = ?", "admin@acme.example.com").First(&admin).Error)
	require.NotNil(t, admin.Role)
	assert.Equal(t, models.RoleAdmin, admin.Role.Role)
	assert.NotNil(t, admin.CompanyID)
	assert.True(t, service.CheckPassword(admin.PasswordHash, "change-me-now"))

	var tech models.UserRole
	require.NoError(t, db.Joins("JOIN profiles ON profiles.id = user_roles.user_id").
		Where("profiles.email = ?", "tech@acme.example.com").First(&tech).Error)
	assert.Equal(t, models.RoleCommon, tech.Role)

	var part models.Part
	require.NoError(t, db.Where("part_number = ?", "HF-100").First(&part).Error)
	assert.True(t, part.IsLowStock())
	assert.Equal(t, part.UnitPrice, part.PreviousUnitPrice)

	again, err := Apply(db, file)
	require.NoError(t, err)
	assert.Equal(t, Count{Created: 0, Total: 2}, again.Users)
	assert.Equal(t, Count{Created: 0, Total: 1}, again.Machinery)
}

func TestApplyRejectsUnknownCompany(t *testing.T) {
	db := testutils.NewTestDB(t)

	file := &File{Machinery: []MachineryData{{Company: "Nobody", Name: "Lathe", SerialNumber: "L-1"}}}
	_, err := Apply(db, file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `company "Nobody" not found`)

	var count int64
	db.Model(&models.Machinery{}).Count(&count)
	assert.Zero(t, count)
}

func TestApplyRejectsCompanyRoleWithoutCompany(t *testing.T) {
	db := testutils.NewTestDB(t)

	file := &File{Users: []UserData{{Email: "loose@example.com", FullName: "Loose", Password: "change-me-now", Role: "common"}}}
	_, err := Apply(db, file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a company")
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("companies: [unclosed"))
	assert.Error(t, err)
}

func TestCreateSuperAdmin(t *testing.T) {
	db := testutils.NewTestDB(t)

	profile, created, err := CreateSuperAdmin(db, " Root@Example.com ", "super-secret", "Root")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "root@example.com", profile.Email)
	assert.Nil(t, profile.CompanyID)

	var role models.UserRole
	require.NoError(t, db.Where("user_id = ?", profile.ID).First(&role).Error)
	assert.Equal(t, models.RoleSuperAdmin, role.Role)

	again, created, err := CreateSuperAdmin(db, "root@example.com", "another-secret", "Root")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, profile.ID, again.ID)

	var roles int64
	db.Model(&models.UserRole{}).Where("user_id = ?", profile.ID).Count(&roles)
	assert.Equal(t, int64(1), roles)
}

func TestCreateSuperAdminValidatesInput(t *testing.T) {
	db := testutils.NewTestDB(t)

	_, _, err := CreateSuperAdmin(db, "root@example.com", "short", "Root")
	assert.Error(t, err)

	_, _, err = CreateSuperAdmin(db, "", "long-enough", "Root")
	assert.Error(t, err)
}

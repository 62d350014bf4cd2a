package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"maintenance-hub-backend/internal/database/models"
	apperrors "maintenance-hub-backend/internal/errors"
	"maintenance-hub-backend/internal/logger"
	"maintenance-hub-backend/internal/notify"
	"maintenance-hub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles profiles, role rows and the invitation flow
type UserService struct {
	txr       repository.TransactorInterface
	profiles  repository.ProfileRepositoryInterface
	roles     repository.UserRoleRepositoryInterface
	companies repository.CompanyRepositoryInterface
	mailer    Mailer
	validator *validator.Validate
	loginURL  string
}

// NewUserService creates a new user service
func NewUserService(
	txr repository.TransactorInterface,
	profiles repository.ProfileRepositoryInterface,
	roles repository.UserRoleRepositoryInterface,
	companies repository.CompanyRepositoryInterface,
	mailer Mailer,
	validator *validator.Validate,
	appURL string,
) *UserService {
	return &UserService{
		txr:       txr,
		profiles:  profiles,
		roles:     roles,
		companies: companies,
		mailer:    mailer,
		validator: validator,
		loginURL:  strings.TrimRight(appURL, "/") + "/login",
	}
}

// InviteUserRequest represents the request to invite a user into a company
type InviteUserRequest struct {
	Email     string     `json:"email" validate:"required,email,max=255"`
	FullName  string     `json:"full_name" validate:"required,min=1,max=200"`
	Phone     string     `json:"phone,omitempty" validate:"max=30"`
	JobTitle  string     `json:"job_title,omitempty" validate:"max=100"`
	Role      string     `json:"role" validate:"required"`
	CompanyID *uuid.UUID `json:"company_id,omitempty"`
}

// AttachUserRequest names a registered user without a company and the role
// they receive on joining
type AttachUserRequest struct {
	Email     string     `json:"email" validate:"required,email,max=255"`
	Role      string     `json:"role,omitempty"`
	CompanyID *uuid.UUID `json:"company_id,omitempty"`
}

// UpdateUserRequest represents an admin update of a user's profile
type UpdateUserRequest struct {
	FullName string `json:"full_name" validate:"required,min=1,max=200"`
	Phone    string `json:"phone,omitempty" validate:"max=30"`
	JobTitle string `json:"job_title,omitempty" validate:"max=100"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// UpdateRoleRequest represents the request to change a user's role
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// UpdateMeRequest represents a user's update of their own profile
type UpdateMeRequest struct {
	FullName string `json:"full_name" validate:"required,min=1,max=200"`
	Phone    string `json:"phone,omitempty" validate:"max=30"`
	JobTitle string `json:"job_title,omitempty" validate:"max=100"`
}

// ChangePasswordRequest represents a password change of the current user
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}

// WelcomeEmailRequest represents a resend of the welcome email
type WelcomeEmailRequest struct {
	ResetPassword bool `json:"reset_password"`
}

// UserResponse represents a profile joined with its role
type UserResponse struct {
	ID          uuid.UUID   `json:"id"`
	Email       string      `json:"email"`
	FullName    string      `json:"full_name"`
	Phone       string      `json:"phone"`
	JobTitle    string      `json:"job_title"`
	CompanyID   *uuid.UUID  `json:"company_id,omitempty"`
	Role        models.Role `json:"role"`
	IsActive    bool        `json:"is_active"`
	LastLoginAt *string     `json:"last_login_at,omitempty"`
	CreatedAt   string      `json:"created_at"`
	UpdatedAt   string      `json:"updated_at"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// InviteUserResponse reports the invited user and whether the email went out.
// The temporary password is only returned when it could not be mailed.
type InviteUserResponse struct {
	User              UserResponse `json:"user"`
	EmailSent         bool         `json:"email_sent"`
	TemporaryPassword string       `json:"temporary_password,omitempty"`
}

// WelcomeEmailResponse reports the outcome of a welcome email resend
type WelcomeEmailResponse struct {
	EmailSent         bool   `json:"email_sent"`
	TemporaryPassword string `json:"temporary_password,omitempty"`
}

// EmailLookupResponse reports whether an email is registered
type EmailLookupResponse struct {
	Exists bool       `json:"exists"`
	UserID *uuid.UUID `json:"user_id,omitempty"`
}

// List retrieves the users of a company
func (s *UserService) List(actor *Actor, companyID *uuid.UUID, page, pageSize int) (*UserListResponse, error) {
	scope, err := actor.CompanyScope(companyID)
	if err != nil {
		return nil, err
	}
	page, pageSize, offset := normalizePage(page, pageSize)

	profiles, total, err := s.profiles.GetByCompanyID(scope, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	users := make([]UserResponse, len(profiles))
	for i := range profiles {
		users[i] = *toUserResponse(&profiles[i])
	}
	return &UserListResponse{Users: users, Total: total, Page: page, PageSize: pageSize}, nil
}

// Get retrieves a user visible to the actor
func (s *UserService) Get(actor *Actor, id uuid.UUID) (*UserResponse, error) {
	profile, err := s.loadVisible(actor, id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(profile), nil
}

// Update updates a user's profile fields
func (s *UserService) Update(actor *Actor, id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	profile, err := s.loadVisible(actor, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsSuperAdmin() && roleOf(profile) == models.RoleSuperAdmin {
		return nil, apperrors.ErrForbidden
	}

	profile.FullName = req.FullName
	profile.Phone = req.Phone
	profile.JobTitle = req.JobTitle
	if req.IsActive != nil {
		if !*req.IsActive && profile.ID == actor.UserID {
			return nil, apperrors.NewValidationError("is_active", "users cannot deactivate themselves")
		}
		profile.IsActive = *req.IsActive
	}

	if err := s.profiles.Update(profile); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return toUserResponse(profile), nil
}

// UpdateRole changes the role row of a user
func (s *UserService) UpdateRole(ctx context.Context, actor *Actor, id uuid.UUID, req *UpdateRoleRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	role := models.Role(req.Role)
	if !role.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}
	if id == actor.UserID {
		return nil, apperrors.NewAuthorizationError("users cannot change their own role")
	}

	profile, err := s.loadVisible(actor, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsSuperAdmin() && (role == models.RoleSuperAdmin || roleOf(profile) == models.RoleSuperAdmin) {
		return nil, apperrors.ErrForbidden
	}

	if err := s.roles.SetRole(id, role); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserRoleNotFound
		}
		return nil, fmt.Errorf("failed to update role: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"target_user": profile.Email,
		"from":        roleOf(profile),
		"to":          role,
	}).Info("User role changed")

	if profile.Role == nil {
		profile.Role = &models.UserRole{UserID: id}
	}
	profile.Role.Role = role
	return toUserResponse(profile), nil
}

// Invite creates a profile and its role row with a temporary password, then
// emails the credentials. A failed email does not undo the invitation.
func (s *UserService) Invite(ctx context.Context, actor *Actor, req *InviteUserRequest) (*InviteUserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	role := models.Role(req.Role)
	if !role.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}
	if role == models.RoleSuperAdmin && !actor.IsSuperAdmin() {
		return nil, apperrors.ErrForbidden
	}

	companyID, err := actor.CompanyScope(req.CompanyID)
	if err != nil {
		return nil, err
	}
	company, err := s.companies.GetByID(companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	existing, err := s.profiles.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	password, err := GenerateTemporaryPassword()
	if err != nil {
		return nil, err
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	profile := &models.Profile{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		CompanyID:    &company.ID,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		FullName:     req.FullName,
		Phone:        req.Phone,
		JobTitle:     req.JobTitle,
		PasswordHash: hash,
		IsActive:     true,
	}
	roleRow := &models.UserRole{UserID: profile.ID, Role: role}

	err = s.txr.Transaction(func(repos *repository.Repositories) error {
		if err := repos.Profiles.Create(profile); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		if err := repos.UserRoles.Create(roleRow); err != nil {
			return fmt.Errorf("failed to create role: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	profile.Role = roleRow

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"invited_user": profile.Email,
		"role":         role,
		"company_id":   company.ID,
	})
	log.Info("User invited")

	resp := &InviteUserResponse{User: *toUserResponse(profile)}
	if err := s.sendWelcome(ctx, profile, company.Name, password); err != nil {
		log.WithError(err).Warn("Welcome email not sent")
		resp.TemporaryPassword = password
	} else {
		resp.EmailSent = true
	}
	return resp, nil
}

// Attach moves a self-registered user without a company into the actor's
// company and sets their role, common unless another is named.
func (s *UserService) Attach(ctx context.Context, actor *Actor, req *AttachUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}
	role := models.RoleCommon
	if req.Role != "" {
		role = models.Role(req.Role)
	}
	if role != models.RoleCommon && role != models.RoleAdmin {
		return nil, apperrors.NewValidationError("role", "role must be common or admin")
	}

	companyID, err := actor.CompanyScope(req.CompanyID)
	if err != nil {
		return nil, err
	}
	company, err := s.companies.GetByID(companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	profile, err := s.profiles.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if roleOf(profile) == models.RoleSuperAdmin {
		return nil, apperrors.ErrForbidden
	}
	if profile.CompanyID != nil {
		return nil, apperrors.ErrUserHasCompany
	}

	profile.CompanyID = &company.ID
	err = s.txr.Transaction(func(repos *repository.Repositories) error {
		if err := repos.Profiles.Update(profile); err != nil {
			return fmt.Errorf("failed to attach user: %w", err)
		}
		if err := repos.UserRoles.SetRole(profile.ID, role); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to set role: %w", err)
			}
			if err := repos.UserRoles.Create(&models.UserRole{UserID: profile.ID, Role: role}); err != nil {
				return fmt.Errorf("failed to create role: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"target_user": profile.Email,
		"company_id":  company.ID,
		"role":        role,
	}).Info("User attached to company")

	if profile.Role == nil {
		profile.Role = &models.UserRole{UserID: profile.ID}
	}
	profile.Role.Role = role
	return toUserResponse(profile), nil
}

// Delete removes a user's role row and profile
func (s *UserService) Delete(ctx context.Context, actor *Actor, id uuid.UUID) error {
	if id == actor.UserID {
		return apperrors.ErrCannotDeleteSelf
	}

	profile, err := s.loadVisible(actor, id)
	if err != nil {
		return err
	}
	if !actor.IsSuperAdmin() && roleOf(profile) == models.RoleSuperAdmin {
		return apperrors.ErrForbidden
	}

	err = s.txr.Transaction(func(repos *repository.Repositories) error {
		if err := repos.UserRoles.DeleteByUserID(id); err != nil {
			return fmt.Errorf("failed to delete role: %w", err)
		}
		if err := repos.Profiles.Delete(id); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.WithContext(ctx).WithField("deleted_user", profile.Email).Info("User deleted")
	return nil
}

// LookupEmail reports whether an email is registered. The user id is only
// disclosed when the actor may see that user.
func (s *UserService) LookupEmail(actor *Actor, email string) (*EmailLookupResponse, error) {
	email = strings.TrimSpace(email)
	if err := s.validator.Var(email, "required,email"); err != nil {
		return nil, apperrors.NewValidationError("email", "a valid email is required")
	}

	profile, err := s.profiles.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &EmailLookupResponse{Exists: false}, nil
		}
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}

	resp := &EmailLookupResponse{Exists: true}
	if s.visible(actor, profile) {
		id := profile.ID
		resp.UserID = &id
	}
	return resp, nil
}

// SendWelcomeEmail resends the welcome email, optionally issuing a new temporary password
func (s *UserService) SendWelcomeEmail(ctx context.Context, actor *Actor, id uuid.UUID, req *WelcomeEmailRequest) (*WelcomeEmailResponse, error) {
	profile, err := s.loadVisible(actor, id)
	if err != nil {
		return nil, err
	}

	var password string
	if req != nil && req.ResetPassword {
		if password, err = GenerateTemporaryPassword(); err != nil {
			return nil, err
		}
		if profile.PasswordHash, err = HashPassword(password); err != nil {
			return nil, err
		}
		if err := s.profiles.Update(profile); err != nil {
			return nil, fmt.Errorf("failed to reset password: %w", err)
		}
	}

	var companyName string
	if profile.CompanyID != nil {
		if company, err := s.companies.GetByID(*profile.CompanyID); err == nil {
			companyName = company.Name
		}
	}

	resp := &WelcomeEmailResponse{}
	if err := s.sendWelcome(ctx, profile, companyName, password); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("target_user", profile.Email).Warn("Welcome email not sent")
		resp.TemporaryPassword = password
		return resp, nil
	}
	resp.EmailSent = true
	return resp, nil
}

// GetMe retrieves the actor's own profile
func (s *UserService) GetMe(actor *Actor) (*UserResponse, error) {
	profile, err := s.load(actor.UserID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(profile), nil
}

// UpdateMe updates the actor's own profile
func (s *UserService) UpdateMe(actor *Actor, req *UpdateMeRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	profile, err := s.load(actor.UserID)
	if err != nil {
		return nil, err
	}
	profile.FullName = req.FullName
	profile.Phone = req.Phone
	profile.JobTitle = req.JobTitle

	if err := s.profiles.Update(profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return toUserResponse(profile), nil
}

// ChangePassword replaces the actor's password after checking the current one
func (s *UserService) ChangePassword(actor *Actor, req *ChangePasswordRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationFailed(err)
	}

	profile, err := s.load(actor.UserID)
	if err != nil {
		return err
	}
	if !CheckPassword(profile.PasswordHash, req.CurrentPassword) {
		return apperrors.NewValidationError("current_password", "current password is incorrect")
	}

	if profile.PasswordHash, err = HashPassword(req.NewPassword); err != nil {
		return err
	}
	if err := s.profiles.Update(profile); err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}
	return nil
}

func (s *UserService) sendWelcome(ctx context.Context, profile *models.Profile, companyName, password string) error {
	msg, err := notify.WelcomeMessage(notify.WelcomeData{
		FullName:          profile.FullName,
		Email:             profile.Email,
		CompanyName:       companyName,
		LoginURL:          s.loginURL,
		TemporaryPassword: password,
	})
	if err != nil {
		return fmt.Errorf("failed to render welcome email: %w", err)
	}
	return s.mailer.Send(ctx, msg)
}

func (s *UserService) load(id uuid.UUID) (*models.Profile, error) {
	profile, err := s.profiles.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return profile, nil
}

// loadVisible hides users of other companies behind a not found error
func (s *UserService) loadVisible(actor *Actor, id uuid.UUID) (*models.Profile, error) {
	profile, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if !s.visible(actor, profile) {
		return nil, apperrors.ErrUserNotFound
	}
	return profile, nil
}

func (s *UserService) visible(actor *Actor, profile *models.Profile) bool {
	if actor.IsSuperAdmin() {
		return true
	}
	return profile.CompanyID != nil && actor.CanAccess(*profile.CompanyID)
}

func roleOf(profile *models.Profile) models.Role {
	if profile.Role == nil {
		return ""
	}
	return profile.Role.Role
}

func toUserResponse(profile *models.Profile) *UserResponse {
	return &UserResponse{
		ID:          profile.ID,
		Email:       profile.Email,
		FullName:    profile.FullName,
		Phone:       profile.Phone,
		JobTitle:    profile.JobTitle,
		CompanyID:   profile.CompanyID,
		Role:        roleOf(profile),
		IsActive:    profile.IsActive,
		LastLoginAt: formatTimePtr(profile.LastLoginAt),
		CreatedAt:   formatTime(profile.CreatedAt),
		UpdatedAt:   formatTime(profile.UpdatedAt),
	}
}

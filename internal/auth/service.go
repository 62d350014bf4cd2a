package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"maintenance-hub-backend/internal/database/models"
	apperrors "maintenance-hub-backend/internal/errors"
	"maintenance-hub-backend/internal/logger"
	"maintenance-hub-backend/internal/repository"
	"maintenance-hub-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const issuer = "maintenance-hub-backend"

// Config holds the token settings of the auth service
type Config struct {
	JWTSecret  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// AuthService provides email and password authentication
type AuthService struct {
	config    Config
	txr       repository.TransactorInterface
	profiles  repository.ProfileRepositoryInterface
	roles     repository.UserRoleRepositoryInterface
	tokens    TokenStore
	validator *validator.Validate
	now       func() time.Time
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID    uuid.UUID   `json:"user_id" example:"6f1c2a8e-5b7d-4c1e-9a3f-2d8b7e6c5a41"`
	Email     string      `json:"email" example:"jane.doe@example.com"`
	Role      models.Role `json:"role" example:"admin"`
	CompanyID *uuid.UUID  `json:"company_id,omitempty"`
	// Standard JWT fields
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// UserProfile is the profile returned with a session
type UserProfile struct {
	ID        uuid.UUID   `json:"id"`
	Email     string      `json:"email"`
	FullName  string      `json:"fullName"`
	Role      models.Role `json:"role"`
	CompanyID *uuid.UUID  `json:"companyId,omitempty"`
}

// RegisterRequest represents the request for self registration
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=255" example:"jane.doe@example.com"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	FullName string `json:"fullName" validate:"required,max=200" example:"Jane Doe"`
}

// LoginRequest represents the request for email and password login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"jane.doe@example.com"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest represents the request for token refresh and logout
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// AuthTokenResponse represents a newly issued session
type AuthTokenResponse struct {
	AccessToken  string      `json:"accessToken"`
	TokenType    string      `json:"tokenType" example:"Bearer"`
	ExpiresIn    int64       `json:"expiresIn" example:"3600"`
	RefreshToken string      `json:"refreshToken"`
	Profile      UserProfile `json:"profile"`
}

// AuthLogoutResponse represents the response from the logout endpoint
type AuthLogoutResponse struct {
	Message string `json:"message" example:"Logged out successfully"`
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid  bool        `json:"valid" example:"true"`
	Claims *AuthClaims `json:"claims"`
}

// NewAuthService creates a new authentication service
func NewAuthService(
	config Config,
	txr repository.TransactorInterface,
	profiles repository.ProfileRepositoryInterface,
	roles repository.UserRoleRepositoryInterface,
	tokens TokenStore,
	validator *validator.Validate,
) (*AuthService, error) {
	if config.JWTSecret == "" {
		return nil, apperrors.NewConfigurationError("JWT secret is required")
	}
	if config.AccessTTL <= 0 {
		config.AccessTTL = time.Hour
	}
	if config.RefreshTTL <= 0 {
		config.RefreshTTL = 30 * 24 * time.Hour
	}
	if tokens == nil {
		tokens = NewMemoryTokenStore()
	}

	return &AuthService{
		config:    config,
		txr:       txr,
		profiles:  profiles,
		roles:     roles,
		tokens:    tokens,
		validator: validator,
		now:       time.Now,
	}, nil
}

// Register creates a visitor profile without a company
func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*UserProfile, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.FullName = strings.TrimSpace(req.FullName)
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", apperrors.NewValidationFailure(err))
	}

	if _, err := s.profiles.GetByEmail(req.Email); err == nil {
		return nil, apperrors.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := service.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	profile := &models.Profile{
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: hash,
		IsActive:     true,
	}
	err = s.txr.Transaction(func(repos *repository.Repositories) error {
		if err := repos.Profiles.Create(profile); err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}
		if err := repos.UserRoles.Create(&models.UserRole{UserID: profile.ID, Role: models.RoleVisitor}); err != nil {
			return fmt.Errorf("failed to create role: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("user_id", profile.ID).Info("User registered")
	return &UserProfile{ID: profile.ID, Email: profile.Email, FullName: profile.FullName, Role: models.RoleVisitor}, nil
}

// Login verifies the credentials and issues a new session
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*AuthTokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", apperrors.NewValidationFailure(err))
	}

	profile, err := s.profiles.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !service.CheckPassword(profile.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !profile.IsActive {
		return nil, apperrors.ErrUserInactive
	}

	role, err := s.roleOf(profile)
	if err != nil {
		return nil, err
	}

	resp, err := s.issue(ctx, profile, role)
	if err != nil {
		return nil, err
	}

	if err := s.profiles.UpdateLastLogin(profile.ID, s.now().UTC()); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("Failed to record last login")
	}
	return resp, nil
}

// RefreshToken exchanges a refresh token for a new session. The old refresh
// token is revoked.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*AuthTokenResponse, error) {
	tokenData, err := s.tokens.Get(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			return nil, apperrors.ErrInvalidRefreshToken
		}
		return nil, err
	}

	if s.now().After(tokenData.ExpiresAt) {
		_ = s.tokens.Delete(ctx, refreshToken)
		return nil, apperrors.ErrRefreshTokenExpired
	}

	// Role and status may have changed since the token was issued
	profile, err := s.profiles.GetByID(tokenData.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = s.tokens.Delete(ctx, refreshToken)
			return nil, apperrors.ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !profile.IsActive {
		_ = s.tokens.Delete(ctx, refreshToken)
		return nil, apperrors.ErrUserInactive
	}
	role, err := s.roleOf(profile)
	if err != nil {
		return nil, err
	}

	if err := s.tokens.Delete(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return s.issue(ctx, profile, role)
}

// Logout revokes a refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if err := s.tokens.Delete(ctx, refreshToken); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// GenerateJWT creates a JWT token for the user
func (s *AuthService) GenerateJWT(profile *models.Profile, role models.Role) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		UserID:    profile.ID,
		Email:     profile.Email,
		Role:      role,
		CompanyID: profile.CompanyID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   profile.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// LoadActor performs the role fetch for a validated session: the role row and
// the profile are read again so role changes and deactivations apply at once.
func (s *AuthService) LoadActor(claims *AuthClaims) (*service.Actor, error) {
	role, err := s.roles.GetByUserID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserRoleNotFound
		}
		return nil, fmt.Errorf("failed to load role: %w", err)
	}

	profile, err := s.profiles.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !profile.IsActive {
		return nil, apperrors.ErrUserInactive
	}

	return &service.Actor{
		UserID:    profile.ID,
		Email:     profile.Email,
		Role:      role.Role,
		CompanyID: profile.CompanyID,
	}, nil
}

func (s *AuthService) roleOf(profile *models.Profile) (models.Role, error) {
	if profile.Role != nil {
		return profile.Role.Role, nil
	}
	role, err := s.roles.GetByUserID(profile.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrUserRoleNotFound
		}
		return "", fmt.Errorf("failed to load role: %w", err)
	}
	return role.Role, nil
}

func (s *AuthService) issue(ctx context.Context, profile *models.Profile, role models.Role) (*AuthTokenResponse, error) {
	jwtToken, err := s.GenerateJWT(profile, role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	refreshToken, err := generateRandomString(48)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	now := s.now()
	err = s.tokens.Save(ctx, refreshToken, &RefreshTokenData{
		UserID:    profile.ID,
		Email:     profile.Email,
		ExpiresAt: now.Add(s.config.RefreshTTL),
		CreatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &AuthTokenResponse{
		AccessToken:  jwtToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.config.AccessTTL.Seconds()),
		RefreshToken: refreshToken,
		Profile: UserProfile{
			ID:        profile.ID,
			Email:     profile.Email,
			FullName:  profile.FullName,
			Role:      role,
			CompanyID: profile.CompanyID,
		},
	}, nil
}

// generateRandomString generates a random base64 encoded string
func generateRandomString(length int) (string, error) {
	bytes := make([]byte, length)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}

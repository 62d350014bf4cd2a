package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in the company"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrCompanyNotFound             = &NotFoundError{Entity: "company"}
	ErrUserNotFound                = &NotFoundError{Entity: "user"}
	ErrUserRoleNotFound            = &NotFoundError{Entity: "user role"}
	ErrMachineryNotFound           = &NotFoundError{Entity: "machinery"}
	ErrServiceOrderNotFound        = &NotFoundError{Entity: "service order"}
	ErrMaintenanceScheduleNotFound = &NotFoundError{Entity: "maintenance schedule"}
	ErrMaintenanceRecordNotFound   = &NotFoundError{Entity: "maintenance record"}
	ErrPartNotFound                = &NotFoundError{Entity: "part"}
	ErrTaskNotFound                = &NotFoundError{Entity: "task"}
	ErrCalendarEventNotFound       = &NotFoundError{Entity: "calendar event"}
	ErrBugReportNotFound           = &NotFoundError{Entity: "bug report"}
	ErrTutorialVideoNotFound       = &NotFoundError{Entity: "tutorial video"}
	ErrPhotoNotFound               = &NotFoundError{Entity: "photo"}
)

// Already Exists Errors
var (
	ErrCompanyExists   = &AlreadyExistsError{Entity: "company", Context: "with this name"}
	ErrUserExists      = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrUserHasCompany  = &AlreadyExistsError{Entity: "user", Context: "in a company"}
	ErrMachineryExists = &AlreadyExistsError{Entity: "machinery", Context: "with this serial number in the company"}
	ErrPartExists      = &AlreadyExistsError{Entity: "part", Context: "with this part number in the company"}
)

// Business Logic Errors
var (
	ErrInvalidStatus           = &ValidationError{Field: "status", Message: "invalid status"}
	ErrInvalidPriority         = &ValidationError{Field: "priority", Message: "invalid priority"}
	ErrInvalidRole             = &ValidationError{Field: "role", Message: "invalid role"}
	ErrInvalidFrequency        = &ValidationError{Field: "frequency", Message: "invalid frequency"}
	ErrInvalidTimeRange        = &ValidationError{Field: "end", Message: "end must not be before start"}
	ErrInsufficientStock       = &ValidationError{Field: "delta", Message: "stock cannot go below zero"}
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrStorageNotConfigured    = &ConfigurationError{Message: "object storage is not configured"}
)

// Authentication Errors
var (
	ErrInvalidCredentials  = &AuthenticationError{Message: "invalid email or password"}
	ErrInvalidRefreshToken = &AuthenticationError{Message: "invalid refresh token"}
	ErrRefreshTokenExpired = &AuthenticationError{Message: "refresh token has expired"}
	ErrUserInactive        = &AuthorizationError{Message: "user account is inactive"}
	ErrNoCompanyAssigned   = &AuthorizationError{Message: "user is not assigned to any company"}
	ErrForbidden           = &AuthorizationError{Message: "insufficient permissions"}
	ErrCannotDeleteSelf    = &AuthorizationError{Message: "users cannot delete themselves"}
	ErrCrossCompanyAccess  = &AuthorizationError{Message: "resource belongs to another company"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.Is(err, &AlreadyExistsError{}) || errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.Is(err, &ValidationError{}) || errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.Is(err, &AuthenticationError{}) || errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.Is(err, &AuthorizationError{}) || errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.Is(err, &ConfigurationError{}) || errors.As(err, &configErr)
}

// HTTPStatus maps an error to the status code handlers respond with
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsNotFound(err):
		return http.StatusNotFound
	case IsAlreadyExists(err):
		return http.StatusConflict
	case IsValidation(err), errors.Is(err, ErrInvalidPaginationParams):
		return http.StatusBadRequest
	case IsAuthentication(err):
		return http.StatusUnauthorized
	case IsAuthorization(err):
		return http.StatusForbidden
	case IsConfiguration(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewValidationFailure wraps a validator error into a ValidationError
func NewValidationFailure(err error) error {
	return &ValidationError{Message: err.Error()}
}

package errors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for transport mapping
type Kind string

const (
	KindUnauthorized      Kind = "unauthorized"
	KindForbidden         Kind = "forbidden"
	KindNotFound          Kind = "not_found"
	KindAlreadyExists     Kind = "already_exists"
	KindInvalidOperation  Kind = "invalid_operation"
	KindInvalidState      Kind = "invalid_state"
	KindInvalidInput      Kind = "invalid_input"
	KindResourceExhausted Kind = "resource_exhausted"
	KindInternal          Kind = "internal"
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
	Context string // Additional context like "in another team"
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

// InvalidOperationError is returned for requests that are well-formed but semantically illegal
type InvalidOperationError struct {
	Message string
}

func (e *InvalidOperationError) Error() string {
	return e.Message
}

// InvalidStateError is returned when a workflow precondition does not hold
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string {
	return e.Message
}

// ResourceExhaustedError is returned when a bounded resource has run out
type ResourceExhaustedError struct {
	Resource string
	Attempts int
}

func (e *ResourceExhaustedError) Error() string {
	return fmt.Sprintf("%s exhausted after %d attempts", e.Resource, e.Attempts)
}

// Is matches any ResourceExhaustedError for the same resource
func (e *ResourceExhaustedError) Is(target error) bool {
	t, ok := target.(*ResourceExhaustedError)
	if !ok {
		return false
	}
	return e.Resource == t.Resource
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
	ErrTeamNotFound        = &NotFoundError{Entity: "team"}
	ErrMemberNotFound      = &NotFoundError{Entity: "team member"}
	ErrTeamRequestNotFound = &NotFoundError{Entity: "team request"}
	ErrInviteCodeNotFound  = &NotFoundError{Entity: "invite code"}
)

// Already Exists Errors
var (
	ErrAlreadyMember   = &AlreadyExistsError{Entity: "team membership", Context: "for this user"}
	ErrInviteCodeTaken = &AlreadyExistsError{Entity: "invite code", Context: "on another team"}
)

// Authentication Errors
var (
	ErrMissingCredential = &AuthenticationError{Message: "authorization header is required"}
	ErrInvalidCredential = &AuthenticationError{Message: "invalid or expired credential"}
)

// Authorization Errors
var (
	ErrNotTeamMember  = &AuthorizationError{Message: "user is not assigned to any team"}
	ErrNotTeamManager = &AuthorizationError{Message: "only team owners and admins can perform this action"}
	ErrCrossTeam      = &AuthorizationError{Message: "target belongs to a different team"}
)

// Business Logic Errors
var (
	ErrOwnerImmutable    = &InvalidOperationError{Message: "the team owner cannot be removed or re-roled"}
	ErrOwnerNotGrantable = &InvalidOperationError{Message: "the owner role cannot be granted"}
	ErrRequestNotPending = &InvalidStateError{Message: "team request is not pending"}
	ErrPendingRequest    = &InvalidStateError{Message: "a pending request for this team already exists"}
	ErrInvalidRole       = &ValidationError{Field: "role", Message: "must be one of owner, admin, editor, viewer"}
	ErrInvalidStatus     = errors.New("invalid status")

	ErrInviteCodeSpaceExhausted = &ResourceExhaustedError{Resource: "invite code space"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsInvalidOperation checks if an error is an InvalidOperationError
func IsInvalidOperation(err error) bool {
	var opErr *InvalidOperationError
	return errors.As(err, &opErr)
}

// IsInvalidState checks if an error is an InvalidStateError
func IsInvalidState(err error) bool {
	var stateErr *InvalidStateError
	return errors.As(err, &stateErr)
}

// IsResourceExhausted checks if an error is a ResourceExhaustedError
func IsResourceExhausted(err error) bool {
	var exhaustedErr *ResourceExhaustedError
	return errors.As(err, &exhaustedErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// KindOf returns the taxonomy kind of err. Unclassified errors are internal.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case IsAuthentication(err):
		return KindUnauthorized
	case IsAuthorization(err):
		return KindForbidden
	case IsNotFound(err):
		return KindNotFound
	case IsAlreadyExists(err):
		return KindAlreadyExists
	case IsInvalidOperation(err):
		return KindInvalidOperation
	case IsInvalidState(err):
		return KindInvalidState
	case IsValidation(err):
		return KindInvalidInput
	case IsResourceExhausted(err):
		return KindResourceExhausted
	default:
		return KindInternal
	}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewResourceExhaustedError reports that resource ran out after the given number of attempts
func NewResourceExhaustedError(resource string, attempts int) error {
	return &ResourceExhaustedError{Resource: resource, Attempts: attempts}
}

package models

import (
	"database/sql/driver"
	"fmt"

	apperrors "lead-dashboard-backend/internal/errors"
)

// RequestStatus is the lifecycle state of a TeamRequest
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// InviteStatus is the lifecycle state of a TeamInvite
type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusRevoked  InviteStatus = "revoked"
	InviteStatusExpired  InviteStatus = "expired"
)

// IsValid checks if the RequestStatus is valid
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed from s
func (s RequestStatus) IsTerminal() bool {
	switch s {
	case RequestStatusApproved, RequestStatusRejected:
		return true
	case RequestStatusPending:
		return false
	}
	return true
}

// CanTransitionTo reports whether s -> next is a legal transition
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	switch s {
	case RequestStatusPending:
		return next == RequestStatusApproved || next == RequestStatusRejected
	case RequestStatusApproved, RequestStatusRejected:
		return false
	}
	return false
}

// Value rejects unknown statuses on write
func (s RequestStatus) Value() (driver.Value, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: request status %q", apperrors.ErrInvalidStatus, string(s))
	}
	return string(s), nil
}

// Scan rejects unknown statuses on read
func (s *RequestStatus) Scan(src interface{}) error {
	v, err := scanString(src)
	if err != nil {
		return err
	}
	status := RequestStatus(v)
	if !status.IsValid() {
		return fmt.Errorf("%w: request status %q", apperrors.ErrInvalidStatus, v)
	}
	*s = status
	return nil
}

// IsValid checks if the InviteStatus is valid
func (s InviteStatus) IsValid() bool {
	switch s {
	case InviteStatusPending, InviteStatusAccepted, InviteStatusRevoked, InviteStatusExpired:
		return true
	}
	return false
}

// Value rejects unknown statuses on write
func (s InviteStatus) Value() (driver.Value, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: invite status %q", apperrors.ErrInvalidStatus, string(s))
	}
	return string(s), nil
}

// Scan rejects unknown statuses on read
func (s *InviteStatus) Scan(src interface{}) error {
	v, err := scanString(src)
	if err != nil {
		return err
	}
	status := InviteStatus(v)
	if !status.IsValid() {
		return fmt.Errorf("%w: invite status %q", apperrors.ErrInvalidStatus, v)
	}
	*s = status
	return nil
}

func scanString(src interface{}) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case nil:
		return "", fmt.Errorf("%w: null", apperrors.ErrInvalidStatus)
	default:
		return "", fmt.Errorf("%w: unsupported type %T", apperrors.ErrInvalidStatus, src)
	}
}

package domain

import (
	"errors"
	"fmt"
	"strings"
)

const (
	maxNameLength    = 160
	maxAddressLength = 240
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrInvalidName        = errors.New("restaurant name must be non-empty and at most 160 characters")
	ErrInvalidAddress     = errors.New("restaurant address must be at most 240 characters")
	ErrUnknownStatus      = errors.New("unknown restaurant status")
	ErrConflictingUpdate  = errors.New("restaurant status changed concurrently")

	// ErrInvalidTransition is the errors.Is target for InvalidTransitionError.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// InvalidTransitionError names the exact rejected move.
type InvalidTransitionError struct {
	Current   ApprovalStatus
	Requested ApprovalStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot change status from %s to %s", e.Current, e.Requested)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// Role a user holds over a restaurant.
type Role string

const RoleOwner Role = "Owner"

// Restaurant is created Pending; its status moves only through the approval
// state machine.
type Restaurant struct {
	ID      int            `json:"id"`
	Name    string         `json:"name"`
	Address string         `json:"address"`
	Status  ApprovalStatus `json:"status"`
}

// UserRole is a role grant joined with the grantee's name.
type UserRole struct {
	UserID   int    `json:"userId"`
	UserName string `json:"userName"`
	Role     Role   `json:"role"`
}

// ValidateDetails checks the write-time bounds on name and address.
func ValidateDetails(name, address string) error {
	if trimmed := strings.TrimSpace(name); trimmed == "" || len(trimmed) > maxNameLength {
		return ErrInvalidName
	}
	if len(address) > maxAddressLength {
		return ErrInvalidAddress
	}
	return nil
}

// SearchTerms splits a name filter on whitespace; every term must match the
// restaurant name case-insensitively for it to qualify.
func SearchTerms(nameFilter string) []string {
	return strings.Fields(nameFilter)
}

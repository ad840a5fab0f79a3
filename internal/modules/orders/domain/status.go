package domain

import "strings"

// Status is the order lifecycle state.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusPreparing Status = "Preparing"
	StatusReady     Status = "Ready"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

var statusNames = map[string]Status{
	"pending":   StatusPending,
	"confirmed": StatusConfirmed,
	"preparing": StatusPreparing,
	"ready":     StatusReady,
	"completed": StatusCompleted,
	"cancelled": StatusCancelled,
}

// ParseStatus converts arbitrary request input into a canonical status.
func ParseStatus(raw string) (Status, bool) {
	status, ok := statusNames[strings.ToLower(strings.TrimSpace(raw))]
	return status, ok
}

// CanTransitionTo reports whether the move to next is legal. Completed and
// Cancelled are terminal; re-requesting the same terminal state is a
// permitted no-op, every other move out of a terminal state is rejected.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusPreparing || next == StatusCancelled
	case StatusPreparing:
		return next == StatusReady || next == StatusCancelled
	case StatusReady:
		return next == StatusCompleted || next == StatusCancelled
	case StatusCompleted:
		return next == StatusCompleted
	case StatusCancelled:
		return next == StatusCancelled
	default:
		return false
	}
}

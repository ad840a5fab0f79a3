package domain

import "strings"

// ApprovalStatus is the restaurant approval lifecycle state.
type ApprovalStatus string

const (
	StatusPending   ApprovalStatus = "Pending"
	StatusActive    ApprovalStatus = "Active"
	StatusSuspended ApprovalStatus = "Suspended"
	StatusRejected  ApprovalStatus = "Rejected"
)

var approvalStatusNames = map[string]ApprovalStatus{
	"pending":   StatusPending,
	"active":    StatusActive,
	"suspended": StatusSuspended,
	"rejected":  StatusRejected,
}

// ParseApprovalStatus converts arbitrary request input into a canonical status.
func ParseApprovalStatus(raw string) (ApprovalStatus, bool) {
	status, ok := approvalStatusNames[strings.ToLower(strings.TrimSpace(raw))]
	return status, ok
}

// CanTransitionTo reports whether the move to next is legal. Note the
// asymmetry inherited from the approval workflow: Rejected permits a no-op
// self-transition, Active and Suspended do not.
func (s ApprovalStatus) CanTransitionTo(next ApprovalStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusActive || next == StatusRejected
	case StatusActive:
		return next == StatusSuspended
	case StatusRejected:
		return next == StatusRejected
	case StatusSuspended:
		return next == StatusActive
	default:
		return false
	}
}

package booking

import (
	"fmt"

	"campusbook/internal/audit"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

// ParseStatus accepts any lifecycle state; used for list filters.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown status: %s", s)
	}
}

// ParseDecision accepts only the states an admin may set. PENDING is the sole
// initial state and is never a settable target.
func ParseDecision(s string) (Status, error) {
	switch Status(s) {
	case StatusApproved, StatusRejected, StatusCancelled:
		return Status(s), nil
	default:
		return "", fmt.Errorf("invalid decision status: %s", s)
	}
}

// Active reports whether a booking in this state blocks overlapping requests.
// Rejected and cancelled bookings free the interval.
func (s Status) Active() bool {
	return s == StatusPending || s == StatusApproved
}

// AuditAction maps a decision to its audit tag. The switch is exhaustive over
// the decision states so a new status cannot silently fall through to a
// generic tag.
func AuditAction(decision Status) (string, error) {
	switch decision {
	case StatusApproved:
		return audit.ActionBookingApproved, nil
	case StatusRejected:
		return audit.ActionBookingRejected, nil
	case StatusCancelled:
		return audit.ActionBookingCancelled, nil
	default:
		return "", fmt.Errorf("no audit action for status: %s", decision)
	}
}

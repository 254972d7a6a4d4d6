// Package request holds the lifecycle shared by every booking request:
// a record enters as Pending and is decided exactly once, to Approved or
// Rejected. Resubmission means creating a new record.
package request

import (
	"fmt"
	"studio/shared/failure"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// ParseStatus maps a wire value onto a legal status. Anything else is
// rejected before it can reach the store.
func ParseStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusPending, StatusApproved, StatusRejected:
		return Status(value), nil
	default:
		return "", failure.BadRequestFromString(fmt.Sprintf("invalid status %q, must be one of Pending, Approved, Rejected", value)) //nolint:wrapcheck
	}
}

func (s Status) String() string {
	return string(s)
}

// Terminal reports whether the status ends the lifecycle.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Decided reports whether a student-facing decision notice can be sent.
func (s Status) Decided() bool {
	return s.Terminal()
}

// Transition validates moving a record from one status to another. Only
// Pending records can be decided; a decided record never changes again.
func Transition(from, to Status) error {
	if !to.Terminal() {
		return failure.BadRequestFromString(fmt.Sprintf("cannot transition to %q, target must be Approved or Rejected", to)) //nolint:wrapcheck
	}

	if from.Terminal() {
		return failure.Conflict(fmt.Sprintf("request already %s, status can no longer change", from)) //nolint:wrapcheck
	}

	return nil
}

package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrLeaveDecisionConflict is returned when a leave request is both accepted and rejected.
var ErrLeaveDecisionConflict = errors.New("leave cannot be both accepted and rejected")

// Leave is a leave request raised by a user.
type Leave struct {
	ID                 string
	UserID             string
	LeaveType          string
	Reason             string
	IsAccepted         bool
	IsRejected         bool
	ReasonForRejecting *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Validate checks the decision flags are consistent.
func (l Leave) Validate() error {
	if l.IsAccepted && l.IsRejected {
		return ErrLeaveDecisionConflict
	}
	return nil
}

// Accept marks the request accepted and clears any rejection.
func (l *Leave) Accept() {
	l.IsAccepted = true
	l.IsRejected = false
	l.ReasonForRejecting = nil
}

// Reject marks the request rejected with an optional reason.
func (l *Leave) Reject(reason string) {
	l.IsAccepted = false
	l.IsRejected = true
	if reason == "" {
		l.ReasonForRejecting = nil
		return
	}
	l.ReasonForRejecting = &reason
}

func (l Leave) String() string {
	return fmt.Sprintf("Leave object (%s)", l.ID)
}

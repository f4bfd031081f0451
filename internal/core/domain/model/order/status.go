package order

import (
	"fmt"

	"kitchenboard/internal/pkg/errs"
)

// Status represents the lifecycle state of a kitchen order.
// It implements a state machine with defined transitions so orders
// follow the kitchen workflow.
//
// State transitions:
//
//	Pending ──> InProgress ──> Ready
//
// Cancelled is a terminal state set at intake; cancelled orders never
// enter the kitchen workflow. Clearing a Ready order is a soft flag
// (clearedAt timestamp) and not a status transition.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at order intake.
	// Orders in this status are waiting to be accepted by kitchen staff.
	Pending

	// InProgress indicates kitchen staff accepted the order and is cooking it.
	InProgress

	// Ready indicates the order is cooked and waiting for pickup or dispatch.
	Ready

	// Cancelled is a terminal state. Cancelled orders are excluded from
	// sales and commission totals.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		InProgress: "In Progress",
		Ready:      "Ready",
		Cancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		InProgress: "In Progress",
		Ready:      "Ready",
		Cancelled:  "Cancelled",
	}
}

// StatusFromString resolves the sheet representation of a status.
// The input is trimmed by callers; matching is exact because the store
// writes canonical strings.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, InProgress, Ready, Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status as stored in the
// order table ("Pending", "In Progress", "Ready", "Cancelled").
// Implements fmt.Stringer and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Cancelled
}

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - Pending -> InProgress (staff accepted the order)
//
// Any other starting state returns an error, including InProgress itself:
// double acceptance is rejected rather than silently overwritten.
func (s Status) Start() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start cooking", s.String()),
		)
	}
	return InProgress, nil
}

// Ready transitions the status to Ready.
//
// Valid transitions:
//   - InProgress -> Ready (cooking finished)
func (s Status) Ready() (Status, error) {
	if s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to mark ready", s.String()),
		)
	}
	return Ready, nil
}

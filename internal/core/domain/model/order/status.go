package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Processing ──> Completed
//	   │             │
//	   └──> Cancelled <──┘
//
// Completed and Cancelled are terminal: there is no transition out of them.
// This models finality of fulfillment and cancellation.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status await processing or cancellation.
	Pending

	// Processing indicates the order is being fulfilled.
	// Orders can move to Completed or Cancelled from here.
	Processing

	// Completed indicates the order has been fulfilled.
	// This is a final state with no further transitions allowed.
	Completed

	// Cancelled indicates the order was cancelled before completion.
	// This is a final state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Processing: "processing",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// getAllowedTransitions returns the transition table of the state machine.
// A status maps to the set of statuses it may move to.
func getAllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Processing, Cancelled},
		Processing: {Completed, Cancelled},
		Completed:  {},
		Cancelled:  {},
	}
}

// StatusFromString parses the lowercase textual form of a status
// ("pending", "processing", "completed", "cancelled").
// Returns an error for any other input.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Processing, Completed, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getAllowedTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the lowercase name of the status.
// Returns "unknown" for invalid status values. Implements fmt.Stringer and
// is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether the state machine permits moving from the
// current status to next.
//
// Two cases are permitted outside the transition table:
//   - next equals the current status (a no-op assignment)
//   - the current status is Unknown (the initial assignment on a fresh order)
func (s Status) CanTransitionTo(next Status) bool {
	if s == Unknown || s == next {
		return true
	}

	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// TransitionTo validates and performs a transition, returning the new status.
//
// Returns (next, nil) when the edge is permitted by the transition table,
// when next equals the current status, or when the current status is Unknown.
// Otherwise returns an error naming both states; the check is pure and has
// no side effects.
//
// Example:
//
//	newStatus, err := currentStatus.TransitionTo(order.Processing)
//	if err != nil {
//	    // Transition is not allowed from the current status
//	}
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}

	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot transition from %s to %s", s, next),
		)
	}

	return next, nil
}

package order

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a finite state machine with an exhaustive transition table:
//
//	pending ──> confirmed ──> shipped ──> delivered
//	   │            │
//	   └────────────┴──> cancelled
//
// delivered and cancelled are terminal. Confirmation reserves inventory for
// every line item; cancelling a confirmed order releases it again.
type Status string

const (
	// StatusPending is the initial status: the order is editable and nothing
	// has been reserved yet.
	StatusPending Status = "pending"

	// StatusConfirmed means inventory has been reserved for every line item.
	StatusConfirmed Status = "confirmed"

	// StatusShipped means the order has left the warehouse.
	StatusShipped Status = "shipped"

	// StatusDelivered is the terminal success state.
	StatusDelivered Status = "delivered"

	// StatusCancelled is the terminal abort state. Reaching it from confirmed
	// restocks the reserved quantities.
	StatusCancelled Status = "cancelled"
)

// transitions is the exhaustive table of allowed status changes.
// Terminal states map to an empty set.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusShipped, StatusCancelled},
	StatusShipped:   {StatusDelivered},
	StatusDelivered: {},
	StatusCancelled: {},
}

// StatusFromString parses an order status received from external input.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the status is one of the known values.
func (s Status) Validate() error {
	if _, ok := transitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid order status", string(s)))
	}
	return nil
}

// CanTransitionTo reports whether the table allows moving from s to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo returns the target status when the table allows the edge,
// or an InvalidTransitionError naming source and target when it does not.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return "", err
	}

	if !s.CanTransitionTo(target) {
		return "", errs.NewInvalidTransitionError(string(s), string(target))
	}

	return target, nil
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

func (s Status) String() string {
	return string(s)
}

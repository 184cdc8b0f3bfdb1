package ticket

import (
	"errors"
	"fmt"
)

// ErrIllegalTransition is returned when a requested status change is not in the
// legal transition table.
var ErrIllegalTransition = errors.New("illegal ticket status transition")

// Status is the single code that places a ticket in the fulfillment pipeline.
// The integer values are a contract shared with the scale/till system that
// originates tickets and must not be renumbered.
//
// State transitions:
//
//	Pending ───> InTask ───> Processed
//	   ^            │             │
//	   │            ├──> Expired  │
//	   └────────────┴─────────────┘
//	      (task delete / document delete reversal)
//
// Exactly one status holds at any time; every change goes through TransitionTo.
type Status int

const (
	// Pending is the unassigned pool: the ticket exists but no task owns it.
	Pending Status = 0

	// Processed means the ticket was fully verified or consumed by a transport
	// document.
	Processed Status = 1

	// DraftDocumentA marks a ticket reserved by the originating system for a
	// draft document of type A. The core never sets this marker; it only moves
	// such tickets back into the pipeline.
	DraftDocumentA Status = 2

	// DraftDocumentB is the second draft-document marker, handled like DraftDocumentA.
	DraftDocumentB Status = 3

	// Expired means the ticket sat in a task past the earliest expiry date of
	// its lines.
	Expired Status = 4

	// InTask means the ticket is grouped into an operator task awaiting
	// verification.
	InTask Status = 10
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Pending:        "Pending",
		Processed:      "Processed",
		DraftDocumentA: "DraftDocumentA",
		DraftDocumentB: "DraftDocumentB",
		Expired:        "Expired",
		InTask:         "InTask",
	}
}

// getLegalTransitions returns the closed legal-transition table.
// Draft markers can only re-enter the pipeline; the core never produces them.
func getLegalTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:        {InTask, Processed},
		InTask:         {Processed, Expired, Pending},
		Processed:      {InTask, Pending},
		DraftDocumentA: {Pending, Processed},
		DraftDocumentB: {Pending, Processed},
		Expired:        {Pending, InTask},
	}
}

// Validate checks that the status is one of the contract's named codes.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return fmt.Errorf("%w: %d is not a valid ticket status", ErrIllegalTransition, s)
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// CanTransitionTo reports whether the transition table allows moving from the
// current status to next. A no-op transition (same status) is always allowed,
// which keeps reconciliation sweeps idempotent.
func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return true
	}
	for _, allowed := range getLegalTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns the next status when the transition is legal.
// Returns ErrIllegalTransition (wrapped with from/to detail) otherwise.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(next) {
		return 0, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, s, next)
	}
	return next, nil
}

package task

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status is the derived task state. It is never written directly: every
// mutating operation recomputes it from the TaskTicket completed/total counts,
// so the stored status can never drift from the counts it is derived from.
type Status string

const (
	// StatusPending means no TaskTicket has been started and nobody is assigned.
	StatusPending Status = "pending"
	// StatusAssigned means an operator was assigned but no scan happened yet.
	StatusAssigned Status = "assigned"
	// StatusInProgress means some but not all TaskTickets are completed or started.
	StatusInProgress Status = "in_progress"
	// StatusCompleted means every TaskTicket is completed.
	StatusCompleted Status = "completed"
)

// getValidStatuses returns the closed status set.
func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusPending:    {},
		StatusAssigned:   {},
		StatusInProgress: {},
		StatusCompleted:  {},
	}
}

// Validate checks that the status is one of the closed set.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("task status",
			fmt.Errorf("%q is not a valid task status", string(s)))
	}
	return nil
}

// String returns the stored representation.
func (s Status) String() string {
	return string(s)
}

// TaskTicketStatus tracks one ticket's verification progress inside a task.
type TaskTicketStatus string

const (
	// TicketStatusPending means no item of the ticket has been scanned yet.
	TicketStatusPending TaskTicketStatus = "pending"
	// TicketStatusInProgress means some but not all items are scanned.
	TicketStatusInProgress TaskTicketStatus = "in_progress"
	// TicketStatusCompleted means every item of the ticket is verified.
	TicketStatusCompleted TaskTicketStatus = "completed"
)

// Validate checks that the status is one of the closed set.
func (s TaskTicketStatus) Validate() error {
	switch s {
	case TicketStatusPending, TicketStatusInProgress, TicketStatusCompleted:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("task ticket status",
		fmt.Errorf("%q is not a valid task ticket status", string(s)))
}

// String returns the stored representation.
func (s TaskTicketStatus) String() string {
	return string(s)
}

package ticket

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrTicketIsNotConstructed is returned when a Ticket was not created through
	// NewTicket or RestoreTicket.
	ErrTicketIsNotConstructed = errors.New("Ticket must be created via NewTicket constructor")
)

// Ticket is a scale/till-originated sale receipt moving through the
// fulfillment pipeline. The ticket store owns the rows; the core mutates only
// the status code, and only through Transition.
//
// Invariants:
//   - The status is the single source of truth for the ticket's pipeline
//     position; exactly one status holds at any time.
//   - Status changes follow the legal transition table (see Status).
//   - Lines are an ordered snapshot written by the till; the core never
//     modifies them.
//
// The optional task-ticket back-reference records which TaskTicket currently
// owns the ticket, so a document reversal is a direct lookup instead of a
// re-derivation.
type Ticket struct {
	// id is the store's primary key for the receipt
	id int64
	// number is the human-facing ticket number printed on the receipt; it is
	// only unique together with the header timestamp
	number int
	// issuedAt is the header timestamp written by the scale
	issuedAt time.Time
	// status places the ticket in the pipeline
	status Status
	// lines is the ordered item snapshot
	lines []Line
	// taskTicketID points at the owning TaskTicket while the ticket is in a task
	taskTicketID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewTicket creates a Ticket as the ticket store hands it to the core:
// a positive id, a positive human-facing number, the header timestamp and the
// line snapshot. Fresh tickets start Pending with no task ownership.
func NewTicket(id int64, number int, issuedAt time.Time, lines []Line) (*Ticket, error) {
	return RestoreTicket(id, number, issuedAt, Pending, lines, nil)
}

// RestoreTicket reconstructs a Ticket from persistence, including its current
// status and task ownership.
func RestoreTicket(id int64, number int, issuedAt time.Time, status Status, lines []Line, taskTicketID *kernel.UUID) (*Ticket, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("ticket id",
			fmt.Errorf("%d is not greater than 0", id))
	}
	if number <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("ticket number",
			fmt.Errorf("%d is not greater than 0", number))
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
	}

	return &Ticket{
		id:           id,
		number:       number,
		issuedAt:     issuedAt,
		status:       status,
		lines:        lines,
		taskTicketID: taskTicketID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Ticket was created through a constructor.
func (t *Ticket) Validate() error {
	if t == nil {
		return ErrTicketIsNotConstructed
	}
	return t.guard.Validate(ErrTicketIsNotConstructed)
}

// ID returns the store's primary key.
func (t *Ticket) ID() int64 {
	return t.id
}

// Number returns the human-facing ticket number.
func (t *Ticket) Number() int {
	return t.number
}

// IssuedAt returns the header timestamp written by the scale.
func (t *Ticket) IssuedAt() time.Time {
	return t.issuedAt
}

// Status returns the ticket's current pipeline position.
func (t *Ticket) Status() Status {
	return t.status
}

// Lines returns the ordered item snapshot.
func (t *Ticket) Lines() []Line {
	return t.lines
}

// ItemCount returns the number of lines to verify.
func (t *Ticket) ItemCount() int {
	return len(t.lines)
}

// TaskTicketID returns the owning TaskTicket reference, or nil when the ticket
// is not in a task.
func (t *Ticket) TaskTicketID() *kernel.UUID {
	return t.taskTicketID
}

// Transition moves the ticket to next. This is the single place allowed to
// write the status; callers never assign the raw code directly.
func (t *Ticket) Transition(next Status) error {
	newStatus, err := t.status.TransitionTo(next)
	if err != nil {
		return err
	}
	t.status = newStatus
	return nil
}

// AssignToTask moves the ticket into a task and records the owning TaskTicket.
func (t *Ticket) AssignToTask(taskTicketID kernel.UUID) error {
	if err := taskTicketID.Validate(); err != nil {
		return err
	}
	if err := t.Transition(InTask); err != nil {
		return err
	}
	t.taskTicketID = &taskTicketID
	return nil
}

// ReleaseFromTask returns the ticket to the unassigned pool and clears the
// task ownership. Used when the owning task is deleted.
func (t *Ticket) ReleaseFromTask() error {
	if err := t.Transition(Pending); err != nil {
		return err
	}
	t.taskTicketID = nil
	return nil
}

// EarliestExpiry returns the earliest line expiry date, or nil when no line
// expires.
func (t *Ticket) EarliestExpiry() *time.Time {
	var earliest *time.Time
	for _, line := range t.lines {
		exp := line.Expiry()
		if exp == nil {
			continue
		}
		if earliest == nil || exp.Before(*earliest) {
			earliest = exp
		}
	}
	return earliest
}

// IsExpired reports whether the earliest line expiry date is strictly before
// today's date. A product expiring today is not yet expired.
func (t *Ticket) IsExpired(today time.Time) bool {
	earliest := t.EarliestExpiry()
	if earliest == nil {
		return false
	}
	expiryDay := time.Date(earliest.Year(), earliest.Month(), earliest.Day(), 0, 0, 0, 0, today.Location())
	currentDay := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	return expiryDay.Before(currentDay)
}

// IsEqual compares two tickets by store identity.
func (t *Ticket) IsEqual(other *Ticket) bool {
	return other != nil && t.id == other.id
}

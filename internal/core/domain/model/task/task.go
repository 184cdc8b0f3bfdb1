package task

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrTaskIsNotConstructed is returned when a Task was not created through
	// NewTask or RestoreTask.
	ErrTaskIsNotConstructed = errors.New("Task must be created via NewTask constructor")
	// ErrTaskHasNoTickets is returned when attempting to create a task without
	// any tickets to verify.
	ErrTaskHasNoTickets = errors.New("task must contain at least one ticket")
	// ErrTaskTicketNotFound is returned when the requested TaskTicket does not
	// belong to this task.
	ErrTaskTicketNotFound = errors.New("task ticket not found")
)

// Task is an operator work assignment grouping tickets for physical
// verification. It is the aggregate root owning its TaskTickets.
//
// Invariants:
//   - A task owns at least one TaskTicket; TaskTickets never outlive the task.
//   - Aggregate counts and status are derived from the TaskTickets, never
//     cached independently: RecomputeProgress recounts on every mutation.
//   - The completion timestamp is set exactly once, when the last TaskTicket
//     completes.
//   - The document back-reference is set when a transport document is built
//     from the task and cleared when that document is deleted.
type Task struct {
	id          kernel.UUID
	number      Number
	status      Status
	createdBy   int64
	assignedTo  *int64
	deadline    *time.Time
	createdAt   time.Time
	completedAt *time.Time
	documentID  *int64
	taskTickets []*TaskTicket

	guard guard.ConstructorGuard
}

// NewTask creates a task over the given TaskTickets. The initial status is
// assigned when an assignee is given, pending otherwise.
func NewTask(
	id kernel.UUID,
	number Number,
	createdBy int64,
	assignedTo *int64,
	deadline *time.Time,
	createdAt time.Time,
	taskTickets []*TaskTicket,
) (*Task, error) {
	status := StatusPending
	if assignedTo != nil {
		status = StatusAssigned
	}
	return RestoreTask(id, number, status, createdBy, assignedTo, deadline, createdAt, nil, nil, taskTickets)
}

// RestoreTask reconstructs a Task aggregate from persistence, including its
// progress state and document link.
func RestoreTask(
	id kernel.UUID,
	number Number,
	status Status,
	createdBy int64,
	assignedTo *int64,
	deadline *time.Time,
	createdAt time.Time,
	completedAt *time.Time,
	documentID *int64,
	taskTickets []*TaskTicket,
) (*Task, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := number.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if createdBy <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("created by",
			fmt.Errorf("%d is not greater than 0", createdBy))
	}
	if len(taskTickets) == 0 {
		return nil, ErrTaskHasNoTickets
	}
	for _, tt := range taskTickets {
		if err := tt.Validate(); err != nil {
			return nil, err
		}
	}

	return &Task{
		id:          id,
		number:      number,
		status:      status,
		createdBy:   createdBy,
		assignedTo:  assignedTo,
		deadline:    deadline,
		createdAt:   createdAt,
		completedAt: completedAt,
		documentID:  documentID,
		taskTickets: taskTickets,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Task was created through a constructor.
func (t *Task) Validate() error {
	if t == nil {
		return ErrTaskIsNotConstructed
	}
	return t.guard.Validate(ErrTaskIsNotConstructed)
}

// ID returns the task identifier.
func (t *Task) ID() kernel.UUID {
	return t.id
}

// Number returns the human-facing `TASK-YYYYMMDD-NNNN` identifier.
func (t *Task) Number() Number {
	return t.number
}

// Status returns the derived task state.
func (t *Task) Status() Status {
	return t.status
}

// CreatedBy returns the user who created the task; completion notifications go
// to this user.
func (t *Task) CreatedBy() int64 {
	return t.createdBy
}

// AssignedTo returns the assigned operator, nil when unassigned.
func (t *Task) AssignedTo() *int64 {
	return t.assignedTo
}

// Deadline returns the optional verification deadline.
func (t *Task) Deadline() *time.Time {
	return t.deadline
}

// CreatedAt returns the creation timestamp.
func (t *Task) CreatedAt() time.Time {
	return t.createdAt
}

// CompletedAt returns when the last TaskTicket completed, nil until then.
func (t *Task) CompletedAt() *time.Time {
	return t.completedAt
}

// DocumentID returns the transport document generated from this task, nil when
// none exists.
func (t *Task) DocumentID() *int64 {
	return t.documentID
}

// TaskTickets returns the owned join rows.
func (t *Task) TaskTickets() []*TaskTicket {
	return t.taskTickets
}

// TotalTickets returns the number of tickets in the task.
func (t *Task) TotalTickets() int {
	return len(t.taskTickets)
}

// CompletedTickets recounts the completed TaskTickets.
func (t *Task) CompletedTickets() int {
	completed := 0
	for _, tt := range t.taskTickets {
		if tt.IsCompleted() {
			completed++
		}
	}
	return completed
}

// IsCompleted reports whether every TaskTicket is completed.
func (t *Task) IsCompleted() bool {
	return t.status == StatusCompleted
}

// TaskTicketByID finds an owned TaskTicket by its join-row id.
func (t *Task) TaskTicketByID(id kernel.UUID) (*TaskTicket, error) {
	for _, tt := range t.taskTickets {
		if tt.ID().IsEqual(id) {
			return tt, nil
		}
	}
	return nil, ErrTaskTicketNotFound
}

// TaskTicketByTicketID finds an owned TaskTicket by the ticket it joins.
func (t *Task) TaskTicketByTicketID(ticketID int64) (*TaskTicket, error) {
	for _, tt := range t.taskTickets {
		if tt.TicketID() == ticketID {
			return tt, nil
		}
	}
	return nil, ErrTaskTicketNotFound
}

// HasTicket reports whether the ticket belongs to this task.
func (t *Task) HasTicket(ticketID int64) bool {
	_, err := t.TaskTicketByTicketID(ticketID)
	return err == nil
}

// RecomputeProgress derives the task status purely from the TaskTicket counts:
// completed when all are completed (stamping the completion time exactly
// once), in_progress when some are started, otherwise assigned or pending
// depending on whether an operator is assigned. Returns true when the task
// just transitioned to completed, so callers know to emit the completion
// notification.
func (t *Task) RecomputeProgress(now time.Time) bool {
	started := 0
	completed := 0
	for _, tt := range t.taskTickets {
		if tt.IsStarted() {
			started++
		}
		if tt.IsCompleted() {
			completed++
		}
	}

	switch {
	case completed == len(t.taskTickets):
		justCompleted := t.status != StatusCompleted
		t.status = StatusCompleted
		if t.completedAt == nil {
			t.completedAt = &now
		}
		return justCompleted
	case started > 0:
		t.status = StatusInProgress
	case t.assignedTo != nil:
		t.status = StatusAssigned
	default:
		t.status = StatusPending
	}
	return false
}

// LinkDocument records the transport document generated from this task.
func (t *Task) LinkDocument(documentID int64) error {
	if documentID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("document id",
			fmt.Errorf("%d is not greater than 0", documentID))
	}
	t.documentID = &documentID
	return nil
}

// ClearDocument removes the document link after the document is deleted.
func (t *Task) ClearDocument() {
	t.documentID = nil
}

// IsEqual compares two tasks by identity.
func (t *Task) IsEqual(other *Task) bool {
	return other != nil && t.id.IsEqual(other.id)
}

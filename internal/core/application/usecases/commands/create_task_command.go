package commands

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateTaskCommandIsNotConstructed = errors.New(
		"CreateTaskCommand must be created via NewCreateTaskCommand constructor",
	)
	ErrTicketIDsAreRequired = errors.New("at least one ticket id is required")
	ErrCreatedByIsInvalid   = errors.New("created by must be greater than 0")
)

// CreateTaskCommand represents a request to group tickets into a verification
// task, optionally assigned to an operator with a deadline.
type CreateTaskCommand struct { //nolint:recvcheck //using for validation
	taskID     kernel.UUID
	ticketIDs  []int64
	createdBy  int64
	assignedTo *int64
	deadline   *time.Time

	guard guard.ConstructorGuard
}

// NewCreateTaskCommand creates a command to open a verification task over the
// given tickets. Validates that the task ID is valid, at least one positive
// ticket id is given and the creator is a valid user.
func NewCreateTaskCommand(
	taskID kernel.UUID,
	ticketIDs []int64,
	createdBy int64,
	assignedTo *int64,
	deadline *time.Time,
) (CreateTaskCommand, error) {
	cmd := CreateTaskCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTaskID(taskID),
		cmd.setTicketIDs(ticketIDs),
		cmd.setCreatedBy(createdBy),
	); err != nil {
		return CreateTaskCommand{}, err
	}

	cmd.assignedTo = assignedTo
	cmd.deadline = deadline
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTaskCommand) Validate() error {
	return c.guard.Validate(ErrCreateTaskCommandIsNotConstructed)
}

// TaskID returns the identifier the new task will carry.
func (c CreateTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

// TicketIDs returns the tickets to verify.
func (c CreateTaskCommand) TicketIDs() []int64 {
	return c.ticketIDs
}

// CreatedBy returns the creating user.
func (c CreateTaskCommand) CreatedBy() int64 {
	return c.createdBy
}

// AssignedTo returns the assigned operator, nil when unassigned.
func (c CreateTaskCommand) AssignedTo() *int64 {
	return c.assignedTo
}

// Deadline returns the optional verification deadline.
func (c CreateTaskCommand) Deadline() *time.Time {
	return c.deadline
}

func (c *CreateTaskCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *CreateTaskCommand) setTicketIDs(ticketIDs []int64) error {
	if len(ticketIDs) == 0 {
		return ErrTicketIDsAreRequired
	}
	for _, id := range ticketIDs {
		if id <= 0 {
			return fmt.Errorf("ticket id %d must be greater than 0", id)
		}
	}

	c.ticketIDs = ticketIDs
	return nil
}

func (c *CreateTaskCommand) setCreatedBy(createdBy int64) error {
	if createdBy <= 0 {
		return ErrCreatedByIsInvalid
	}

	c.createdBy = createdBy
	return nil
}

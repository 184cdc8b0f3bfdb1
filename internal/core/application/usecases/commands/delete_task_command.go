package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrDeleteTaskCommandIsNotConstructed = errors.New(
	"DeleteTaskCommand must be created via NewDeleteTaskCommand constructor",
)

// DeleteTaskCommand represents a request to dissolve a verification task and
// return its tickets to the unassigned pool.
type DeleteTaskCommand struct { //nolint:recvcheck //using for validation
	taskID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteTaskCommand creates a command to delete the given task.
func NewDeleteTaskCommand(taskID kernel.UUID) (DeleteTaskCommand, error) {
	if err := taskID.Validate(); err != nil {
		return DeleteTaskCommand{}, err
	}

	return DeleteTaskCommand{
		taskID: taskID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteTaskCommand) Validate() error {
	return c.guard.Validate(ErrDeleteTaskCommandIsNotConstructed)
}

// TaskID returns the task to delete.
func (c DeleteTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

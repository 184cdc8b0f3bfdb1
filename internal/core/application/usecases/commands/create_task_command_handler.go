package commands

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/task"
	"fulfillment/internal/core/ports"
)

// CreateTaskCommandHandler handles the business logic for task creation.
// Allocates the next date-scoped task number, opens one TaskTicket per ticket
// and moves every ticket into the task, all within a single transaction.
type CreateTaskCommandHandler struct {
	uowFactory TaskUoWFactory
}

// NewCreateTaskCommandHandler creates a handler for task creation operations.
// Requires a TaskUoWFactory for transactional persistence.
func NewCreateTaskCommandHandler(uowFactory TaskUoWFactory) CreateTaskCommandHandler {
	return CreateTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the task creation command.
// The task number takes the highest sequence issued today plus one. Tickets
// transition to in-task and record the TaskTicket that owns them; an assignee,
// when given, is notified inside the same transaction.
func (h CreateTaskCommandHandler) Handle(ctx context.Context, cmd CreateTaskCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ticketRepo := uow.TicketRepository()
	taskRepo := uow.TaskRepository()

	tickets, err := ticketRepo.GetByIDs(ctx, cmd.TicketIDs())
	if err != nil {
		return err
	}

	now := time.Now()
	maxSequence, err := taskRepo.MaxSequenceForDay(ctx, now)
	if err != nil {
		return err
	}
	number, err := task.NewNumber(now, maxSequence+1)
	if err != nil {
		return err
	}

	taskTickets := make([]*task.TaskTicket, 0, len(tickets))
	for _, t := range tickets {
		taskTicket, err := task.NewTaskTicket(kernel.NewUUID(), t.ID(), t.Number(), t.ItemCount())
		if err != nil {
			return err
		}
		if err = t.AssignToTask(taskTicket.ID()); err != nil {
			return err
		}
		taskTickets = append(taskTickets, taskTicket)
	}

	newTask, err := task.NewTask(
		cmd.TaskID(), number, cmd.CreatedBy(), cmd.AssignedTo(), cmd.Deadline(), now, taskTickets,
	)
	if err != nil {
		return err
	}

	if err = taskRepo.Add(ctx, newTask); err != nil {
		return err
	}
	for _, t := range tickets {
		if err = ticketRepo.Update(ctx, t); err != nil {
			return err
		}
	}

	if assignee := cmd.AssignedTo(); assignee != nil {
		notification := ports.Notification{
			TaskID:  newTask.ID(),
			UserID:  *assignee,
			Kind:    ports.NotificationTaskAssigned,
			Title:   "New task assigned",
			Message: fmt.Sprintf("Task %s with %d tickets is assigned to you", number, len(taskTickets)),
		}
		if err = uow.Notifier().Notify(ctx, notification); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

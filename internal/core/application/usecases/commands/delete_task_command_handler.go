package commands

import (
	"context"
)

// DeleteTaskCommandHandler handles the business logic for task deletion.
// Tickets return to the pending pool, their scan log entries disappear with
// the task, and the task with its TaskTickets is removed as one unit.
type DeleteTaskCommandHandler struct {
	uowFactory TaskRemovalUoWFactory
}

// NewDeleteTaskCommandHandler creates a handler for task deletion operations.
// Requires a TaskRemovalUoWFactory for transactional persistence.
func NewDeleteTaskCommandHandler(uowFactory TaskRemovalUoWFactory) DeleteTaskCommandHandler {
	return DeleteTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the task deletion command.
// Every ticket of the task is released back to pending with its task ownership
// cleared; partially verified progress is discarded with the scan log.
func (h DeleteTaskCommandHandler) Handle(ctx context.Context, cmd DeleteTaskCommand) error {
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

	taskAggregate, err := taskRepo.Get(ctx, cmd.TaskID())
	if err != nil {
		return err
	}

	ticketIDs := make([]int64, 0, len(taskAggregate.TaskTickets()))
	for _, taskTicket := range taskAggregate.TaskTickets() {
		ticketIDs = append(ticketIDs, taskTicket.TicketID())
	}

	tickets, err := ticketRepo.GetByIDs(ctx, ticketIDs)
	if err != nil {
		return err
	}
	for _, t := range tickets {
		if err = t.ReleaseFromTask(); err != nil {
			return err
		}
		if err = ticketRepo.Update(ctx, t); err != nil {
			return err
		}
	}

	if err = uow.ScanRecordRepository().DeleteAllForTickets(ctx, ticketIDs); err != nil {
		return err
	}

	if err = taskRepo.Delete(ctx, taskAggregate.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

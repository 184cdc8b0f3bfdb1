package commands

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/scan"
	"fulfillment/internal/core/domain/model/task"
	"fulfillment/internal/core/domain/model/ticket"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// RecordScanCommandHandler handles the business logic for scan verification.
// Every attempt writes exactly one scan record; only a successful match
// advances the TaskTicket counter and possibly the ticket and task states.
type RecordScanCommandHandler struct {
	uowFactory ScanUoWFactory
}

// NewRecordScanCommandHandler creates a handler for scan verification operations.
// Requires a ScanUoWFactory for transactional persistence.
func NewRecordScanCommandHandler(uowFactory ScanUoWFactory) RecordScanCommandHandler {
	return RecordScanCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes one scan attempt and returns its outcome.
// Verification failures are recorded facts, not errors: the record is
// committed and the non-success outcome returned with a nil error, so the
// operator can retry. On the last item of a ticket the ticket transitions to
// processed; on the last ticket of the task the creator is notified.
func (h RecordScanCommandHandler) Handle(ctx context.Context, cmd RecordScanCommand) (scan.Outcome, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ticketRepo := uow.TicketRepository()
	taskRepo := uow.TaskRepository()

	taskAggregate, err := taskRepo.GetByTaskTicketID(ctx, cmd.TaskTicketID())
	if err != nil {
		return "", err
	}
	taskTicket, err := taskAggregate.TaskTicketByID(cmd.TaskTicketID())
	if err != nil {
		return "", err
	}

	candidates, err := ticketRepo.GetAllByNumber(ctx, cmd.Code().TicketNumber())
	if err != nil {
		return "", err
	}

	verification := services.NewScanVerifier().Verify(
		cmd.Code(), candidates, taskTicket.TicketNumber(), nil,
	)

	var matchedTicketID *int64
	if verification.Ticket != nil {
		id := verification.Ticket.ID()
		matchedTicketID = &id
	}
	taskTicketID := cmd.TaskTicketID()
	record, err := scan.NewRecord(
		kernel.NewUUID(), cmd.UserID(), cmd.Code(),
		matchedTicketID, &taskTicketID,
		verification.Outcome, verification.Detail, time.Now(),
	)
	if err != nil {
		return "", err
	}
	if err = uow.ScanRecordRepository().Add(ctx, record); err != nil {
		return "", err
	}

	if verification.Outcome.IsSuccess() {
		if err = h.applySuccess(ctx, uow, taskAggregate, taskTicket, cmd.UserID()); err != nil {
			return "", err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return verification.Outcome, nil
}

// applySuccess advances the TaskTicket counter and cascades the completion:
// ticket to processed when its last item is verified, task to completed with a
// creator notification when its last ticket is.
func (h RecordScanCommandHandler) applySuccess(
	ctx context.Context,
	uow ScanUoW,
	taskAggregate *task.Task,
	taskTicket *task.TaskTicket,
	userID int64,
) error {
	if err := taskTicket.RecordScan(userID); err != nil {
		return err
	}

	ticketRepo := uow.TicketRepository()
	if taskTicket.IsCompleted() {
		verifiedTicket, err := ticketRepo.Get(ctx, taskTicket.TicketID())
		if err != nil {
			return err
		}
		if err = verifiedTicket.Transition(ticket.Processed); err != nil {
			return err
		}
		if err = ticketRepo.Update(ctx, verifiedTicket); err != nil {
			return err
		}
	}

	justCompleted := taskAggregate.RecomputeProgress(time.Now())
	if err := uow.TaskRepository().Update(ctx, taskAggregate); err != nil {
		return err
	}

	if justCompleted {
		notification := ports.Notification{
			TaskID:  taskAggregate.ID(),
			UserID:  taskAggregate.CreatedBy(),
			Kind:    ports.NotificationTaskCompleted,
			Title:   "Task completed",
			Message: fmt.Sprintf("Task %s is fully verified", taskAggregate.Number()),
		}
		if err := uow.Notifier().Notify(ctx, notification); err != nil {
			return err
		}
	}

	return nil
}

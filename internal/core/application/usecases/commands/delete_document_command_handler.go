package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/ticket"
	"fulfillment/internal/pkg/errs"
)

// DeleteDocumentCommandHandler handles the business logic for document
// reversal. Every consumed ticket returns to where it came from: back in-task
// when the originating task still owns it, back to the pending pool otherwise.
type DeleteDocumentCommandHandler struct {
	uowFactory DocumentRemovalUoWFactory
}

// NewDeleteDocumentCommandHandler creates a handler for document deletion.
// Requires a DocumentRemovalUoWFactory for transactional persistence.
func NewDeleteDocumentCommandHandler(uowFactory DocumentRemovalUoWFactory) DeleteDocumentCommandHandler {
	return DeleteDocumentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the document deletion command.
// Ticket restoration, line cascade, header removal and the task unlink happen
// in one transaction; the freed identifier and sequence number are never
// reused. Manual lines vanish with the document.
func (h DeleteDocumentCommandHandler) Handle(ctx context.Context, cmd DeleteDocumentCommand) error {
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

	documentRepo := uow.DocumentRepository()
	doc, err := documentRepo.Get(ctx, cmd.DocumentID())
	if err != nil {
		return err
	}

	ticketRepo := uow.TicketRepository()
	tickets, err := ticketRepo.GetByIDs(ctx, doc.TicketIDs())
	if err != nil {
		return err
	}
	for _, t := range tickets {
		restored := ticket.Pending
		if t.TaskTicketID() != nil {
			restored = ticket.InTask
		}
		if err = t.Transition(restored); err != nil {
			return err
		}
		if err = ticketRepo.Update(ctx, t); err != nil {
			return err
		}
	}

	taskRepo := uow.TaskRepository()
	originatingTask, err := taskRepo.GetByDocumentID(ctx, cmd.DocumentID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		// document was built directly from processed tickets
	case err != nil:
		return err
	default:
		originatingTask.ClearDocument()
		originatingTask.RecomputeProgress(time.Now())
		if err = taskRepo.Update(ctx, originatingTask); err != nil {
			return err
		}
	}

	if err = documentRepo.Delete(ctx, doc.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

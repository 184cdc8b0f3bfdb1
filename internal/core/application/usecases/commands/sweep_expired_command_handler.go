package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/ticket"
)

// SweepExpiredCommandHandler handles the expiry sweep over in-task tickets.
// The sweep runs both on relevant page loads and from the nightly job; running
// it twice for the same day changes nothing the second time.
type SweepExpiredCommandHandler struct {
	uowFactory TicketUoWFactory
}

// NewSweepExpiredCommandHandler creates a handler for expiry sweeps.
// Requires a TicketUoWFactory for transactional persistence.
func NewSweepExpiredCommandHandler(uowFactory TicketUoWFactory) SweepExpiredCommandHandler {
	return SweepExpiredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep and returns how many tickets expired.
// A ticket expires when its earliest line expiry is strictly before today;
// a product expiring today is still verifiable.
func (h SweepExpiredCommandHandler) Handle(ctx context.Context, cmd SweepExpiredCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ticketRepo := uow.TicketRepository()
	inTask, err := ticketRepo.GetAllInTaskStatus(ctx)
	if err != nil {
		return 0, err
	}

	swept := 0
	for _, t := range inTask {
		if !t.IsExpired(cmd.Today()) {
			continue
		}
		if err = t.Transition(ticket.Expired); err != nil {
			return 0, err
		}
		if err = ticketRepo.Update(ctx, t); err != nil {
			return 0, err
		}
		swept++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return swept, nil
}

package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/ticket"
)

// ErrTicketIsNotPending is returned when checking out a ticket that already
// left the pending pool.
var ErrTicketIsNotPending = errors.New("ticket is not in the pending pool")

// CheckoutTicketCommandHandler handles the business logic for direct checkout:
// a pending ticket moves straight to processed without task mediation.
type CheckoutTicketCommandHandler struct {
	uowFactory TicketUoWFactory
}

// NewCheckoutTicketCommandHandler creates a handler for checkout operations.
// Requires a TicketUoWFactory for transactional persistence.
func NewCheckoutTicketCommandHandler(uowFactory TicketUoWFactory) CheckoutTicketCommandHandler {
	return CheckoutTicketCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the checkout command. Only tickets still in the pending
// pool qualify; anything else is refused and nothing changes.
func (h CheckoutTicketCommandHandler) Handle(ctx context.Context, cmd CheckoutTicketCommand) error {
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

	t, err := ticketRepo.Get(ctx, cmd.TicketID())
	if err != nil {
		return err
	}
	if t.Status() != ticket.Pending {
		return ErrTicketIsNotPending
	}
	if err = t.Transition(ticket.Processed); err != nil {
		return err
	}
	if err = ticketRepo.Update(ctx, t); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/guard"
)

var ErrCheckoutTicketCommandIsNotConstructed = errors.New(
	"CheckoutTicketCommand must be created via NewCheckoutTicketCommand constructor",
)

// CheckoutTicketCommand represents a request to process a ticket directly from
// the pending pool, skipping task verification. Used for walk-up sales handed
// over at the counter.
type CheckoutTicketCommand struct { //nolint:recvcheck //using for validation
	ticketID int64
	userID   int64

	guard guard.ConstructorGuard
}

// NewCheckoutTicketCommand creates a command to check out the given ticket.
func NewCheckoutTicketCommand(ticketID, userID int64) (CheckoutTicketCommand, error) {
	if ticketID <= 0 {
		return CheckoutTicketCommand{}, fmt.Errorf("ticket id %d must be greater than 0", ticketID)
	}
	if userID <= 0 {
		return CheckoutTicketCommand{}, ErrUserIDIsInvalid
	}

	return CheckoutTicketCommand{
		ticketID: ticketID,
		userID:   userID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutTicketCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutTicketCommandIsNotConstructed)
}

// TicketID returns the ticket to check out.
func (c CheckoutTicketCommand) TicketID() int64 {
	return c.ticketID
}

// UserID returns the user performing the checkout.
func (c CheckoutTicketCommand) UserID() int64 {
	return c.userID
}

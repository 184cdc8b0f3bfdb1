// Package ports defines the persistence and notification contracts between
// the domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/ticket"
)

// TicketRepository defines the persistence contract for ticket aggregates.
// Tickets originate in the external till store; the core inserts synced rows
// and updates the status and task-ownership columns only.
type TicketRepository interface {
	// Add persists a ticket synced from the till store.
	Add(ctx context.Context, aggregate *ticket.Ticket) error

	// Update persists status and task-ownership changes to an existing ticket.
	Update(ctx context.Context, aggregate *ticket.Ticket) error

	// Get retrieves a ticket by its store identifier, with its line snapshot.
	Get(ctx context.Context, id int64) (*ticket.Ticket, error)

	// GetByIDs retrieves the tickets with the given identifiers.
	// Every requested ticket must exist.
	GetByIDs(ctx context.Context, ids []int64) ([]*ticket.Ticket, error)

	// GetAllByNumber retrieves every ticket carrying the human-facing number.
	// Numbers repeat across days, so callers disambiguate by header timestamp.
	GetAllByNumber(ctx context.Context, number int) ([]*ticket.Ticket, error)

	// GetAllInTaskStatus retrieves the tickets currently assigned to tasks.
	// Used by the expiry sweep.
	GetAllInTaskStatus(ctx context.Context) ([]*ticket.Ticket, error)
}

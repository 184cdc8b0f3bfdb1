// Package queries contains read-side operations returning flat read models.
// Query handlers bypass the aggregates and read with raw SQL, per CQRS.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/guard"
)

var ErrGetPendingTicketsQueryIsNotConstructed = errors.New(
	"GetPendingTicketsQuery must be created via NewGetPendingTicketsQuery constructor",
)

// GetPendingTicketsQuery retrieves the unassigned ticket pool for the
// assignment screens. The expiry sweep runs before this query on page load, so
// the pool never shows tickets that should already be expired.
type GetPendingTicketsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingTicketsQuery creates a query to retrieve the pending pool.
func NewGetPendingTicketsQuery() GetPendingTicketsQuery {
	return GetPendingTicketsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingTicketsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingTicketsQueryIsNotConstructed)
}

// GetPendingTicketsQueryResponse is one pending ticket with the aggregate
// line facts the assignment screen shows.
type GetPendingTicketsQueryResponse struct {
	ID             int64
	Number         int
	IssuedAt       time.Time
	ItemCount      int
	EarliestExpiry *time.Time
}

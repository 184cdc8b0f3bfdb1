package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/scan"
)

// ScanRecordRepository defines the persistence contract for the scan log.
// Records are append-only: there is no update operation, and deletion happens
// only when the owning task is removed.
type ScanRecordRepository interface {
	// Add appends one verification attempt to the log.
	Add(ctx context.Context, aggregate *scan.Record) error

	// DeleteAllForTickets removes the log entries for the given tickets.
	// Used when a task is deleted and its tickets return to the pool.
	DeleteAllForTickets(ctx context.Context, ticketIDs []int64) error
}

package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/ticket"

	"gorm.io/gorm"
)

// GetPendingTicketsQueryHandler retrieves the pending ticket pool from the
// database. Uses direct SQL for optimal read performance in the CQRS pattern.
type GetPendingTicketsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingTicketsQueryHandler creates a handler for pending pool queries.
// Requires a GORM database connection for query execution.
func NewGetPendingTicketsQueryHandler(db *gorm.DB) GetPendingTicketsQueryHandler {
	return GetPendingTicketsQueryHandler{db: db}
}

// Handle executes the query to retrieve all pending tickets with their line
// count and earliest expiry, oldest first.
func (h GetPendingTicketsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingTicketsQuery,
) ([]GetPendingTicketsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tickets := make([]GetPendingTicketsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			t.id,
			t.number,
			t.issued_at,
			COUNT(l.id),
			MIN(l.expiry)
		FROM tickets t
		LEFT JOIN ticket_lines l ON l.ticket_id = t.id
		WHERE t.status = ?
		GROUP BY t.id, t.number, t.issued_at
		ORDER BY t.issued_at
	`, ticket.Pending).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPendingTicketsQueryResponse

		err = rows.Scan(
			&resp.ID,
			&resp.Number,
			&resp.IssuedAt,
			&resp.ItemCount,
			&resp.EarliestExpiry,
		)
		if err != nil {
			return nil, err
		}

		tickets = append(tickets, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}

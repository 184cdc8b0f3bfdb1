package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/task"

	"gorm.io/gorm"
)

// GetAllTasksQueryHandler retrieves the task board from the database.
type GetAllTasksQueryHandler struct {
	db *gorm.DB
}

// NewGetAllTasksQueryHandler creates a handler for task board queries.
func NewGetAllTasksQueryHandler(db *gorm.DB) GetAllTasksQueryHandler {
	return GetAllTasksQueryHandler{db: db}
}

// Handle executes the query to retrieve all tasks with their progress counts,
// newest first.
func (h GetAllTasksQueryHandler) Handle(
	ctx context.Context,
	query GetAllTasksQuery,
) ([]GetAllTasksQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tasks := make([]GetAllTasksQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			t.uuid,
			t.number,
			t.status,
			t.created_by,
			t.assigned_to,
			t.deadline,
			t.created_at,
			t.completed_at,
			t.document_id,
			COUNT(tt.uuid),
			COUNT(tt.uuid) FILTER (WHERE tt.status = ?),
			COALESCE(SUM(tt.scanned_items), 0),
			COALESCE(SUM(tt.total_items), 0)
		FROM tasks t
		LEFT JOIN task_tickets tt ON tt.task_uuid = t.uuid
		GROUP BY t.uuid, t.number, t.status, t.created_by, t.assigned_to,
			t.deadline, t.created_at, t.completed_at, t.document_id
		ORDER BY t.created_at DESC
	`, task.TicketStatusCompleted.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllTasksQueryResponse

		err = rows.Scan(
			&resp.ID,
			&resp.Number,
			&resp.Status,
			&resp.CreatedBy,
			&resp.AssignedTo,
			&resp.Deadline,
			&resp.CreatedAt,
			&resp.CompletedAt,
			&resp.DocumentID,
			&resp.TotalTickets,
			&resp.CompletedTickets,
			&resp.ScannedItems,
			&resp.TotalItems,
		)
		if err != nil {
			return nil, err
		}

		tasks = append(tasks, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

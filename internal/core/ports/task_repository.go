package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/task"
)

// TaskRepository defines the persistence contract for task aggregates and
// their owned TaskTickets.
type TaskRepository interface {
	// Add persists a new task aggregate with all its TaskTickets.
	Add(ctx context.Context, aggregate *task.Task) error

	// Update persists changes to an existing task and its TaskTickets.
	Update(ctx context.Context, aggregate *task.Task) error

	// Delete removes the task and cascades to its TaskTickets.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a task by its identifier, with all its TaskTickets.
	Get(ctx context.Context, id kernel.UUID) (*task.Task, error)

	// GetByTaskTicketID retrieves the task owning the given TaskTicket.
	GetByTaskTicketID(ctx context.Context, taskTicketID kernel.UUID) (*task.Task, error)

	// GetByDocumentID retrieves the task that generated the given document,
	// or an ObjectNotFoundError when no task links to it.
	GetByDocumentID(ctx context.Context, documentID int64) (*task.Task, error)

	// MaxSequenceForDay returns the highest task-number sequence issued on the
	// given day, zero when none was. The next task takes max+1.
	MaxSequenceForDay(ctx context.Context, day time.Time) (int, error)
}

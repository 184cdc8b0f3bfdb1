package queries

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrGetAllTasksQueryIsNotConstructed = errors.New(
	"GetAllTasksQuery must be created via NewGetAllTasksQuery constructor",
)

// GetAllTasksQuery retrieves every task with its verification progress for the
// task board.
type GetAllTasksQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllTasksQuery creates a query to retrieve all tasks.
func NewGetAllTasksQuery() GetAllTasksQuery {
	return GetAllTasksQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllTasksQuery) Validate() error {
	return q.guard.Validate(ErrGetAllTasksQueryIsNotConstructed)
}

// GetAllTasksQueryResponse is one task row with progress counts derived from
// its task tickets.
type GetAllTasksQueryResponse struct {
	ID               uuid.UUID
	Number           string
	Status           string
	CreatedBy        int64
	AssignedTo       *int64
	Deadline         *time.Time
	CreatedAt        time.Time
	CompletedAt      *time.Time
	DocumentID       *int64
	TotalTickets     int
	CompletedTickets int
	ScannedItems     int
	TotalItems       int
}

package ticketrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/ticket"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTicketRepository implements TicketRepository using GORM.
type GormTicketRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormTicketRepository creates a new GORM ticket repository.
func NewGormTicketRepository(db *gorm.DB, tracker aggregateTracker) *GormTicketRepository {
	return &GormTicketRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a ticket synced from the till store, with its line snapshot.
func (r *GormTicketRepository) Add(ctx context.Context, aggregate *ticket.Ticket) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists the status and task-ownership columns. The line snapshot is
// written once at sync time and never touched again.
func (r *GormTicketRepository) Update(ctx context.Context, aggregate *ticket.Ticket) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&TicketDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":         dto.Status,
			"task_ticket_id": dto.TaskTicketID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("ticket", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a ticket by its store identifier, with its line snapshot.
func (r *GormTicketRepository) Get(ctx context.Context, id int64) (*ticket.Ticket, error) {
	var dto TicketDTO
	if err := r.db.WithContext(ctx).Preload("Lines").First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ticket", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves the tickets with the given identifiers. A missing
// identifier is an error: callers select from lists the UI just showed them.
func (r *GormTicketRepository) GetByIDs(ctx context.Context, ids []int64) ([]*ticket.Ticket, error) {
	var dtos []TicketDTO
	if err := r.db.WithContext(ctx).Preload("Lines").
		Where("id IN ?", ids).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	found := make(map[int64]struct{}, len(dtos))
	for _, dto := range dtos {
		found[dto.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return nil, errs.NewObjectNotFoundError("ticket", id)
		}
	}

	return r.toDomainAll(dtos)
}

// GetAllByNumber retrieves every ticket carrying the human-facing number.
func (r *GormTicketRepository) GetAllByNumber(ctx context.Context, number int) ([]*ticket.Ticket, error) {
	var dtos []TicketDTO
	if err := r.db.WithContext(ctx).Preload("Lines").
		Where("number = ?", number).
		Order("issued_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetAllInTaskStatus retrieves the tickets currently assigned to tasks.
func (r *GormTicketRepository) GetAllInTaskStatus(ctx context.Context) ([]*ticket.Ticket, error) {
	var dtos []TicketDTO
	if err := r.db.WithContext(ctx).Preload("Lines").
		Where("status = ?", int(ticket.InTask)).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

func (r *GormTicketRepository) toDomainAll(dtos []TicketDTO) ([]*ticket.Ticket, error) {
	tickets := make([]*ticket.Ticket, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

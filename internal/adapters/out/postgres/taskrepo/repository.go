package taskrepo

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/task"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTaskRepository implements TaskRepository using GORM.
type GormTaskRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormTaskRepository creates a new GORM task repository.
func NewGormTaskRepository(db *gorm.DB, tracker aggregateTracker) *GormTaskRepository {
	return &GormTaskRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new task aggregate with all its TaskTickets.
func (r *GormTaskRepository) Add(ctx context.Context, aggregate *task.Task) error {
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

// Update saves an existing task to the database.
func (r *GormTaskRepository) Update(ctx context.Context, aggregate *task.Task) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update the TaskTickets
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes the task; the TaskTickets go with it via the cascade
// constraint.
func (r *GormTaskRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&TaskDTO{}, "uuid = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("task", id.String())
	}

	return nil
}

// Get retrieves a task by ID with all its TaskTickets.
func (r *GormTaskRepository) Get(ctx context.Context, id kernel.UUID) (*task.Task, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TaskDTO
	if err := r.db.WithContext(ctx).Preload("TaskTickets").
		First(&dto, "uuid = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("task", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTaskTicketID retrieves the task owning the given TaskTicket.
func (r *GormTaskRepository) GetByTaskTicketID(ctx context.Context, taskTicketID kernel.UUID) (*task.Task, error) {
	if err := taskTicketID.Validate(); err != nil {
		return nil, err
	}

	var dto TaskDTO
	if err := r.db.WithContext(ctx).Preload("TaskTickets").
		Table("tasks").
		Select("tasks.*").
		Joins("JOIN task_tickets tt ON tt.task_uuid = tasks.uuid").
		Where("tt.uuid = ?", taskTicketID.Bytes()).
		First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("task ticket", taskTicketID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByDocumentID retrieves the task that generated the given document.
func (r *GormTaskRepository) GetByDocumentID(ctx context.Context, documentID int64) (*task.Task, error) {
	var dto TaskDTO
	if err := r.db.WithContext(ctx).Preload("TaskTickets").
		First(&dto, "document_id = ?", documentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("document", documentID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// MaxSequenceForDay returns the highest task-number sequence issued on the
// given day, zero when none was. Task numbers are `TASK-YYYYMMDD-NNNN`, so the
// sequence is the numeric tail of the numbers sharing the day prefix.
func (r *GormTaskRepository) MaxSequenceForDay(ctx context.Context, day time.Time) (int, error) {
	prefix := "TASK-" + day.Format("20060102") + "-%"

	var maxSequence int
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(MAX(CAST(RIGHT(number, 4) AS INTEGER)), 0)
		FROM tasks
		WHERE number LIKE ?
	`, prefix).Scan(&maxSequence).Error
	if err != nil {
		return 0, err
	}

	return maxSequence, nil
}

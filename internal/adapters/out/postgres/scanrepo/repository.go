package scanrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/scan"

	"gorm.io/gorm"
)

// GormScanRecordRepository implements ScanRecordRepository using GORM.
type GormScanRecordRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormScanRecordRepository creates a new GORM scan record repository.
func NewGormScanRecordRepository(db *gorm.DB, tracker aggregateTracker) *GormScanRecordRepository {
	return &GormScanRecordRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends one verification attempt to the log.
func (r *GormScanRecordRepository) Add(ctx context.Context, aggregate *scan.Record) error {
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

// DeleteAllForTickets removes the log entries for the given tickets. Used when
// a task is deleted and its tickets return to the pool; deleting nothing is
// not an error, a pool ticket may never have been scanned.
func (r *GormScanRecordRepository) DeleteAllForTickets(ctx context.Context, ticketIDs []int64) error {
	if len(ticketIDs) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Where("ticket_id IN ?", ticketIDs).
		Delete(&RecordDTO{}).Error
}

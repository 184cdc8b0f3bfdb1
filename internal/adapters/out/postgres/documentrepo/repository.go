package documentrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/document"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDocumentRepository implements DocumentRepository using GORM.
type GormDocumentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormDocumentRepository creates a new GORM document repository.
func NewGormDocumentRepository(db *gorm.DB, tracker aggregateTracker) *GormDocumentRepository {
	return &GormDocumentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add persists a new document with all its lines.
func (r *GormDocumentRepository) Add(ctx context.Context, aggregate *document.Document) error {
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

// Get retrieves a document by its identifier, with its lines in order.
func (r *GormDocumentRepository) Get(ctx context.Context, id int64) (*document.Document, error) {
	var dto DocumentDTO
	if err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("document_lines.number")
		}).
		First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("document", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the document; the lines go with it via the cascade
// constraint. The counter table keeps the allocated identifiers burned.
func (r *GormDocumentRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&DocumentDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("document", id)
	}

	return nil
}

// NextIdentifiers allocates the next document id and sequence number from the
// counter table. The upsert locks the counter row, so concurrent allocations
// inside separate transactions serialize instead of handing out duplicates.
func (r *GormDocumentRepository) NextIdentifiers(ctx context.Context) (int64, int, error) {
	var id int64
	var sequence int

	row := r.db.WithContext(ctx).Raw(`
		INSERT INTO document_counters (id, last_document_id, last_sequence)
		VALUES (1, 1, 1)
		ON CONFLICT (id) DO UPDATE
		SET last_document_id = document_counters.last_document_id + 1,
		    last_sequence = document_counters.last_sequence + 1
		RETURNING last_document_id, last_sequence
	`).Row()
	if err := row.Scan(&id, &sequence); err != nil {
		return 0, 0, err
	}

	return id, sequence, nil
}

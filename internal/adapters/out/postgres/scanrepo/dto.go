// Package scanrepo persists the scan audit log. Records are append-only:
// the core writes them and never reads them back, so the package maps in one
// direction only.
package scanrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/scan"

	"github.com/google/uuid"
)

// RecordDTO represents one verification attempt in the scan log.
type RecordDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID       int64      `gorm:"not null;index"`
	Code         string     `gorm:"type:char(27);not null"`
	TicketID     *int64     `gorm:"index"`
	TaskTicketID *uuid.UUID `gorm:"type:uuid;index"`
	Outcome      string     `gorm:"type:varchar(32);not null"`
	ErrorDetail  string     `gorm:"type:varchar(255)"`
	CreatedAt    time.Time  `gorm:"not null"`
}

// TableName specifies the database table name for scan record entities.
func (RecordDTO) TableName() string {
	return "scan_records"
}

// fromDomain converts a scan record to its database representation.
func fromDomain(aggregate *scan.Record) RecordDTO {
	var taskTicketID *uuid.UUID
	if aggregate.TaskTicketID() != nil {
		raw := aggregate.TaskTicketID().Bytes()
		taskTicketID = &raw
	}

	return RecordDTO{
		ID:           aggregate.ID().Bytes(),
		UserID:       aggregate.UserID(),
		Code:         aggregate.Code().Raw(),
		TicketID:     aggregate.TicketID(),
		TaskTicketID: taskTicketID,
		Outcome:      aggregate.Outcome().String(),
		ErrorDetail:  aggregate.ErrorDetail(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

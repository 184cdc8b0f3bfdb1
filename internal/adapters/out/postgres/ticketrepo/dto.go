// Package ticketrepo provides data transfer objects and mapping functions for
// ticket persistence. Ticket rows are synced from the external till store; the
// core owns only the status and task-ownership columns.
package ticketrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ticket"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TicketDTO represents the database structure for persisting ticket aggregates.
// The primary key is the till store's receipt id, not a generated value.
type TicketDTO struct {
	ID           int64           `gorm:"primaryKey"`
	Number       int             `gorm:"type:int;not null;index"`
	IssuedAt     time.Time       `gorm:"not null"`
	Status       int             `gorm:"type:int;not null;index"`
	TaskTicketID *uuid.UUID      `gorm:"type:uuid;index"`
	Lines        []TicketLineDTO `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for ticket entities.
func (TicketDTO) TableName() string {
	return "tickets"
}

// TicketLineDTO represents one weighed or counted item of a ticket.
// Lines are an immutable snapshot written once at sync time.
type TicketLineDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	TicketID    int64           `gorm:"not null;index"`
	ArticleID   int64           `gorm:"not null"`
	Description string          `gorm:"type:varchar(255)"`
	Weight      decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	Behavior    int             `gorm:"type:smallint;not null"`
	Expiry      *time.Time
}

// TableName specifies the database table name for ticket line entities.
func (TicketLineDTO) TableName() string {
	return "ticket_lines"
}

// fromDomain converts a ticket domain aggregate to its database representation.
func fromDomain(aggregate *ticket.Ticket) TicketDTO {
	lines := make([]TicketLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, TicketLineDTO{
			TicketID:    aggregate.ID(),
			ArticleID:   line.ArticleID(),
			Description: line.Description(),
			Weight:      line.Weight(),
			Behavior:    int(line.Behavior()),
			Expiry:      line.Expiry(),
		})
	}

	var taskTicketID *uuid.UUID
	if aggregate.TaskTicketID() != nil {
		raw := aggregate.TaskTicketID().Bytes()
		taskTicketID = &raw
	}

	return TicketDTO{
		ID:           aggregate.ID(),
		Number:       aggregate.Number(),
		IssuedAt:     aggregate.IssuedAt(),
		Status:       int(aggregate.Status()),
		TaskTicketID: taskTicketID,
		Lines:        lines,
	}
}

// toDomain converts a database DTO to a ticket domain aggregate.
func toDomain(dto TicketDTO) (*ticket.Ticket, error) {
	lines := make([]ticket.Line, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		line, err := ticket.NewLine(
			lineDto.ArticleID,
			lineDto.Description,
			lineDto.Weight,
			ticket.UnitBehavior(lineDto.Behavior),
			lineDto.Expiry,
		)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	var taskTicketID *kernel.UUID
	if dto.TaskTicketID != nil {
		id, err := kernel.UUIDFromBytes((*dto.TaskTicketID)[:])
		if err != nil {
			return nil, err
		}
		taskTicketID = &id
	}

	return ticket.RestoreTicket(
		dto.ID,
		dto.Number,
		dto.IssuedAt,
		ticket.Status(dto.Status),
		lines,
		taskTicketID,
	)
}

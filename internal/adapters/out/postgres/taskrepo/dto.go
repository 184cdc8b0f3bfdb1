// Package taskrepo provides data transfer objects and mapping functions for
// task persistence. This package implements the repository pattern for the
// task aggregate, handling the conversion between domain entities and
// database representations.
package taskrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/task"

	"github.com/google/uuid"
)

// TaskDTO represents the database structure for persisting task aggregates.
type TaskDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;column:uuid"`
	Number      string          `gorm:"type:varchar(18);not null;uniqueIndex"`
	Status      string          `gorm:"type:varchar(16);not null;index"`
	CreatedBy   int64           `gorm:"not null"`
	AssignedTo  *int64          `gorm:"index"`
	Deadline    *time.Time      ``
	CreatedAt   time.Time       `gorm:"not null"`
	CompletedAt *time.Time      ``
	DocumentID  *int64          `gorm:"index"`
	TaskTickets []TaskTicketDTO `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for task entities.
func (TaskDTO) TableName() string {
	return "tasks"
}

// TaskTicketDTO represents the join row between a task and a ticket, carrying
// the per-ticket scan progress.
type TaskTicketDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;column:uuid"`
	TaskID       uuid.UUID `gorm:"type:uuid;not null;index;column:task_uuid"`
	TicketID     int64     `gorm:"not null;index"`
	TicketNumber int       `gorm:"type:int;not null"`
	TotalItems   int       `gorm:"type:int;not null"`
	ScannedItems int       `gorm:"type:int;not null"`
	Status       string    `gorm:"type:varchar(16);not null"`
	VerifiedBy   *int64    ``
}

// TableName specifies the database table name for task ticket entities.
func (TaskTicketDTO) TableName() string {
	return "task_tickets"
}

// fromDomain converts a task domain aggregate to its database representation.
// Maps the aggregate root and all owned TaskTickets.
func fromDomain(aggregate *task.Task) TaskDTO {
	taskID := aggregate.ID().Bytes()
	taskTickets := make([]TaskTicketDTO, 0, len(aggregate.TaskTickets()))

	for _, tt := range aggregate.TaskTickets() {
		taskTickets = append(taskTickets, TaskTicketDTO{
			ID:           tt.ID().Bytes(),
			TaskID:       taskID,
			TicketID:     tt.TicketID(),
			TicketNumber: tt.TicketNumber(),
			TotalItems:   tt.TotalItems(),
			ScannedItems: tt.ScannedItems(),
			Status:       tt.Status().String(),
			VerifiedBy:   tt.VerifiedBy(),
		})
	}

	return TaskDTO{
		ID:          taskID,
		Number:      aggregate.Number().String(),
		Status:      aggregate.Status().String(),
		CreatedBy:   aggregate.CreatedBy(),
		AssignedTo:  aggregate.AssignedTo(),
		Deadline:    aggregate.Deadline(),
		CreatedAt:   aggregate.CreatedAt(),
		CompletedAt: aggregate.CompletedAt(),
		DocumentID:  aggregate.DocumentID(),
		TaskTickets: taskTickets,
	}
}

// toDomain converts a database DTO to a task domain aggregate.
// Reconstructs the complete aggregate including all TaskTickets.
func toDomain(dto TaskDTO) (*task.Task, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	number, err := task.RestoreNumber(dto.Number)
	if err != nil {
		return nil, err
	}

	taskTickets := make([]*task.TaskTicket, 0, len(dto.TaskTickets))
	for _, ttDto := range dto.TaskTickets {
		tt, ttErr := taskTicketToDomain(ttDto)
		if ttErr != nil {
			return nil, ttErr
		}
		taskTickets = append(taskTickets, tt)
	}

	return task.RestoreTask(
		id,
		number,
		task.Status(dto.Status),
		dto.CreatedBy,
		dto.AssignedTo,
		dto.Deadline,
		dto.CreatedAt,
		dto.CompletedAt,
		dto.DocumentID,
		taskTickets,
	)
}

// taskTicketToDomain converts a task ticket DTO to its domain entity.
func taskTicketToDomain(dto TaskTicketDTO) (*task.TaskTicket, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return task.RestoreTaskTicket(
		id,
		dto.TicketID,
		dto.TicketNumber,
		dto.TotalItems,
		dto.ScannedItems,
		task.TaskTicketStatus(dto.Status),
		dto.VerifiedBy,
	)
}

// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler names the narrowest combination of repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// TicketRepoFactory provides access to the ticket repository within a transaction.
	TicketRepoFactory interface {
		TicketRepository() ports.TicketRepository
	}

	// TaskRepoFactory provides access to the task repository within a transaction.
	TaskRepoFactory interface {
		TaskRepository() ports.TaskRepository
	}

	// ScanRecordRepoFactory provides access to the scan log within a transaction.
	ScanRecordRepoFactory interface {
		ScanRecordRepository() ports.ScanRecordRepository
	}

	// DocumentRepoFactory provides access to the document repository within a transaction.
	DocumentRepoFactory interface {
		DocumentRepository() ports.DocumentRepository
	}

	// ArticleRepoFactory provides access to the catalog within a transaction.
	ArticleRepoFactory interface {
		ArticleRepository() ports.ArticleRepository
	}

	// RegistryRepoFactory provides access to the client/company registries within a transaction.
	RegistryRepoFactory interface {
		RegistryRepository() ports.RegistryRepository
	}

	// NotifierFactory provides access to the notifier within a transaction, so a
	// rolled-back command never leaves a notification behind.
	NotifierFactory interface {
		Notifier() ports.Notifier
	}

	// TicketUoW manages transactions for ticket-only operations
	// (expiry sweep, checkout).
	TicketUoW interface {
		TxManager
		TicketRepoFactory
	}

	// TicketUoWFactory creates new ticket unit of work instances.
	TicketUoWFactory interface {
		Create() TicketUoW
	}

	// TaskUoW manages transactions for task creation: tickets move in-task, the
	// task is stored and the assignee may be notified.
	TaskUoW interface {
		TxManager
		TicketRepoFactory
		TaskRepoFactory
		NotifierFactory
	}

	// TaskUoWFactory creates new task unit of work instances.
	TaskUoWFactory interface {
		Create() TaskUoW
	}

	// TaskRemovalUoW manages transactions for task deletion: tickets return to
	// the pool and their scan log entries are removed with the task.
	TaskRemovalUoW interface {
		TxManager
		TicketRepoFactory
		TaskRepoFactory
		ScanRecordRepoFactory
	}

	// TaskRemovalUoWFactory creates new task removal unit of work instances.
	TaskRemovalUoWFactory interface {
		Create() TaskRemovalUoW
	}

	// ScanUoW manages transactions for scan verification: the record is always
	// written, counters and ticket status may advance, the creator may be notified.
	ScanUoW interface {
		TxManager
		TicketRepoFactory
		TaskRepoFactory
		ScanRecordRepoFactory
		NotifierFactory
	}

	// ScanUoWFactory creates new scan unit of work instances.
	ScanUoWFactory interface {
		Create() ScanUoW
	}

	// DocumentUoW manages transactions for document creation across the ticket,
	// task, document, catalog and registry repositories.
	DocumentUoW interface {
		TxManager
		TicketRepoFactory
		TaskRepoFactory
		DocumentRepoFactory
		ArticleRepoFactory
		RegistryRepoFactory
	}

	// DocumentUoWFactory creates new document unit of work instances.
	DocumentUoWFactory interface {
		Create() DocumentUoW
	}

	// DocumentRemovalUoW manages transactions for document deletion: referenced
	// tickets are restored and the originating task unlinked.
	DocumentRemovalUoW interface {
		TxManager
		TicketRepoFactory
		TaskRepoFactory
		DocumentRepoFactory
	}

	// DocumentRemovalUoWFactory creates new document removal unit of work instances.
	DocumentRemovalUoWFactory interface {
		Create() DocumentRemovalUoW
	}
)

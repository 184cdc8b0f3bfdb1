package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// Notification kinds stored on notification rows.
const (
	NotificationTaskAssigned  = "task_assigned"
	NotificationTaskCompleted = "task_completed"
)

// Notification is one message for a user about a task.
type Notification struct {
	TaskID  kernel.UUID
	UserID  int64
	Kind    string
	Title   string
	Message string
}

// Notifier delivers task notifications to users. The postgres implementation
// persists them for the UI to poll; delivery shares the command's transaction,
// so a rolled-back command never leaves a notification behind.
type Notifier interface {
	Notify(ctx context.Context, notification Notification) error
}

// Package notificationrepo persists task notifications for the UI to poll.
// Writes share the command's transaction, so a rolled-back command never
// leaves a notification behind.
package notificationrepo

import (
	"context"
	"time"

	"fulfillment/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationDTO represents one stored task notification.
type NotificationDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	TaskID    uuid.UUID `gorm:"type:uuid;not null;index;column:task_uuid"`
	UserID    int64     `gorm:"not null;index"`
	Kind      string    `gorm:"type:varchar(32);not null"`
	Title     string    `gorm:"type:varchar(128);not null"`
	Message   string    `gorm:"type:varchar(512)"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for notification entities.
func (NotificationDTO) TableName() string {
	return "task_notifications"
}

// GormNotifier implements ports.Notifier by writing notification rows.
type GormNotifier struct {
	db *gorm.DB
}

// NewGormNotifier creates a new GORM-backed notifier.
func NewGormNotifier(db *gorm.DB) *GormNotifier {
	return &GormNotifier{db: db}
}

// Notify stores one notification for the target user.
func (n *GormNotifier) Notify(ctx context.Context, notification ports.Notification) error {
	dto := NotificationDTO{
		TaskID:    notification.TaskID.Bytes(),
		UserID:    notification.UserID,
		Kind:      notification.Kind,
		Title:     notification.Title,
		Message:   notification.Message,
		CreatedAt: time.Now(),
	}

	return n.db.WithContext(ctx).Create(&dto).Error
}

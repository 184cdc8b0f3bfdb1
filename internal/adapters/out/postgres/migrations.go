package postgres

import (
	"fulfillment/internal/adapters/out/postgres/articlerepo"
	"fulfillment/internal/adapters/out/postgres/documentrepo"
	"fulfillment/internal/adapters/out/postgres/notificationrepo"
	"fulfillment/internal/adapters/out/postgres/registryrepo"
	"fulfillment/internal/adapters/out/postgres/scanrepo"
	"fulfillment/internal/adapters/out/postgres/taskrepo"
	"fulfillment/internal/adapters/out/postgres/ticketrepo"

	"gorm.io/gorm"
)

// MigrateSchema creates or updates every table the adapters persist to.
// Parent tables come before the tables holding foreign keys into them.
func MigrateSchema(db *gorm.DB) error {
	return db.AutoMigrate(
		&ticketrepo.TicketDTO{},
		&ticketrepo.TicketLineDTO{},
		&taskrepo.TaskDTO{},
		&taskrepo.TaskTicketDTO{},
		&scanrepo.RecordDTO{},
		&documentrepo.DocumentDTO{},
		&documentrepo.DocumentLineDTO{},
		&documentrepo.CounterDTO{},
		&articlerepo.ArticleDTO{},
		&registryrepo.ClientDTO{},
		&registryrepo.CompanyDTO{},
		&notificationrepo.NotificationDTO{},
	)
}

package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/document"
)

// RegistryRepository defines the read-only contract for the client and company
// registries. Document creation copies the current registry rows into frozen
// snapshots; later registry edits never alter issued documents.
type RegistryRepository interface {
	// GetClient retrieves the current registry data of a client.
	GetClient(ctx context.Context, id int64) (document.ClientSnapshot, error)

	// GetCompany retrieves the current registry data of an issuing company.
	GetCompany(ctx context.Context, id int64) (document.CompanySnapshot, error)
}

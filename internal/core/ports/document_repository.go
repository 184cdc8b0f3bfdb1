package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/document"
)

// DocumentRepository defines the persistence contract for transport documents
// and their owned lines.
type DocumentRepository interface {
	// Add persists a new document with all its lines.
	Add(ctx context.Context, aggregate *document.Document) error

	// Get retrieves a document by its identifier, with its lines in order.
	Get(ctx context.Context, id int64) (*document.Document, error)

	// Delete removes the document and cascades to its lines. Identifier and
	// sequence number are never reused afterwards.
	Delete(ctx context.Context, id int64) error

	// NextIdentifiers allocates the next document id and sequence number as
	// max-seen+1 over all rows ever written.
	NextIdentifiers(ctx context.Context) (id int64, sequence int, err error)
}

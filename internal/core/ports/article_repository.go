package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/article"
)

// ArticleRepository defines the read-only contract for the catalog owned by
// the external till store.
type ArticleRepository interface {
	// Get retrieves one catalog article.
	Get(ctx context.Context, id int64) (article.Article, error)

	// GetByIDs retrieves the articles with the given identifiers, keyed by id.
	// Every requested article must exist.
	GetByIDs(ctx context.Context, ids []int64) (map[int64]article.Article, error)
}

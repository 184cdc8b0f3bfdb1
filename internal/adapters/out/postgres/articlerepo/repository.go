// Package articlerepo reads the article catalog owned by the external till
// store. The core never writes articles, so the package has no Add or Update.
package articlerepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/article"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ArticleDTO represents one catalog article row as the till store writes it.
type ArticleDTO struct {
	ID          int64           `gorm:"primaryKey"`
	Description string          `gorm:"type:varchar(255);not null"`
	VATBracket  int             `gorm:"type:smallint;not null"`
	GrossPrice  decimal.Decimal `gorm:"type:numeric(12,4);not null"`
}

// TableName specifies the database table name for article entities.
func (ArticleDTO) TableName() string {
	return "articles"
}

// GormArticleRepository implements ArticleRepository using GORM.
type GormArticleRepository struct {
	db *gorm.DB
}

// NewGormArticleRepository creates a new GORM article repository.
func NewGormArticleRepository(db *gorm.DB) *GormArticleRepository {
	return &GormArticleRepository{db: db}
}

// Get retrieves one catalog article.
func (r *GormArticleRepository) Get(ctx context.Context, id int64) (article.Article, error) {
	var dto ArticleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return article.Article{}, errs.NewObjectNotFoundError("article", id)
		}
		return article.Article{}, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves the articles with the given identifiers, keyed by id.
// A missing identifier is an error: tickets and manual entries may only
// reference catalog articles.
func (r *GormArticleRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]article.Article, error) {
	var dtos []ArticleDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&dtos).Error; err != nil {
		return nil, err
	}

	articles := make(map[int64]article.Article, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		articles[dto.ID] = a
	}

	for _, id := range ids {
		if _, ok := articles[id]; !ok {
			return nil, errs.NewObjectNotFoundError("article", id)
		}
	}

	return articles, nil
}

// toDomain converts a database DTO to an article domain value.
func toDomain(dto ArticleDTO) (article.Article, error) {
	return article.NewArticle(
		dto.ID,
		dto.Description,
		article.VATBracket(dto.VATBracket),
		dto.GrossPrice,
	)
}

// Package registryrepo reads the client and company registries. Document
// creation copies registry rows into frozen snapshots, so this package only
// ever reads the current row state.
package registryrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/document"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// ClientDTO represents one client registry row.
type ClientDTO struct {
	ID         int64  `gorm:"primaryKey"`
	Name       string `gorm:"type:varchar(255);not null"`
	VATNumber  string `gorm:"type:varchar(32)"`
	TaxCode    string `gorm:"type:varchar(32)"`
	Address    string `gorm:"type:varchar(255)"`
	Town       string `gorm:"type:varchar(128)"`
	Province   string `gorm:"type:varchar(8)"`
	PostalCode string `gorm:"type:varchar(16)"`
	Phone      string `gorm:"type:varchar(32)"`
	Email      string `gorm:"type:varchar(128)"`
}

// TableName specifies the database table name for client entities.
func (ClientDTO) TableName() string {
	return "clients"
}

// CompanyDTO represents one issuing company registry row.
type CompanyDTO struct {
	ID         int64  `gorm:"primaryKey"`
	Name       string `gorm:"type:varchar(255);not null"`
	VATNumber  string `gorm:"type:varchar(32)"`
	TaxCode    string `gorm:"type:varchar(32)"`
	Address    string `gorm:"type:varchar(255)"`
	Town       string `gorm:"type:varchar(128)"`
	Province   string `gorm:"type:varchar(8)"`
	PostalCode string `gorm:"type:varchar(16)"`
	Country    string `gorm:"type:varchar(64)"`
	Phone      string `gorm:"type:varchar(32)"`
}

// TableName specifies the database table name for company entities.
func (CompanyDTO) TableName() string {
	return "companies"
}

// GormRegistryRepository implements RegistryRepository using GORM.
type GormRegistryRepository struct {
	db *gorm.DB
}

// NewGormRegistryRepository creates a new GORM registry repository.
func NewGormRegistryRepository(db *gorm.DB) *GormRegistryRepository {
	return &GormRegistryRepository{db: db}
}

// GetClient retrieves the current registry data of a client.
func (r *GormRegistryRepository) GetClient(ctx context.Context, id int64) (document.ClientSnapshot, error) {
	var dto ClientDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return document.ClientSnapshot{}, errs.NewObjectNotFoundError("client", id)
		}
		return document.ClientSnapshot{}, err
	}

	return document.ClientSnapshot{
		Name:       dto.Name,
		VATNumber:  dto.VATNumber,
		TaxCode:    dto.TaxCode,
		Address:    dto.Address,
		Town:       dto.Town,
		Province:   dto.Province,
		PostalCode: dto.PostalCode,
		Phone:      dto.Phone,
		Email:      dto.Email,
	}, nil
}

// GetCompany retrieves the current registry data of an issuing company.
func (r *GormRegistryRepository) GetCompany(ctx context.Context, id int64) (document.CompanySnapshot, error) {
	var dto CompanyDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return document.CompanySnapshot{}, errs.NewObjectNotFoundError("company", id)
		}
		return document.CompanySnapshot{}, err
	}

	return document.CompanySnapshot{
		Name:       dto.Name,
		VATNumber:  dto.VATNumber,
		TaxCode:    dto.TaxCode,
		Address:    dto.Address,
		Town:       dto.Town,
		Province:   dto.Province,
		PostalCode: dto.PostalCode,
		Country:    dto.Country,
		Phone:      dto.Phone,
	}, nil
}

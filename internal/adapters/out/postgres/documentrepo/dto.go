// Package documentrepo provides data transfer objects and mapping functions
// for transport document persistence. The client and company registry data is
// stored denormalized on the header: the document is a frozen snapshot, later
// registry edits must never alter it.
package documentrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/article"
	"fulfillment/internal/core/domain/model/document"

	"github.com/shopspring/decimal"
)

// DocumentDTO represents the database structure for persisting transport
// documents. The id is allocated by the counter table, never by the database.
type DocumentDTO struct {
	ID        int64     `gorm:"primaryKey"`
	Sequence  int       `gorm:"type:int;not null;uniqueIndex"`
	IssuedAt  time.Time `gorm:"not null"`
	Note      string    `gorm:"type:varchar(512)"`
	CreatedBy int64     `gorm:"not null"`

	ClientName       string `gorm:"type:varchar(255);not null"`
	ClientVATNumber  string `gorm:"type:varchar(32)"`
	ClientTaxCode    string `gorm:"type:varchar(32)"`
	ClientAddress    string `gorm:"type:varchar(255)"`
	ClientTown       string `gorm:"type:varchar(128)"`
	ClientProvince   string `gorm:"type:varchar(8)"`
	ClientPostalCode string `gorm:"type:varchar(16)"`
	ClientPhone      string `gorm:"type:varchar(32)"`
	ClientEmail      string `gorm:"type:varchar(128)"`

	CompanyName       string `gorm:"type:varchar(255);not null"`
	CompanyVATNumber  string `gorm:"type:varchar(32)"`
	CompanyTaxCode    string `gorm:"type:varchar(32)"`
	CompanyAddress    string `gorm:"type:varchar(255)"`
	CompanyTown       string `gorm:"type:varchar(128)"`
	CompanyProvince   string `gorm:"type:varchar(8)"`
	CompanyPostalCode string `gorm:"type:varchar(16)"`
	CompanyCountry    string `gorm:"type:varchar(64)"`
	CompanyPhone      string `gorm:"type:varchar(32)"`

	Lines []DocumentLineDTO `gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for document entities.
func (DocumentDTO) TableName() string {
	return "documents"
}

// DocumentLineDTO represents one document line.
type DocumentLineDTO struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	DocumentID      int64           `gorm:"not null;index"`
	Number          int             `gorm:"type:int;not null"`
	TicketID        *int64          `gorm:"index"`
	Manual          bool            `gorm:"not null"`
	ArticleID       int64           `gorm:"not null"`
	Description     string          `gorm:"type:varchar(255);not null"`
	Weight          decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	UnitNetPrice    decimal.Decimal `gorm:"type:numeric(12,4);not null"`
	VATBracket      int             `gorm:"type:smallint;not null"`
	VATPercentage   decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	DiscountPercent decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	NetAmount       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	VATAmount       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for document line entities.
func (DocumentLineDTO) TableName() string {
	return "document_lines"
}

// CounterDTO is the single-row allocation table behind NextIdentifiers.
// Deleting a document leaves the counters untouched, so an id or sequence
// number is never handed out twice.
type CounterDTO struct {
	ID             int64 `gorm:"primaryKey"`
	LastDocumentID int64 `gorm:"not null"`
	LastSequence   int   `gorm:"type:int;not null"`
}

// TableName specifies the database table name for the document counters.
func (CounterDTO) TableName() string {
	return "document_counters"
}

// fromDomain converts a document domain aggregate to its database representation.
func fromDomain(aggregate *document.Document) DocumentDTO {
	lines := make([]DocumentLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, DocumentLineDTO{
			DocumentID:      aggregate.ID(),
			Number:          line.Number(),
			TicketID:        line.TicketID(),
			Manual:          line.IsManual(),
			ArticleID:       line.ArticleID(),
			Description:     line.Description(),
			Weight:          line.Weight(),
			UnitNetPrice:    line.UnitNetPrice(),
			VATBracket:      int(line.VATBracket()),
			VATPercentage:   line.VATPercentage(),
			DiscountPercent: line.DiscountPercent(),
			NetAmount:       line.NetAmount(),
			VATAmount:       line.VATAmount(),
		})
	}

	client := aggregate.Client()
	company := aggregate.Company()

	return DocumentDTO{
		ID:        aggregate.ID(),
		Sequence:  aggregate.Sequence(),
		IssuedAt:  aggregate.IssuedAt(),
		Note:      aggregate.Note(),
		CreatedBy: aggregate.CreatedBy(),

		ClientName:       client.Name,
		ClientVATNumber:  client.VATNumber,
		ClientTaxCode:    client.TaxCode,
		ClientAddress:    client.Address,
		ClientTown:       client.Town,
		ClientProvince:   client.Province,
		ClientPostalCode: client.PostalCode,
		ClientPhone:      client.Phone,
		ClientEmail:      client.Email,

		CompanyName:       company.Name,
		CompanyVATNumber:  company.VATNumber,
		CompanyTaxCode:    company.TaxCode,
		CompanyAddress:    company.Address,
		CompanyTown:       company.Town,
		CompanyProvince:   company.Province,
		CompanyPostalCode: company.PostalCode,
		CompanyCountry:    company.Country,
		CompanyPhone:      company.Phone,

		Lines: lines,
	}
}

// toDomain converts a database DTO to a document domain aggregate.
func toDomain(dto DocumentDTO) (*document.Document, error) {
	lines := make([]document.Line, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		line, err := document.NewLine(
			lineDto.Number,
			lineDto.TicketID,
			lineDto.Manual,
			lineDto.ArticleID,
			lineDto.Description,
			lineDto.Weight,
			lineDto.UnitNetPrice,
			article.VATBracket(lineDto.VATBracket),
			lineDto.DiscountPercent,
			lineDto.NetAmount,
			lineDto.VATAmount,
		)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	client := document.ClientSnapshot{
		Name:       dto.ClientName,
		VATNumber:  dto.ClientVATNumber,
		TaxCode:    dto.ClientTaxCode,
		Address:    dto.ClientAddress,
		Town:       dto.ClientTown,
		Province:   dto.ClientProvince,
		PostalCode: dto.ClientPostalCode,
		Phone:      dto.ClientPhone,
		Email:      dto.ClientEmail,
	}
	company := document.CompanySnapshot{
		Name:       dto.CompanyName,
		VATNumber:  dto.CompanyVATNumber,
		TaxCode:    dto.CompanyTaxCode,
		Address:    dto.CompanyAddress,
		Town:       dto.CompanyTown,
		Province:   dto.CompanyProvince,
		PostalCode: dto.CompanyPostalCode,
		Country:    dto.CompanyCountry,
		Phone:      dto.CompanyPhone,
	}

	return document.RestoreDocument(
		dto.ID,
		dto.Sequence,
		dto.IssuedAt,
		client,
		company,
		dto.Note,
		dto.CreatedBy,
		lines,
	)
}

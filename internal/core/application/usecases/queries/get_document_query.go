package queries

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetDocumentQueryIsNotConstructed = errors.New(
	"GetDocumentQuery must be created via NewGetDocumentQuery constructor",
)

// GetDocumentQuery retrieves one transport document in full: header, party
// snapshots, lines and totals. The response is the renderer input.
type GetDocumentQuery struct {
	documentID int64

	guard guard.ConstructorGuard
}

// NewGetDocumentQuery creates a query to retrieve a transport document.
func NewGetDocumentQuery(documentID int64) (GetDocumentQuery, error) {
	if documentID <= 0 {
		return GetDocumentQuery{}, errs.NewValueIsInvalidErrorWithCause("document id",
			fmt.Errorf("%d is not greater than 0", documentID))
	}
	return GetDocumentQuery{
		documentID: documentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDocumentQuery) Validate() error {
	return q.guard.Validate(ErrGetDocumentQueryIsNotConstructed)
}

// DocumentID returns the requested document identifier.
func (q GetDocumentQuery) DocumentID() int64 {
	return q.documentID
}

// GetDocumentQueryResponse is a complete transport document read model.
type GetDocumentQueryResponse struct {
	ID        int64
	Sequence  int
	IssuedAt  time.Time
	Note      string
	CreatedBy int64

	Client  DocumentPartyResponse
	Company DocumentPartyResponse

	Lines []DocumentLineResponse

	TotalNet   decimal.Decimal
	TotalVAT   decimal.Decimal
	TotalGross decimal.Decimal
}

// DocumentPartyResponse is the client or company registry snapshot frozen on
// the document at issue time.
type DocumentPartyResponse struct {
	Name       string
	VATNumber  string
	TaxCode    string
	Address    string
	Town       string
	Province   string
	PostalCode string
	Phone      string
	Email      string
	Country    string
}

// DocumentLineResponse is one document line.
type DocumentLineResponse struct {
	Number          int
	TicketID        *int64
	Manual          bool
	ArticleID       int64
	Description     string
	Weight          decimal.Decimal
	UnitNetPrice    decimal.Decimal
	VATPercentage   decimal.Decimal
	DiscountPercent decimal.Decimal
	NetAmount       decimal.Decimal
	VATAmount       decimal.Decimal
	GrossAmount     decimal.Decimal
}

package document

import (
	"fmt"

	"fulfillment/internal/core/domain/model/article"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Line is one consolidated row of a transport document. Lines built from
// ticket lines keep the originating ticket id; manual lines carry a nil ticket
// id and the reserved placeholder article.
//
// Amounts are stored as computed at creation: the document never recomputes a
// line, only sums over them.
type Line struct {
	number          int
	ticketID        *int64
	manual          bool
	articleID       int64
	description     string
	weight          decimal.Decimal
	unitNetPrice    decimal.Decimal
	vatBracket      article.VATBracket
	vatPercentage   decimal.Decimal
	discountPercent decimal.Decimal
	netAmount       decimal.Decimal
	vatAmount       decimal.Decimal
}

// NewLine creates a document line.
// The line number is its 1-based position within the document; manual lines
// must not reference a ticket.
func NewLine(
	number int,
	ticketID *int64,
	manual bool,
	articleID int64,
	description string,
	weight decimal.Decimal,
	unitNetPrice decimal.Decimal,
	vatBracket article.VATBracket,
	discountPercent decimal.Decimal,
	netAmount decimal.Decimal,
	vatAmount decimal.Decimal,
) (Line, error) {
	if number <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("line number",
			fmt.Errorf("%d is not greater than 0", number))
	}
	if manual && ticketID != nil {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("ticket id",
			fmt.Errorf("manual line must not reference a ticket"))
	}
	if !manual && ticketID == nil {
		return Line{}, errs.NewValueIsRequiredError("ticket id")
	}
	if articleID <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("article id",
			fmt.Errorf("%d is not greater than 0", articleID))
	}
	if description == "" {
		return Line{}, errs.NewValueIsRequiredError("description")
	}
	if err := vatBracket.Validate(); err != nil {
		return Line{}, err
	}
	if discountPercent.IsNegative() || discountPercent.GreaterThan(decimal.NewFromInt(100)) {
		return Line{}, errs.NewValueIsOutOfRangeError("discount percent", discountPercent.String(), 0, 100)
	}
	if netAmount.IsNegative() {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("net amount",
			fmt.Errorf("%s is negative", netAmount.String()))
	}
	if vatAmount.IsNegative() {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("vat amount",
			fmt.Errorf("%s is negative", vatAmount.String()))
	}

	return Line{
		number:          number,
		ticketID:        ticketID,
		manual:          manual,
		articleID:       articleID,
		description:     description,
		weight:          weight,
		unitNetPrice:    unitNetPrice,
		vatBracket:      vatBracket,
		vatPercentage:   vatBracket.Percentage(),
		discountPercent: discountPercent,
		netAmount:       netAmount,
		vatAmount:       vatAmount,
	}, nil
}

// Number returns the 1-based position of the line within the document.
func (l Line) Number() int {
	return l.number
}

// TicketID returns the originating ticket, nil for manual lines.
func (l Line) TicketID() *int64 {
	return l.ticketID
}

// IsManual reports whether the line was entered by hand rather than
// consolidated from a ticket.
func (l Line) IsManual() bool {
	return l.manual
}

// ArticleID returns the catalog article of the line.
func (l Line) ArticleID() int64 {
	return l.articleID
}

// Description returns the description snapshot taken at consolidation.
func (l Line) Description() string {
	return l.description
}

// Weight returns the quantity of the line in kilograms or units.
func (l Line) Weight() decimal.Decimal {
	return l.weight
}

// UnitNetPrice returns the VAT-exclusive unit price.
func (l Line) UnitNetPrice() decimal.Decimal {
	return l.unitNetPrice
}

// VATBracket returns the tax bracket of the line.
func (l Line) VATBracket() article.VATBracket {
	return l.vatBracket
}

// VATPercentage returns the bracket rate as a percentage (4, 10 or 22).
func (l Line) VATPercentage() decimal.Decimal {
	return l.vatPercentage
}

// DiscountPercent returns the discount already applied to the amounts.
func (l Line) DiscountPercent() decimal.Decimal {
	return l.discountPercent
}

// NetAmount returns the discounted VAT-exclusive amount of the line.
func (l Line) NetAmount() decimal.Decimal {
	return l.netAmount
}

// VATAmount returns the discounted tax amount of the line.
func (l Line) VATAmount() decimal.Decimal {
	return l.vatAmount
}

// GrossAmount returns net plus VAT.
func (l Line) GrossAmount() decimal.Decimal {
	return l.netAmount.Add(l.vatAmount)
}

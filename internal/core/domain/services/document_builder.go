package services

import (
	"fmt"

	"fulfillment/internal/core/domain/model/article"
	"fulfillment/internal/core/domain/model/document"
	"fulfillment/internal/core/domain/model/ticket"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// amountScale is the scale money amounts are rounded to.
const amountScale = 2

// TicketSelection pairs one ticket with the discount applied to every line
// consolidated from it.
type TicketSelection struct {
	Ticket          *ticket.Ticket
	DiscountPercent decimal.Decimal
}

// ManualEntry is a hand-typed document line: no originating ticket, anchored
// on the reserved placeholder article, VAT bracket supplied by the caller.
type ManualEntry struct {
	Description    string
	Weight         decimal.Decimal
	UnitGrossPrice decimal.Decimal
	VATBracket     article.VATBracket
}

// DocumentBuilder is a domain service holding the consolidation math of
// transport documents. It builds lines only; allocation of the document
// identifiers and the status transitions stay with the command handler.
//
// Per line: net unit price = gross / (1 + rate) from the article's VAT
// bracket; net amount = net unit x weight; VAT amount = net amount x rate;
// the ticket's discount scales net and VAT by (1 - discount/100). Amounts are
// rounded to cents, totals are left to summation over the built lines.
type DocumentBuilder struct{}

// NewDocumentBuilder creates a DocumentBuilder.
func NewDocumentBuilder() DocumentBuilder {
	return DocumentBuilder{}
}

// BuildLines consolidates the selected tickets plus the manual entries into
// document lines, numbered 1..n in input order. The catalog must carry every
// article referenced by the selected ticket lines.
func (b DocumentBuilder) BuildLines(
	selections []TicketSelection,
	manual []ManualEntry,
	catalog map[int64]article.Article,
) ([]document.Line, error) {
	lines := make([]document.Line, 0)

	for _, sel := range selections {
		if err := sel.Ticket.Validate(); err != nil {
			return nil, err
		}
		if sel.DiscountPercent.IsNegative() || sel.DiscountPercent.GreaterThan(decimal.NewFromInt(100)) {
			return nil, errs.NewValueIsOutOfRangeError("discount percent", sel.DiscountPercent.String(), 0, 100)
		}

		for _, tl := range sel.Ticket.Lines() {
			art, ok := catalog[tl.ArticleID()]
			if !ok {
				return nil, errs.NewObjectNotFoundError("article", fmt.Sprintf("%d", tl.ArticleID()))
			}

			ticketID := sel.Ticket.ID()
			line, err := b.buildLine(
				len(lines)+1,
				&ticketID,
				false,
				art.ID(),
				b.lineDescription(tl, art),
				tl.Weight(),
				art.NetPrice(),
				art.VATBracket(),
				sel.DiscountPercent,
			)
			if err != nil {
				return nil, err
			}
			lines = append(lines, line)
		}
	}

	for _, entry := range manual {
		if entry.Description == "" {
			return nil, errs.NewValueIsRequiredError("manual entry description")
		}
		if err := entry.VATBracket.Validate(); err != nil {
			return nil, err
		}

		netUnit := entry.UnitGrossPrice.Div(decimal.NewFromInt(1).Add(entry.VATBracket.Rate()))
		line, err := b.buildLine(
			len(lines)+1,
			nil,
			true,
			article.ManualArticleID,
			entry.Description,
			entry.Weight,
			netUnit,
			entry.VATBracket,
			decimal.Zero,
		)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}

func (b DocumentBuilder) buildLine(
	number int,
	ticketID *int64,
	isManual bool,
	articleID int64,
	description string,
	weight decimal.Decimal,
	unitNetPrice decimal.Decimal,
	bracket article.VATBracket,
	discountPercent decimal.Decimal,
) (document.Line, error) {
	factor := decimal.NewFromInt(1).Sub(discountPercent.Div(decimal.NewFromInt(100)))
	netAmount := unitNetPrice.Mul(weight).Mul(factor).Round(amountScale)
	vatAmount := netAmount.Mul(bracket.Rate()).Round(amountScale)

	return document.NewLine(
		number,
		ticketID,
		isManual,
		articleID,
		description,
		weight,
		unitNetPrice.Round(amountScale),
		bracket,
		discountPercent,
		netAmount,
		vatAmount,
	)
}

// lineDescription prefers the snapshot the scale printed on the ticket and
// falls back to the catalog description when the scale omitted it.
func (b DocumentBuilder) lineDescription(tl ticket.Line, art article.Article) string {
	if tl.Description() != "" {
		return tl.Description()
	}
	return art.Description()
}

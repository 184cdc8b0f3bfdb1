package article

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ManualArticleID is the reserved placeholder article that anchors manual
// document lines. Manual entries carry their own VAT bracket, so the
// placeholder never participates in bracket lookups.
const ManualArticleID int64 = 999

var (
	// ErrArticleIsNotConstructed is returned when an Article was not created via NewArticle.
	ErrArticleIsNotConstructed = errors.New("Article must be created via NewArticle constructor")
	// ErrDescriptionIsRequired is returned when attempting to create an article without a description.
	ErrDescriptionIsRequired = errs.NewValueIsRequiredError("description")
)

// VATBracket identifies one of the closed set of tax brackets shared with the
// till system. The bracket id is the integer stored on catalog rows; the rate
// is derived from it.
type VATBracket int

const (
	// VATReduced4 is the 4% bracket (basic foodstuffs).
	VATReduced4 VATBracket = 1
	// VATReduced10 is the 10% bracket.
	VATReduced10 VATBracket = 2
	// VATStandard22 is the 22% standard bracket.
	VATStandard22 VATBracket = 3
)

// getBracketRates returns the rate for each valid bracket id.
func getBracketRates() map[VATBracket]decimal.Decimal {
	return map[VATBracket]decimal.Decimal{
		VATReduced4:   decimal.New(4, -2),
		VATReduced10:  decimal.New(10, -2),
		VATStandard22: decimal.New(22, -2),
	}
}

// Validate checks that the bracket is one of the closed set {4%, 10%, 22%}.
func (b VATBracket) Validate() error {
	if _, ok := getBracketRates()[b]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("vat bracket",
			fmt.Errorf("%d is not a valid VAT bracket", b))
	}
	return nil
}

// Rate returns the bracket's tax rate as a decimal fraction (0.04, 0.10 or 0.22).
// An invalid bracket yields a zero rate; callers are expected to Validate first.
func (b VATBracket) Rate() decimal.Decimal {
	if rate, ok := getBracketRates()[b]; ok {
		return rate
	}
	return decimal.Zero
}

// Percentage returns the bracket's rate as a percentage value (4, 10 or 22).
func (b VATBracket) Percentage() decimal.Decimal {
	return b.Rate().Mul(decimal.NewFromInt(100))
}

// Article is a read-only snapshot of a catalog row owned by the external
// ticket store. The core never mutates articles; it reads the VAT bracket and
// the VAT-inclusive unit price during document consolidation.
type Article struct {
	id          int64
	description string
	vatBracket  VATBracket
	grossPrice  decimal.Decimal

	guard guard.ConstructorGuard
}

// NewArticle creates an Article snapshot.
// The id must be positive, the description non-empty and the bracket valid.
// The gross price is the VAT-inclusive unit price from the catalog; a missing
// price is represented as zero, matching how the till system stores it.
func NewArticle(id int64, description string, vatBracket VATBracket, grossPrice decimal.Decimal) (Article, error) {
	a := Article{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setDescription(description),
		a.setVATBracket(vatBracket),
	); err != nil {
		return Article{}, err
	}

	a.grossPrice = grossPrice
	return a, nil
}

// Validate ensures the Article was created via NewArticle.
func (a Article) Validate() error {
	return a.guard.Validate(ErrArticleIsNotConstructed)
}

// ID returns the catalog identifier of the article.
func (a Article) ID() int64 {
	return a.id
}

// Description returns the catalog description of the article.
func (a Article) Description() string {
	return a.description
}

// VATBracket returns the article's tax bracket.
func (a Article) VATBracket() VATBracket {
	return a.vatBracket
}

// GrossPrice returns the VAT-inclusive unit price.
func (a Article) GrossPrice() decimal.Decimal {
	return a.grossPrice
}

// NetPrice derives the net unit price from the gross price and the article's
// VAT bracket: net = gross / (1 + rate).
func (a Article) NetPrice() decimal.Decimal {
	divisor := decimal.NewFromInt(1).Add(a.vatBracket.Rate())
	return a.grossPrice.Div(divisor)
}

func (a *Article) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("article id",
			fmt.Errorf("%d is not greater than 0", id))
	}
	a.id = id
	return nil
}

func (a *Article) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}
	a.description = description
	return nil
}

func (a *Article) setVATBracket(b VATBracket) error {
	if err := b.Validate(); err != nil {
		return err
	}
	a.vatBracket = b
	return nil
}

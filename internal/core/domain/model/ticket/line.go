package ticket

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// UnitBehavior tells how a line's quantity is interpreted. The integer values
// mirror the scale firmware's flag.
type UnitBehavior int

const (
	// UnitDiscrete counts whole pieces.
	UnitDiscrete UnitBehavior = 0
	// UnitWeight measures kilograms.
	UnitWeight UnitBehavior = 1
)

// Validate checks that the behavior flag is one of the two known values.
func (b UnitBehavior) Validate() error {
	if b != UnitDiscrete && b != UnitWeight {
		return errs.NewValueIsInvalidErrorWithCause("unit behavior",
			fmt.Errorf("%d is not a valid unit behavior", b))
	}
	return nil
}

// ErrLineIsNotConstructed is returned when a Line was not created via NewLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one weighed or counted item on a ticket. It carries the article
// reference, a description snapshot frozen at sale time, the weight or piece
// count, the unit-behavior flag and an optional expiry date.
type Line struct {
	articleID   int64
	description string
	weight      decimal.Decimal
	behavior    UnitBehavior
	expiry      *time.Time

	guard guard.ConstructorGuard
}

// NewLine creates a ticket line. The article id must be positive and the
// behavior flag valid; the description may be empty (some scales omit it).
func NewLine(articleID int64, description string, weight decimal.Decimal, behavior UnitBehavior, expiry *time.Time) (Line, error) {
	line := Line{
		guard: guard.NewConstructorGuard(),
	}

	if articleID <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("article id",
			fmt.Errorf("%d is not greater than 0", articleID))
	}
	if err := behavior.Validate(); err != nil {
		return Line{}, err
	}

	line.articleID = articleID
	line.description = description
	line.weight = weight
	line.behavior = behavior
	line.expiry = expiry
	return line, nil
}

// Validate ensures the Line was created via NewLine.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// ArticleID returns the referenced catalog article.
func (l Line) ArticleID() int64 {
	return l.articleID
}

// Description returns the description snapshot taken at sale time.
func (l Line) Description() string {
	return l.description
}

// Weight returns the weight in kilograms, or the piece count for
// discrete-unit lines.
func (l Line) Weight() decimal.Decimal {
	return l.weight
}

// Behavior returns the unit-behavior flag.
func (l Line) Behavior() UnitBehavior {
	return l.behavior
}

// Expiry returns the line's expiry date, or nil when the product does not expire.
func (l Line) Expiry() *time.Time {
	return l.expiry
}

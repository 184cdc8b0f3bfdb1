package task

import (
	"fmt"
	"time"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// maxDailySequence bounds the four-digit date-scoped sequence.
const maxDailySequence = 9999

// ErrNumberIsNotConstructed is returned when a Number was not created via NewNumber.
var ErrNumberIsNotConstructed = errs.NewValueIsRequiredError("task number must be created via NewNumber")

// Number is the human-facing task identifier, `TASK-YYYYMMDD-NNNN`. The
// four-digit sequence is scoped to the calendar day and computed as
// max-seen-that-day + 1, so it resets daily; the full string is globally unique.
type Number struct {
	value string
	guard guard.ConstructorGuard
}

// NewNumber builds the task number for the given day and daily sequence.
func NewNumber(day time.Time, sequence int) (Number, error) {
	if sequence <= 0 || sequence > maxDailySequence {
		return Number{}, errs.NewValueIsOutOfRangeError("task sequence", sequence, 1, maxDailySequence)
	}

	return Number{
		value: fmt.Sprintf("TASK-%s-%04d", day.Format("20060102"), sequence),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreNumber rebuilds a Number from its stored string form.
func RestoreNumber(value string) (Number, error) {
	if value == "" {
		return Number{}, errs.NewValueIsRequiredError("task number")
	}
	return Number{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Number was created via a constructor.
func (n Number) Validate() error {
	return n.guard.Validate(ErrNumberIsNotConstructed)
}

// String returns the `TASK-YYYYMMDD-NNNN` form.
func (n Number) String() string {
	return n.value
}

// IsEqual compares two task numbers by value.
func (n Number) IsEqual(other Number) bool {
	return n.value == other.value
}

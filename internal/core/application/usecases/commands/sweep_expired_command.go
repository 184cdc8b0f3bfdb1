package commands

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/guard"
)

var ErrSweepExpiredCommandIsNotConstructed = errors.New(
	"SweepExpiredCommand must be created via NewSweepExpiredCommand constructor",
)

// SweepExpiredCommand represents a request to expire the in-task tickets whose
// earliest line expiry lies strictly before the given day.
type SweepExpiredCommand struct { //nolint:recvcheck //using for validation
	today time.Time

	guard guard.ConstructorGuard
}

// NewSweepExpiredCommand creates a sweep command for the given day.
func NewSweepExpiredCommand(today time.Time) (SweepExpiredCommand, error) {
	if today.IsZero() {
		return SweepExpiredCommand{}, errors.New("today must not be the zero time")
	}

	return SweepExpiredCommand{
		today: today,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SweepExpiredCommand) Validate() error {
	return c.guard.Validate(ErrSweepExpiredCommandIsNotConstructed)
}

// Today returns the day expiries are compared against.
func (c SweepExpiredCommand) Today() time.Time {
	return c.today
}

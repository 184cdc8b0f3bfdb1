package scan

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Outcome classifies one verification attempt. The string values are stored
// on scan records and must stay stable.
type Outcome string

const (
	// OutcomeSuccess means the scanned article was matched on the expected ticket.
	OutcomeSuccess Outcome = "success"
	// OutcomeTicketNotFound means no ticket carries the decoded number.
	OutcomeTicketNotFound Outcome = "ticket_not_found"
	// OutcomeTicketMismatch means the resolved ticket is not the one the task expects.
	OutcomeTicketMismatch Outcome = "ticket_mismatch"
	// OutcomeProductMismatch means a specific line was targeted and the decoded
	// article is a different one.
	OutcomeProductMismatch Outcome = "product_mismatch"
	// OutcomeProductNotInTicket means no line of the expected ticket carries the
	// decoded article.
	OutcomeProductNotInTicket Outcome = "product_not_in_ticket"
)

// getValidOutcomes returns the closed outcome set.
func getValidOutcomes() map[Outcome]struct{} {
	return map[Outcome]struct{}{
		OutcomeSuccess:            {},
		OutcomeTicketNotFound:     {},
		OutcomeTicketMismatch:     {},
		OutcomeProductMismatch:    {},
		OutcomeProductNotInTicket: {},
	}
}

// Validate checks that the outcome is one of the closed set.
func (o Outcome) Validate() error {
	if _, ok := getValidOutcomes()[o]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("scan outcome",
			fmt.Errorf("%q is not a valid scan outcome", string(o)))
	}
	return nil
}

// IsSuccess reports whether the attempt matched.
func (o Outcome) IsSuccess() bool {
	return o == OutcomeSuccess
}

// String returns the stored representation.
func (o Outcome) String() string {
	return string(o)
}

// ErrRecordIsNotConstructed is returned when a Record was not created via NewRecord.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")

// Record is one verification attempt, success or failure. Records are
// append-only: once created they are never mutated, so the scan log is a
// faithful audit trail. Failed attempts leave all counters untouched and exist
// precisely so an operator can retry.
type Record struct {
	id           kernel.UUID
	userID       int64
	code         Code
	ticketID     *int64
	taskTicketID *kernel.UUID
	outcome      Outcome
	errorDetail  string
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewRecord creates a scan record for a decoded code. ticketID is the matched
// (or attempted) ticket, nil when resolution failed entirely; taskTicketID
// links the attempt to the task context it was made in, nil for free scans.
// errorDetail carries the human-readable failure reason and is empty on success.
func NewRecord(
	id kernel.UUID,
	userID int64,
	code Code,
	ticketID *int64,
	taskTicketID *kernel.UUID,
	outcome Outcome,
	errorDetail string,
	createdAt time.Time,
) (*Record, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if userID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("user id",
			fmt.Errorf("%d is not greater than 0", userID))
	}
	if err := code.Validate(); err != nil {
		return nil, err
	}
	if err := outcome.Validate(); err != nil {
		return nil, err
	}

	return &Record{
		id:           id,
		userID:       userID,
		code:         code,
		ticketID:     ticketID,
		taskTicketID: taskTicketID,
		outcome:      outcome,
		errorDetail:  errorDetail,
		createdAt:    createdAt,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Record was created via NewRecord.
func (r *Record) Validate() error {
	if r == nil {
		return ErrRecordIsNotConstructed
	}
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

// ID returns the record identifier.
func (r *Record) ID() kernel.UUID {
	return r.id
}

// UserID returns the operator who performed the attempt.
func (r *Record) UserID() int64 {
	return r.userID
}

// Code returns the decoded payload of the attempt.
func (r *Record) Code() Code {
	return r.code
}

// TicketID returns the matched or attempted ticket, nil when none resolved.
func (r *Record) TicketID() *int64 {
	return r.ticketID
}

// TaskTicketID returns the task context of the attempt, nil for free scans.
func (r *Record) TaskTicketID() *kernel.UUID {
	return r.taskTicketID
}

// Outcome returns the attempt classification.
func (r *Record) Outcome() Outcome {
	return r.outcome
}

// ErrorDetail returns the failure reason, empty on success.
func (r *Record) ErrorDetail() string {
	return r.errorDetail
}

// CreatedAt returns when the attempt was recorded.
func (r *Record) CreatedAt() time.Time {
	return r.createdAt
}

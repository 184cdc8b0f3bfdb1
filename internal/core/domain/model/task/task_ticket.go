package task

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrTaskTicketIsNotConstructed is returned when a TaskTicket was not created
	// through NewTaskTicket or RestoreTaskTicket.
	ErrTaskTicketIsNotConstructed = errors.New("TaskTicket must be created via NewTaskTicket constructor")
	// ErrTaskTicketAlreadyCompleted is returned when a scan is recorded against a
	// ticket whose items are all verified.
	ErrTaskTicketAlreadyCompleted = errors.New("task ticket is already completed")
)

// TaskTicket joins one ticket to one task and tracks its per-item scan
// progress. The scanned counter never exceeds the total; the status is derived
// from the two counters.
type TaskTicket struct {
	// id identifies the join row; tickets reference it while they are in a task
	id kernel.UUID
	// ticketID is the ticket store's primary key
	ticketID int64
	// ticketNumber is the human-facing number scans are matched against
	ticketNumber int
	// totalItems is the line count of the ticket at assignment time
	totalItems int
	// scannedItems counts verified items; never exceeds totalItems
	scannedItems int
	// status derives from the counters
	status TaskTicketStatus
	// verifiedBy is the operator who completed verification, nil until then
	verifiedBy *int64

	guard guard.ConstructorGuard
}

// NewTaskTicket creates the join row at task-creation time with zero progress.
func NewTaskTicket(id kernel.UUID, ticketID int64, ticketNumber, totalItems int) (*TaskTicket, error) {
	return RestoreTaskTicket(id, ticketID, ticketNumber, totalItems, 0, TicketStatusPending, nil)
}

// RestoreTaskTicket reconstructs a TaskTicket from persistence.
func RestoreTaskTicket(
	id kernel.UUID,
	ticketID int64,
	ticketNumber, totalItems, scannedItems int,
	status TaskTicketStatus,
	verifiedBy *int64,
) (*TaskTicket, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if ticketID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("ticket id",
			fmt.Errorf("%d is not greater than 0", ticketID))
	}
	if ticketNumber <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("ticket number",
			fmt.Errorf("%d is not greater than 0", ticketNumber))
	}
	if totalItems < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("total items",
			fmt.Errorf("%d is negative", totalItems))
	}
	if scannedItems < 0 || scannedItems > totalItems {
		return nil, errs.NewValueIsOutOfRangeError("scanned items", scannedItems, 0, totalItems)
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &TaskTicket{
		id:           id,
		ticketID:     ticketID,
		ticketNumber: ticketNumber,
		totalItems:   totalItems,
		scannedItems: scannedItems,
		status:       status,
		verifiedBy:   verifiedBy,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the TaskTicket was created through a constructor.
func (tt *TaskTicket) Validate() error {
	if tt == nil {
		return ErrTaskTicketIsNotConstructed
	}
	return tt.guard.Validate(ErrTaskTicketIsNotConstructed)
}

// ID returns the join-row identifier.
func (tt *TaskTicket) ID() kernel.UUID {
	return tt.id
}

// TicketID returns the ticket store's primary key.
func (tt *TaskTicket) TicketID() int64 {
	return tt.ticketID
}

// TicketNumber returns the human-facing number scans are matched against.
func (tt *TaskTicket) TicketNumber() int {
	return tt.ticketNumber
}

// TotalItems returns the number of items to verify.
func (tt *TaskTicket) TotalItems() int {
	return tt.totalItems
}

// ScannedItems returns the number of verified items.
func (tt *TaskTicket) ScannedItems() int {
	return tt.scannedItems
}

// Status returns the derived progress state.
func (tt *TaskTicket) Status() TaskTicketStatus {
	return tt.status
}

// VerifiedBy returns the operator who completed verification, nil until then.
func (tt *TaskTicket) VerifiedBy() *int64 {
	return tt.verifiedBy
}

// IsCompleted reports whether every item is verified.
func (tt *TaskTicket) IsCompleted() bool {
	return tt.status == TicketStatusCompleted
}

// IsStarted reports whether at least one item is verified.
func (tt *TaskTicket) IsStarted() bool {
	return tt.scannedItems > 0
}

// RecordScan counts one successfully verified item for the given operator.
// When the last item is verified the status moves to completed and the
// operator is recorded as the verifier. Scanning past the total is refused.
func (tt *TaskTicket) RecordScan(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("user id",
			fmt.Errorf("%d is not greater than 0", userID))
	}
	if tt.scannedItems >= tt.totalItems {
		return ErrTaskTicketAlreadyCompleted
	}

	tt.scannedItems++
	if tt.scannedItems == tt.totalItems {
		tt.status = TicketStatusCompleted
		tt.verifiedBy = &userID
	} else {
		tt.status = TicketStatusInProgress
	}
	return nil
}

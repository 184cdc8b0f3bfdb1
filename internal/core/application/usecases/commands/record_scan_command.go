package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/scan"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrRecordScanCommandIsNotConstructed = errors.New(
		"RecordScanCommand must be created via NewRecordScanCommand constructor",
	)
	ErrUserIDIsInvalid = errors.New("user id must be greater than 0")
)

// RecordScanCommand represents one verification attempt: an operator scanned a
// barcode against a TaskTicket. The raw payload is decoded in the constructor,
// so a malformed code never reaches the handler and leaves no trace in the
// scan log.
type RecordScanCommand struct { //nolint:recvcheck //using for validation
	taskTicketID kernel.UUID
	code         scan.Code
	userID       int64

	guard guard.ConstructorGuard
}

// NewRecordScanCommand creates a command for one scan attempt. Returns
// scan.ErrMalformedCode when the payload is not exactly 27 digits.
func NewRecordScanCommand(taskTicketID kernel.UUID, rawCode string, userID int64) (RecordScanCommand, error) {
	cmd := RecordScanCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := taskTicketID.Validate(); err != nil {
		return RecordScanCommand{}, err
	}
	code, err := scan.ParseCode(rawCode)
	if err != nil {
		return RecordScanCommand{}, err
	}
	if userID <= 0 {
		return RecordScanCommand{}, ErrUserIDIsInvalid
	}

	cmd.taskTicketID = taskTicketID
	cmd.code = code
	cmd.userID = userID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordScanCommand) Validate() error {
	return c.guard.Validate(ErrRecordScanCommandIsNotConstructed)
}

// TaskTicketID returns the TaskTicket the operator is verifying.
func (c RecordScanCommand) TaskTicketID() kernel.UUID {
	return c.taskTicketID
}

// Code returns the decoded scan payload.
func (c RecordScanCommand) Code() scan.Code {
	return c.code
}

// UserID returns the scanning operator.
func (c RecordScanCommand) UserID() int64 {
	return c.userID
}

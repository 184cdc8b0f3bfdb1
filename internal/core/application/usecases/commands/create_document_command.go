package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/article"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateDocumentCommandIsNotConstructed = errors.New(
		"CreateDocumentCommand must be created via NewCreateDocumentCommand constructor",
	)
	ErrDocumentHasNoContent = errors.New("document needs at least one ticket selection or manual entry")
)

// TicketSelection names one processed ticket to consolidate and the discount
// applied to every line taken from it.
type TicketSelection struct {
	TicketID        int64
	DiscountPercent decimal.Decimal
}

// ManualEntry is one hand-typed document line.
type ManualEntry struct {
	Description    string
	Weight         decimal.Decimal
	UnitGrossPrice decimal.Decimal
	VATBracket     article.VATBracket
}

// CreateDocumentCommand represents a request to issue a transport document
// over the selected tickets plus manual entries, for the given client.
type CreateDocumentCommand struct { //nolint:recvcheck //using for validation
	clientID      int64
	companyID     int64
	selections    []TicketSelection
	manualEntries []ManualEntry
	note          string
	taskID        *kernel.UUID
	userID        int64

	guard guard.ConstructorGuard
}

// NewCreateDocumentCommand creates a command to issue a transport document.
// At least one ticket selection or manual entry is required; taskID, when
// given, links the document back to the task it was generated from.
func NewCreateDocumentCommand(
	clientID int64,
	companyID int64,
	selections []TicketSelection,
	manualEntries []ManualEntry,
	note string,
	taskID *kernel.UUID,
	userID int64,
) (CreateDocumentCommand, error) {
	cmd := CreateDocumentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if clientID <= 0 {
		return CreateDocumentCommand{}, fmt.Errorf("client id %d must be greater than 0", clientID)
	}
	if companyID <= 0 {
		return CreateDocumentCommand{}, fmt.Errorf("company id %d must be greater than 0", companyID)
	}
	if len(selections) == 0 && len(manualEntries) == 0 {
		return CreateDocumentCommand{}, ErrDocumentHasNoContent
	}
	for _, sel := range selections {
		if sel.TicketID <= 0 {
			return CreateDocumentCommand{}, fmt.Errorf("ticket id %d must be greater than 0", sel.TicketID)
		}
	}
	if taskID != nil {
		if err := taskID.Validate(); err != nil {
			return CreateDocumentCommand{}, err
		}
	}
	if userID <= 0 {
		return CreateDocumentCommand{}, ErrUserIDIsInvalid
	}

	cmd.clientID = clientID
	cmd.companyID = companyID
	cmd.selections = selections
	cmd.manualEntries = manualEntries
	cmd.note = note
	cmd.taskID = taskID
	cmd.userID = userID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDocumentCommand) Validate() error {
	return c.guard.Validate(ErrCreateDocumentCommandIsNotConstructed)
}

// ClientID returns the recipient client.
func (c CreateDocumentCommand) ClientID() int64 {
	return c.clientID
}

// CompanyID returns the issuing company.
func (c CreateDocumentCommand) CompanyID() int64 {
	return c.companyID
}

// Selections returns the tickets to consolidate with their discounts.
func (c CreateDocumentCommand) Selections() []TicketSelection {
	return c.selections
}

// ManualEntries returns the hand-typed lines.
func (c CreateDocumentCommand) ManualEntries() []ManualEntry {
	return c.manualEntries
}

// Note returns the free-form document note.
func (c CreateDocumentCommand) Note() string {
	return c.note
}

// TaskID returns the originating task, nil when the document is built directly
// from processed tickets.
func (c CreateDocumentCommand) TaskID() *kernel.UUID {
	return c.taskID
}

// UserID returns the issuing user.
func (c CreateDocumentCommand) UserID() int64 {
	return c.userID
}

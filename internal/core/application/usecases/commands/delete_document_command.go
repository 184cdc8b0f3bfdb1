package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/guard"
)

var ErrDeleteDocumentCommandIsNotConstructed = errors.New(
	"DeleteDocumentCommand must be created via NewDeleteDocumentCommand constructor",
)

// DeleteDocumentCommand represents a request to reverse an issued transport
// document: the document and its lines disappear and the consumed tickets
// return to the pipeline.
type DeleteDocumentCommand struct { //nolint:recvcheck //using for validation
	documentID int64

	guard guard.ConstructorGuard
}

// NewDeleteDocumentCommand creates a command to delete the given document.
func NewDeleteDocumentCommand(documentID int64) (DeleteDocumentCommand, error) {
	if documentID <= 0 {
		return DeleteDocumentCommand{}, fmt.Errorf("document id %d must be greater than 0", documentID)
	}

	return DeleteDocumentCommand{
		documentID: documentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteDocumentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDocumentCommandIsNotConstructed)
}

// DocumentID returns the document to delete.
func (c DeleteDocumentCommand) DocumentID() int64 {
	return c.documentID
}

package document

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrDocumentIsNotConstructed is returned when a Document was not created
	// through NewDocument or RestoreDocument.
	ErrDocumentIsNotConstructed = errors.New("Document must be created via NewDocument constructor")
	// ErrNoLines is returned when attempting to create a document without lines.
	// The guard fires before anything is persisted, so no id or sequence number
	// is burned on an empty document.
	ErrNoLines = errors.New("document must contain at least one line")
)

// Totals are the summed amounts of a document. They are always derived from
// the lines, never stored independently.
type Totals struct {
	Net   decimal.Decimal
	VAT   decimal.Decimal
	Gross decimal.Decimal
}

// Document is an issued transport document (DDT) consolidating lines from
// processed tickets plus optional manual entries.
//
// Invariants:
//   - Identifier and sequence number are allocated max-seen+1 and never reused,
//     even across deletions.
//   - A document owns at least one line; lines never outlive the document.
//   - Client and company data are snapshots frozen at creation.
//   - Totals are derived by summation over the lines.
type Document struct {
	id        int64
	sequence  int
	issuedAt  time.Time
	client    ClientSnapshot
	company   CompanySnapshot
	note      string
	createdBy int64
	lines     []Line

	guard guard.ConstructorGuard
}

// NewDocument creates a transport document over the given lines.
func NewDocument(
	id int64,
	sequence int,
	issuedAt time.Time,
	client ClientSnapshot,
	company CompanySnapshot,
	note string,
	createdBy int64,
	lines []Line,
) (*Document, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("document id",
			fmt.Errorf("%d is not greater than 0", id))
	}
	if sequence <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("sequence number",
			fmt.Errorf("%d is not greater than 0", sequence))
	}
	if err := client.Validate(); err != nil {
		return nil, err
	}
	if err := company.Validate(); err != nil {
		return nil, err
	}
	if createdBy <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("created by",
			fmt.Errorf("%d is not greater than 0", createdBy))
	}
	if len(lines) == 0 {
		return nil, ErrNoLines
	}

	return &Document{
		id:        id,
		sequence:  sequence,
		issuedAt:  issuedAt,
		client:    client,
		company:   company,
		note:      note,
		createdBy: createdBy,
		lines:     lines,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreDocument reconstructs a Document from persistence.
func RestoreDocument(
	id int64,
	sequence int,
	issuedAt time.Time,
	client ClientSnapshot,
	company CompanySnapshot,
	note string,
	createdBy int64,
	lines []Line,
) (*Document, error) {
	return NewDocument(id, sequence, issuedAt, client, company, note, createdBy, lines)
}

// Validate ensures the Document was created through a constructor.
func (d *Document) Validate() error {
	if d == nil {
		return ErrDocumentIsNotConstructed
	}
	return d.guard.Validate(ErrDocumentIsNotConstructed)
}

// ID returns the document identifier.
func (d *Document) ID() int64 {
	return d.id
}

// Sequence returns the document's sequence number.
func (d *Document) Sequence() int {
	return d.sequence
}

// IssuedAt returns the issue timestamp.
func (d *Document) IssuedAt() time.Time {
	return d.issuedAt
}

// Client returns the frozen recipient snapshot.
func (d *Document) Client() ClientSnapshot {
	return d.client
}

// Company returns the frozen issuer snapshot.
func (d *Document) Company() CompanySnapshot {
	return d.company
}

// Note returns the free-form document note.
func (d *Document) Note() string {
	return d.note
}

// CreatedBy returns the user who issued the document.
func (d *Document) CreatedBy() int64 {
	return d.createdBy
}

// Lines returns the owned lines in document order.
func (d *Document) Lines() []Line {
	return d.lines
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// TicketIDs returns the distinct tickets consolidated into the document, in
// first-seen order. Manual lines contribute nothing.
func (d *Document) TicketIDs() []int64 {
	seen := make(map[int64]struct{})
	ids := make([]int64, 0, len(d.lines))
	for _, line := range d.lines {
		if line.TicketID() == nil {
			continue
		}
		id := *line.TicketID()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// Totals sums net and VAT over the lines; gross is their sum.
func (d *Document) Totals() Totals {
	net := decimal.Zero
	vat := decimal.Zero
	for _, line := range d.lines {
		net = net.Add(line.NetAmount())
		vat = vat.Add(line.VATAmount())
	}
	return Totals{Net: net, VAT: vat, Gross: net.Add(vat)}
}

// IsEqual compares two documents by identity.
func (d *Document) IsEqual(other *Document) bool {
	return other != nil && d.id == other.id
}

package scan

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// codeLength is the fixed width of a scan code. Anything else is rejected
// outright.
const codeLength = 27

// timestampLayout is the scale's DDMMYYYYHHMMSS stamp.
const timestampLayout = "02012006150405"

// ErrMalformedCode is returned for structurally invalid scan payloads: wrong
// length or non-digit content. Malformed input is rejected at the boundary
// with no state mutation and no scan record written.
var ErrMalformedCode = errors.New("malformed scan code")

// Code is the decoded form of one scan payload. The wire format is exactly 27
// ASCII digits with fixed-width positional fields:
//
//	offset 0, length 4  — ticket number
//	offset 4, length 4  — article id
//	offset 8, length 5  — weight in grams
//	offset 13, length 14 — timestamp, DDMMYYYYHHMMSS
//
// Code is immutable once parsed.
type Code struct {
	raw          string
	ticketNumber int
	articleID    int64
	weightGrams  int64
	timestamp    *time.Time
}

// ParseCode decodes a scan payload. It fails fast with ErrMalformedCode on
// wrong length or non-digit content, interpreting nothing. A structurally
// valid code whose timestamp digits do not form a real calendar date decodes
// with a nil timestamp; resolution then falls back to first-match.
func ParseCode(raw string) (Code, error) {
	if len(raw) != codeLength {
		return Code{}, fmt.Errorf("%w: expected %d digits, got %d characters", ErrMalformedCode, codeLength, len(raw))
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return Code{}, fmt.Errorf("%w: non-digit character at position %d", ErrMalformedCode, i)
		}
	}

	ticketNumber, _ := strconv.Atoi(raw[0:4])
	articleID, _ := strconv.ParseInt(raw[4:8], 10, 64)
	weightGrams, _ := strconv.ParseInt(raw[8:13], 10, 64)

	var timestamp *time.Time
	if ts, err := time.Parse(timestampLayout, raw[13:27]); err == nil {
		timestamp = &ts
	}

	return Code{
		raw:          raw,
		ticketNumber: ticketNumber,
		articleID:    articleID,
		weightGrams:  weightGrams,
		timestamp:    timestamp,
	}, nil
}

// Raw returns the original 27-digit payload.
func (c Code) Raw() string {
	return c.raw
}

// TicketNumber returns the human-facing ticket number encoded in the payload.
func (c Code) TicketNumber() int {
	return c.ticketNumber
}

// ArticleID returns the scanned article id.
func (c Code) ArticleID() int64 {
	return c.articleID
}

// WeightGrams returns the raw weight field in grams.
func (c Code) WeightGrams() int64 {
	return c.weightGrams
}

// WeightKG returns the weight converted to kilograms (grams / 1000).
func (c Code) WeightKG() decimal.Decimal {
	return decimal.New(c.weightGrams, -3)
}

// Timestamp returns the decoded scale timestamp, or nil when the digits do
// not form a valid date.
func (c Code) Timestamp() *time.Time {
	return c.timestamp
}

// Validate reports whether the code was produced by ParseCode.
func (c Code) Validate() error {
	if c.raw == "" {
		return ErrMalformedCode
	}
	return nil
}

package services

import (
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/scan"
	"fulfillment/internal/core/domain/model/ticket"
)

// Verification is the result of checking one scan against the ticket the
// operator is expected to be working on. A non-success outcome is a recorded
// fact, not an error: the handler persists it and the operator retries.
type Verification struct {
	// Ticket is the resolved ticket, nil when no candidate carried the number.
	Ticket *ticket.Ticket
	// Outcome classifies the attempt.
	Outcome scan.Outcome
	// Detail is the human-readable failure reason, empty on success.
	Detail string
}

// ScanVerifier is a domain service that matches a decoded scan code against
// the expected ticket of a verification task.
//
// Resolution: ticket numbers repeat across days, so when several candidates
// share the decoded number the one whose header timestamp is closest to the
// timestamp encoded in the code wins. A code whose timestamp did not decode
// falls back to the first candidate.
//
// The outcome ladder, evaluated in order:
//  1. no candidate carries the number — ticket_not_found
//  2. the resolved ticket is not the expected one — ticket_mismatch
//  3. a specific line is targeted and carries a different article — product_mismatch
//  4. no line of the resolved ticket carries the article — product_not_in_ticket
//  5. otherwise — success
type ScanVerifier struct{}

// NewScanVerifier creates a ScanVerifier.
func NewScanVerifier() ScanVerifier {
	return ScanVerifier{}
}

// Verify resolves the scanned code among the candidates and classifies the
// attempt. expectedNumber is the ticket number the task expects the operator
// to verify; targetArticleID, when non-nil, pins the attempt to a specific
// line of that ticket.
func (v ScanVerifier) Verify(
	code scan.Code,
	candidates []*ticket.Ticket,
	expectedNumber int,
	targetArticleID *int64,
) Verification {
	resolved := v.resolve(code, candidates)
	if resolved == nil {
		return Verification{
			Outcome: scan.OutcomeTicketNotFound,
			Detail:  fmt.Sprintf("no ticket carries number %d", code.TicketNumber()),
		}
	}

	if resolved.Number() != expectedNumber {
		return Verification{
			Ticket:  resolved,
			Outcome: scan.OutcomeTicketMismatch,
			Detail:  fmt.Sprintf("scanned ticket %d, expected %d", resolved.Number(), expectedNumber),
		}
	}

	if targetArticleID != nil && *targetArticleID != code.ArticleID() {
		return Verification{
			Ticket:  resolved,
			Outcome: scan.OutcomeProductMismatch,
			Detail:  fmt.Sprintf("scanned article %d, expected %d", code.ArticleID(), *targetArticleID),
		}
	}

	if !v.ticketCarriesArticle(resolved, code.ArticleID()) {
		return Verification{
			Ticket:  resolved,
			Outcome: scan.OutcomeProductNotInTicket,
			Detail:  fmt.Sprintf("ticket %d has no line with article %d", resolved.Number(), code.ArticleID()),
		}
	}

	return Verification{
		Ticket:  resolved,
		Outcome: scan.OutcomeSuccess,
	}
}

// resolve picks the candidate whose header timestamp is closest to the
// timestamp decoded from the code. Candidates with a different number are
// skipped; without a decoded timestamp the first matching candidate wins.
func (v ScanVerifier) resolve(code scan.Code, candidates []*ticket.Ticket) *ticket.Ticket {
	var best *ticket.Ticket
	for _, c := range candidates {
		if c == nil || c.Number() != code.TicketNumber() {
			continue
		}
		if best == nil {
			best = c
			continue
		}
		ts := code.Timestamp()
		if ts == nil {
			continue
		}
		if absDuration(c.IssuedAt().Sub(*ts)) < absDuration(best.IssuedAt().Sub(*ts)) {
			best = c
		}
	}
	return best
}

func (v ScanVerifier) ticketCarriesArticle(t *ticket.Ticket, articleID int64) bool {
	for _, line := range t.Lines() {
		if line.ArticleID() == articleID {
			return true
		}
	}
	return false
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

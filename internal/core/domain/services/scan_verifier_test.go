package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/scan"
	"fulfillment/internal/core/domain/model/ticket"
	"fulfillment/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ticket 1042, article 31, 500g, issued 01/12/2023 14:30:00
const validCode = "104200310050001122023143000"

func mustCode(t *testing.T, raw string) scan.Code {
	t.Helper()
	code, err := scan.ParseCode(raw)
	require.NoError(t, err)
	return code
}

func ticketWithArticles(t *testing.T, id int64, number int, issuedAt time.Time, articleIDs ...int64) *ticket.Ticket {
	t.Helper()
	lines := make([]ticket.Line, 0, len(articleIDs))
	for _, articleID := range articleIDs {
		line, err := ticket.NewLine(articleID, "Prosciutto crudo", decimal.New(500, -3), ticket.UnitWeight, nil)
		require.NoError(t, err)
		lines = append(lines, line)
	}
	tk, err := ticket.NewTicket(id, number, issuedAt, lines)
	require.NoError(t, err)
	return tk
}

func TestScanVerifier_Verify(t *testing.T) {
	verifier := services.NewScanVerifier()
	issuedAt := time.Date(2023, 12, 1, 14, 25, 0, 0, time.UTC)
	code := mustCode(t, validCode)

	t.Run("success", func(t *testing.T) {
		tk := ticketWithArticles(t, 7, 1042, issuedAt, 12, 31)

		result := verifier.Verify(code, []*ticket.Ticket{tk}, 1042, nil)

		assert.Equal(t, scan.OutcomeSuccess, result.Outcome)
		assert.Same(t, tk, result.Ticket)
		assert.Empty(t, result.Detail)
	})

	t.Run("ticket_not_found_without_candidates", func(t *testing.T) {
		result := verifier.Verify(code, nil, 1042, nil)

		assert.Equal(t, scan.OutcomeTicketNotFound, result.Outcome)
		assert.Nil(t, result.Ticket)
		assert.NotEmpty(t, result.Detail)
	})

	t.Run("ticket_not_found_when_numbers_differ", func(t *testing.T) {
		other := ticketWithArticles(t, 9, 2000, issuedAt, 31)

		result := verifier.Verify(code, []*ticket.Ticket{other}, 1042, nil)

		assert.Equal(t, scan.OutcomeTicketNotFound, result.Outcome)
	})

	t.Run("ticket_mismatch", func(t *testing.T) {
		tk := ticketWithArticles(t, 7, 1042, issuedAt, 31)

		result := verifier.Verify(code, []*ticket.Ticket{tk}, 1043, nil)

		assert.Equal(t, scan.OutcomeTicketMismatch, result.Outcome)
		assert.Same(t, tk, result.Ticket)
	})

	t.Run("product_mismatch_on_targeted_line", func(t *testing.T) {
		tk := ticketWithArticles(t, 7, 1042, issuedAt, 12, 31)
		target := int64(12)

		result := verifier.Verify(code, []*ticket.Ticket{tk}, 1042, &target)

		assert.Equal(t, scan.OutcomeProductMismatch, result.Outcome)
	})

	t.Run("product_not_in_ticket", func(t *testing.T) {
		tk := ticketWithArticles(t, 7, 1042, issuedAt, 12, 13)

		result := verifier.Verify(code, []*ticket.Ticket{tk}, 1042, nil)

		assert.Equal(t, scan.OutcomeProductNotInTicket, result.Outcome)
	})
}

func TestScanVerifier_ResolvesClosestTimestamp(t *testing.T) {
	verifier := services.NewScanVerifier()
	code := mustCode(t, validCode) // stamped 14:30:00

	morning := ticketWithArticles(t, 7, 1042, time.Date(2023, 12, 1, 8, 0, 0, 0, time.UTC), 31)
	afternoon := ticketWithArticles(t, 8, 1042, time.Date(2023, 12, 1, 14, 25, 0, 0, time.UTC), 31)

	result := verifier.Verify(code, []*ticket.Ticket{morning, afternoon}, 1042, nil)

	require.Equal(t, scan.OutcomeSuccess, result.Outcome)
	assert.Same(t, afternoon, result.Ticket, "the ticket issued closest to the scan timestamp wins")
}

func TestScanVerifier_FallsBackToFirstWithoutTimestamp(t *testing.T) {
	verifier := services.NewScanVerifier()
	// month 13 does not decode to a calendar date
	code := mustCode(t, "104200310050001132023143000")
	require.Nil(t, code.Timestamp())

	first := ticketWithArticles(t, 7, 1042, time.Date(2023, 12, 1, 8, 0, 0, 0, time.UTC), 31)
	second := ticketWithArticles(t, 8, 1042, time.Date(2023, 12, 1, 14, 25, 0, 0, time.UTC), 31)

	result := verifier.Verify(code, []*ticket.Ticket{first, second}, 1042, nil)

	require.Equal(t, scan.OutcomeSuccess, result.Outcome)
	assert.Same(t, first, result.Ticket)
}

package scan_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/scan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	code, err := scan.ParseCode("104200310050001122023143000")
	require.NoError(t, err)

	t.Run("success_record", func(t *testing.T) {
		ticketID := int64(7)
		taskTicketID := kernel.NewUUID()
		now := time.Now()

		rec, err := scan.NewRecord(kernel.NewUUID(), 3, code, &ticketID, &taskTicketID, scan.OutcomeSuccess, "", now)

		require.NoError(t, err)
		require.NoError(t, rec.Validate())
		assert.Equal(t, int64(3), rec.UserID())
		assert.Equal(t, scan.OutcomeSuccess, rec.Outcome())
		assert.Empty(t, rec.ErrorDetail())
		require.NotNil(t, rec.TicketID())
		assert.Equal(t, int64(7), *rec.TicketID())
		assert.Equal(t, "104200310050001122023143000", rec.Code().Raw())
	})

	t.Run("failure_record_without_ticket", func(t *testing.T) {
		rec, err := scan.NewRecord(kernel.NewUUID(), 3, code, nil, nil,
			scan.OutcomeTicketNotFound, "ticket 1042 not found", time.Now())

		require.NoError(t, err)
		assert.Nil(t, rec.TicketID())
		assert.Equal(t, "ticket 1042 not found", rec.ErrorDetail())
	})

	t.Run("rejects_invalid_inputs", func(t *testing.T) {
		var zeroID kernel.UUID
		_, err := scan.NewRecord(zeroID, 3, code, nil, nil, scan.OutcomeSuccess, "", time.Now())
		require.Error(t, err)

		_, err = scan.NewRecord(kernel.NewUUID(), 0, code, nil, nil, scan.OutcomeSuccess, "", time.Now())
		require.Error(t, err)

		var zeroCode scan.Code
		_, err = scan.NewRecord(kernel.NewUUID(), 3, zeroCode, nil, nil, scan.OutcomeSuccess, "", time.Now())
		require.ErrorIs(t, err, scan.ErrMalformedCode)

		_, err = scan.NewRecord(kernel.NewUUID(), 3, code, nil, nil, scan.Outcome("bogus"), "", time.Now())
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var rec scan.Record
		require.ErrorIs(t, rec.Validate(), scan.ErrRecordIsNotConstructed)
	})
}

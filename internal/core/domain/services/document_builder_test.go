package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/article"
	"fulfillment/internal/core/domain/model/document"
	"fulfillment/internal/core/domain/model/ticket"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustArticle(t *testing.T, id int64, description string, bracket article.VATBracket, gross string) article.Article {
	t.Helper()
	art, err := article.NewArticle(id, description, bracket, decimal.RequireFromString(gross))
	require.NoError(t, err)
	return art
}

func mustTicketLine(t *testing.T, articleID int64, weight string) ticket.Line {
	t.Helper()
	line, err := ticket.NewLine(articleID, "", decimal.RequireFromString(weight), ticket.UnitWeight, nil)
	require.NoError(t, err)
	return line
}

func mustTicket(t *testing.T, id int64, number int, lines ...ticket.Line) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(id, number, time.Date(2023, 12, 1, 14, 25, 0, 0, time.UTC), lines)
	require.NoError(t, err)
	return tk
}

func TestDocumentBuilder_BuildLines(t *testing.T) {
	builder := services.NewDocumentBuilder()
	catalog := map[int64]article.Article{
		31: mustArticle(t, 31, "Prosciutto crudo", article.VATStandard22, "12.20"),
		45: mustArticle(t, 45, "Pane comune", article.VATReduced4, "5.20"),
	}

	t.Run("derives_net_and_vat_per_bracket", func(t *testing.T) {
		tk := mustTicket(t, 7, 1042,
			mustTicketLine(t, 31, "2"),
			mustTicketLine(t, 45, "1"),
		)

		lines, err := builder.BuildLines(
			[]services.TicketSelection{{Ticket: tk, DiscountPercent: decimal.Zero}},
			nil, catalog,
		)

		require.NoError(t, err)
		require.Len(t, lines, 2)

		// gross 12.20 at 22% -> net unit 10.00; x2kg -> 20.00 net, 4.40 VAT
		assert.Equal(t, 1, lines[0].Number())
		assert.True(t, lines[0].NetAmount().Equal(decimal.RequireFromString("20.00")), "net: %s", lines[0].NetAmount())
		assert.True(t, lines[0].VATAmount().Equal(decimal.RequireFromString("4.40")), "vat: %s", lines[0].VATAmount())
		assert.True(t, lines[0].VATPercentage().Equal(decimal.NewFromInt(22)))
		require.NotNil(t, lines[0].TicketID())
		assert.Equal(t, int64(7), *lines[0].TicketID())
		assert.Equal(t, "Prosciutto crudo", lines[0].Description(), "catalog description fills in for an empty snapshot")

		// gross 5.20 at 4% -> net unit 5.00; x1kg -> 5.00 net, 0.20 VAT
		assert.Equal(t, 2, lines[1].Number())
		assert.True(t, lines[1].NetAmount().Equal(decimal.RequireFromString("5.00")), "net: %s", lines[1].NetAmount())
		assert.True(t, lines[1].VATAmount().Equal(decimal.RequireFromString("0.20")), "vat: %s", lines[1].VATAmount())
	})

	t.Run("discount_scales_net_and_vat", func(t *testing.T) {
		tk := mustTicket(t, 7, 1042, mustTicketLine(t, 31, "2"))

		lines, err := builder.BuildLines(
			[]services.TicketSelection{{Ticket: tk, DiscountPercent: decimal.NewFromInt(20)}},
			nil, catalog,
		)

		require.NoError(t, err)
		require.Len(t, lines, 1)
		// 20.00 net scaled by 0.8 -> 16.00; VAT 16.00 x 0.22 -> 3.52
		assert.True(t, lines[0].NetAmount().Equal(decimal.RequireFromString("16.00")), "net: %s", lines[0].NetAmount())
		assert.True(t, lines[0].VATAmount().Equal(decimal.RequireFromString("3.52")), "vat: %s", lines[0].VATAmount())
		assert.True(t, lines[0].DiscountPercent().Equal(decimal.NewFromInt(20)))
	})

	t.Run("manual_entries_anchor_on_placeholder_article", func(t *testing.T) {
		lines, err := builder.BuildLines(nil,
			[]services.ManualEntry{{
				Description:    "Trasporto",
				Weight:         decimal.NewFromInt(1),
				UnitGrossPrice: decimal.RequireFromString("12.20"),
				VATBracket:     article.VATStandard22,
			}},
			catalog,
		)

		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.True(t, lines[0].IsManual())
		assert.Nil(t, lines[0].TicketID())
		assert.Equal(t, article.ManualArticleID, lines[0].ArticleID())
		assert.True(t, lines[0].NetAmount().Equal(decimal.RequireFromString("10.00")), "net: %s", lines[0].NetAmount())
		assert.True(t, lines[0].VATAmount().Equal(decimal.RequireFromString("2.20")), "vat: %s", lines[0].VATAmount())
	})

	t.Run("numbers_lines_across_tickets_and_manual_entries", func(t *testing.T) {
		tkA := mustTicket(t, 7, 1042, mustTicketLine(t, 31, "1"))
		tkB := mustTicket(t, 8, 1043, mustTicketLine(t, 45, "1"))

		lines, err := builder.BuildLines(
			[]services.TicketSelection{
				{Ticket: tkA, DiscountPercent: decimal.Zero},
				{Ticket: tkB, DiscountPercent: decimal.Zero},
			},
			[]services.ManualEntry{{
				Description:    "Trasporto",
				Weight:         decimal.NewFromInt(1),
				UnitGrossPrice: decimal.RequireFromString("6.10"),
				VATBracket:     article.VATStandard22,
			}},
			catalog,
		)

		require.NoError(t, err)
		require.Len(t, lines, 3)
		for i, line := range lines {
			assert.Equal(t, i+1, line.Number())
		}
	})

	t.Run("unknown_article_fails_before_any_line_is_kept", func(t *testing.T) {
		tk := mustTicket(t, 7, 1042, mustTicketLine(t, 999999, "1"))

		_, err := builder.BuildLines(
			[]services.TicketSelection{{Ticket: tk, DiscountPercent: decimal.Zero}},
			nil, catalog,
		)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("rejects_discount_out_of_range", func(t *testing.T) {
		tk := mustTicket(t, 7, 1042, mustTicketLine(t, 31, "1"))

		_, err := builder.BuildLines(
			[]services.TicketSelection{{Ticket: tk, DiscountPercent: decimal.NewFromInt(101)}},
			nil, catalog,
		)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("empty_input_yields_zero_lines_for_the_aggregate_guard", func(t *testing.T) {
		lines, err := builder.BuildLines(nil, nil, catalog)

		require.NoError(t, err)
		assert.Empty(t, lines)

		_, err = document.NewDocument(12, 4, time.Now(),
			document.ClientSnapshot{Name: "Ristorante Da Mario"},
			document.CompanySnapshot{Name: "Salumificio Centrale SRL"},
			"", 1, lines)
		require.ErrorIs(t, err, document.ErrNoLines)
	})
}

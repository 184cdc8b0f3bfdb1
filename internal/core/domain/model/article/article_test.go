package article_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/article"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVATBracket_Validate(t *testing.T) {
	t.Run("valid_brackets", func(t *testing.T) {
		for _, b := range []article.VATBracket{article.VATReduced4, article.VATReduced10, article.VATStandard22} {
			require.NoError(t, b.Validate())
		}
	})

	t.Run("invalid_brackets", func(t *testing.T) {
		for _, b := range []article.VATBracket{0, 4, -1, 99} {
			require.Error(t, b.Validate())
		}
	})
}

func TestVATBracket_Rate(t *testing.T) {
	assert.True(t, decimal.New(4, -2).Equal(article.VATReduced4.Rate()))
	assert.True(t, decimal.New(10, -2).Equal(article.VATReduced10.Rate()))
	assert.True(t, decimal.New(22, -2).Equal(article.VATStandard22.Rate()))
	assert.True(t, decimal.Zero.Equal(article.VATBracket(7).Rate()))
}

func TestVATBracket_Percentage(t *testing.T) {
	assert.True(t, decimal.NewFromInt(22).Equal(article.VATStandard22.Percentage()))
}

func TestNewArticle(t *testing.T) {
	t.Run("valid_article", func(t *testing.T) {
		a, err := article.NewArticle(31, "Prosciutto crudo", article.VATReduced10, decimal.NewFromFloat(25.90))

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, int64(31), a.ID())
		assert.Equal(t, "Prosciutto crudo", a.Description())
		assert.Equal(t, article.VATReduced10, a.VATBracket())
	})

	t.Run("invalid_id", func(t *testing.T) {
		_, err := article.NewArticle(0, "X", article.VATReduced4, decimal.Zero)
		require.Error(t, err)
	})

	t.Run("missing_description", func(t *testing.T) {
		_, err := article.NewArticle(1, "", article.VATReduced4, decimal.Zero)
		require.ErrorIs(t, err, article.ErrDescriptionIsRequired)
	})

	t.Run("invalid_bracket", func(t *testing.T) {
		_, err := article.NewArticle(1, "X", 0, decimal.Zero)
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var a article.Article
		require.ErrorIs(t, a.Validate(), article.ErrArticleIsNotConstructed)
	})
}

func TestArticle_NetPrice(t *testing.T) {
	// gross 12.20 at 22% -> net 10.00
	a, err := article.NewArticle(5, "Vino rosso", article.VATStandard22, decimal.NewFromFloat(12.20))
	require.NoError(t, err)

	net := a.NetPrice().Round(2)
	assert.True(t, decimal.NewFromInt(10).Equal(net), "expected 10.00, got %s", net)
}

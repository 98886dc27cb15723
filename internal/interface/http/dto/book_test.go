package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhangwei/bookshop/internal/domain/book"
)

func TestNewBookListItem(t *testing.T) {
	t.Run("有折扣", func(t *testing.T) {
		item := NewBookListItem(&book.Listing{
			Book:       book.Book{ID: 1, Title: "三体", Price: 5900},
			FinalPrice: 4900,
		})

		assert.True(t, item.OnSale)
		require.NotNil(t, item.DiscountPrice)
		assert.Equal(t, int64(4900), *item.DiscountPrice)
		assert.Equal(t, "49.00", item.FinalPriceYuan)
	})

	t.Run("无折扣时discount_price为null", func(t *testing.T) {
		item := NewBookListItem(&book.Listing{
			Book:       book.Book{ID: 1, Title: "三体", Price: 5900},
			FinalPrice: 5900,
		})

		assert.False(t, item.OnSale)
		assert.Nil(t, item.DiscountPrice)
		assert.Equal(t, int64(5900), item.FinalPrice)
	})
}

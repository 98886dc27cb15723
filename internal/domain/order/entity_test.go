package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("正常创建", func(t *testing.T) {
		o, err := NewOrder(1, []OrderItem{
			{BookID: 1, Quantity: 2, Price: 4900},
			{BookID: 2, Quantity: 1, Price: 5900},
		})
		require.NoError(t, err)

		assert.Equal(t, uint(1), o.UserID)
		assert.Equal(t, StatusPending, o.Status)
		assert.Equal(t, int64(2*4900+5900), o.Amount)
		assert.Len(t, o.Items, 2)
	})

	t.Run("明细为空", func(t *testing.T) {
		_, err := NewOrder(1, nil)
		assert.ErrorIs(t, err, ErrEmptyOrder)
	})

	t.Run("数量超出上限", func(t *testing.T) {
		_, err := NewOrder(1, []OrderItem{{BookID: 1, Quantity: 9, Price: 4900}})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("数量为零", func(t *testing.T) {
		_, err := NewOrder(1, []OrderItem{{BookID: 1, Quantity: 0, Price: 4900}})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "pending", StatusPending.String())
	assert.Equal(t, "processing", StatusProcessing.String())
	assert.Equal(t, "shipped", StatusShipped.String())
	assert.Equal(t, "delivered", StatusDelivered.String())
	assert.Equal(t, "cancelled", StatusCancelled.String())
	assert.Equal(t, "unknown", Status(0).String())
}

func TestParseStatus(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled} {
		parsed, ok := ParseStatus(s.String())
		assert.True(t, ok)
		assert.Equal(t, s, parsed)
	}

	_, ok := ParseStatus("refunded")
	assert.False(t, ok)
}

func TestOrder_TransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{"待处理→处理中", StatusPending, StatusProcessing, true},
		{"待处理→已发货", StatusPending, StatusShipped, true},
		{"待处理→已取消", StatusPending, StatusCancelled, true},
		{"待处理→已送达", StatusPending, StatusDelivered, false},
		{"处理中→已发货", StatusProcessing, StatusShipped, true},
		{"处理中→已取消", StatusProcessing, StatusCancelled, true},
		{"处理中→待处理", StatusProcessing, StatusPending, false},
		{"已发货→已送达", StatusShipped, StatusDelivered, true},
		{"已发货→已取消", StatusShipped, StatusCancelled, false},
		{"已送达是终态", StatusDelivered, StatusCancelled, false},
		{"已取消是终态", StatusCancelled, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Order{Status: tt.from}
			err := o.TransitionTo(tt.to)
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.to, o.Status)
			} else {
				assert.ErrorIs(t, err, ErrInvalidStatusTransition)
				assert.Equal(t, tt.from, o.Status, "非法流转不应改变状态")
			}
		})
	}
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("待处理可取消", func(t *testing.T) {
		o := &Order{Status: StatusPending}
		require.NoError(t, o.Cancel())
		assert.Equal(t, StatusCancelled, o.Status)
	})

	t.Run("处理中可取消", func(t *testing.T) {
		o := &Order{Status: StatusProcessing}
		require.NoError(t, o.Cancel())
		assert.Equal(t, StatusCancelled, o.Status)
	})

	t.Run("已发货不可取消", func(t *testing.T) {
		o := &Order{Status: StatusShipped}
		assert.ErrorIs(t, o.Cancel(), ErrCannotCancel)
	})

	t.Run("已送达不可取消", func(t *testing.T) {
		o := &Order{Status: StatusDelivered}
		assert.ErrorIs(t, o.Cancel(), ErrCannotCancel)
	})

	t.Run("重复取消幂等", func(t *testing.T) {
		o := &Order{Status: StatusCancelled}
		assert.NoError(t, o.Cancel())
		assert.Equal(t, StatusCancelled, o.Status)
	})
}

func TestOrder_IsOwnedBy(t *testing.T) {
	o := &Order{UserID: 7}
	assert.True(t, o.IsOwnedBy(7))
	assert.False(t, o.IsOwnedBy(8))
}

package discount

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRange(t *testing.T) {
	t.Run("合法折扣", func(t *testing.T) {
		d := NewDiscount(1, 4900, date("2024-06-01"), date("2024-06-18"))
		assert.NoError(t, ValidateRange(d))
	})

	t.Run("负价格", func(t *testing.T) {
		d := NewDiscount(1, -1, nil, nil)
		assert.ErrorIs(t, ValidateRange(d), ErrInvalidPrice)
	})

	t.Run("开始晚于结束", func(t *testing.T) {
		d := NewDiscount(1, 4900, date("2024-06-18"), date("2024-06-01"))
		assert.ErrorIs(t, ValidateRange(d), ErrInvalidDateRange)
	})
}

func TestCheckOverlap(t *testing.T) {
	existing := []*Discount{
		{ID: 1, BookID: 1, Range: DateRange{Start: date("2024-06-01"), End: date("2024-06-10")}},
		{ID: 2, BookID: 1, Range: DateRange{Start: date("2024-07-01"), End: date("2024-07-10")}},
	}

	t.Run("不与已有折扣重叠", func(t *testing.T) {
		candidate := NewDiscount(1, 4900, date("2024-06-15"), date("2024-06-20"))
		assert.NoError(t, CheckOverlap(candidate, existing, 0))
	})

	t.Run("与已有折扣重叠", func(t *testing.T) {
		candidate := NewDiscount(1, 4900, date("2024-06-05"), date("2024-06-20"))
		assert.ErrorIs(t, CheckOverlap(candidate, existing, 0), ErrDiscountOverlap)
	})

	t.Run("无界候选与任何折扣都重叠", func(t *testing.T) {
		candidate := NewDiscount(1, 4900, nil, nil)
		assert.ErrorIs(t, CheckOverlap(candidate, existing, 0), ErrDiscountOverlap)
	})

	t.Run("更新时排除自身", func(t *testing.T) {
		candidate := &Discount{
			ID:     1,
			BookID: 1,
			Range:  DateRange{Start: date("2024-06-01"), End: date("2024-06-12")},
		}
		assert.NoError(t, CheckOverlap(candidate, existing, candidate.ID))
	})

	t.Run("更新后撞上其他折扣", func(t *testing.T) {
		candidate := &Discount{
			ID:     1,
			BookID: 1,
			Range:  DateRange{Start: date("2024-06-01"), End: date("2024-07-05")},
		}
		assert.ErrorIs(t, CheckOverlap(candidate, existing, candidate.ID), ErrDiscountOverlap)
	})

	t.Run("没有已有折扣", func(t *testing.T) {
		candidate := NewDiscount(1, 4900, nil, nil)
		assert.NoError(t, CheckOverlap(candidate, nil, 0))
	})
}

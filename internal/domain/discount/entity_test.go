package discount

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDiscount_IsActiveOn(t *testing.T) {
	today := Today()
	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)

	t.Run("结束日当天全天生效", func(t *testing.T) {
		d := NewDiscount(1, 4900, nil, &today)
		assert.True(t, d.IsActiveOn(time.Now()), "结束日等于今天必须仍生效")
	})

	t.Run("昨天结束的已失效", func(t *testing.T) {
		d := NewDiscount(1, 4900, nil, &yesterday)
		assert.False(t, d.IsActiveOn(time.Now()))
	})

	t.Run("明天开始的未生效", func(t *testing.T) {
		d := NewDiscount(1, 4900, &tomorrow, nil)
		assert.False(t, d.IsActiveOn(time.Now()))
	})

	t.Run("开始日当天生效", func(t *testing.T) {
		d := NewDiscount(1, 4900, &today, nil)
		assert.True(t, d.IsActiveOn(time.Now()))
	})

	t.Run("无界折扣始终生效", func(t *testing.T) {
		d := NewDiscount(1, 4900, nil, nil)
		assert.True(t, d.IsActiveOn(time.Now()))
	})
}

func TestTruncateToDay(t *testing.T) {
	loc := time.FixedZone("CST", 8*3600)
	ts := time.Date(2024, 6, 18, 23, 59, 59, 1e8, loc)

	got := TruncateToDay(ts)
	assert.Equal(t, time.Date(2024, 6, 18, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location(), "截断保留原时区")
}

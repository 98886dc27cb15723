package discount

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// date 构造测试日期
func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestDateRange_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		r     DateRange
		valid bool
	}{
		{"全无界", DateRange{}, true},
		{"只有开始", DateRange{Start: date("2024-06-01")}, true},
		{"只有结束", DateRange{End: date("2024-06-18")}, true},
		{"正常区间", DateRange{Start: date("2024-06-01"), End: date("2024-06-18")}, true},
		{"单日区间", DateRange{Start: date("2024-06-01"), End: date("2024-06-01")}, true},
		{"开始晚于结束", DateRange{Start: date("2024-06-18"), End: date("2024-06-01")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.r.IsValid())
		})
	}
}

func TestDateRange_Contains(t *testing.T) {
	r := DateRange{Start: date("2024-06-01"), End: date("2024-06-18")}

	assert.True(t, r.Contains(*date("2024-06-01")), "闭区间包含起点")
	assert.True(t, r.Contains(*date("2024-06-18")), "闭区间包含终点")
	assert.True(t, r.Contains(*date("2024-06-10")))
	assert.False(t, r.Contains(*date("2024-05-31")))
	assert.False(t, r.Contains(*date("2024-06-19")))

	// 边界按天比较:终点当天带时分秒的时刻仍在区间内
	assert.True(t, r.Contains(date("2024-06-18").Add(23*time.Hour+59*time.Minute)))
	assert.False(t, r.Contains(date("2024-06-19").Add(1*time.Second)))

	unbounded := DateRange{}
	assert.True(t, unbounded.Contains(*date("1970-01-01")), "全无界区间包含任意日期")

	openEnd := DateRange{Start: date("2024-06-01")}
	assert.True(t, openEnd.Contains(*date("2030-01-01")))
	assert.False(t, openEnd.Contains(*date("2024-05-31")))
}

func TestDateRange_Overlaps(t *testing.T) {
	tests := []struct {
		name    string
		a, b    DateRange
		overlap bool
	}{
		{
			"相离区间",
			DateRange{Start: date("2024-06-01"), End: date("2024-06-10")},
			DateRange{Start: date("2024-06-11"), End: date("2024-06-20")},
			false,
		},
		{
			"端点相接视为重叠",
			DateRange{Start: date("2024-06-01"), End: date("2024-06-10")},
			DateRange{Start: date("2024-06-10"), End: date("2024-06-20")},
			true,
		},
		{
			"部分重叠",
			DateRange{Start: date("2024-06-01"), End: date("2024-06-15")},
			DateRange{Start: date("2024-06-10"), End: date("2024-06-20")},
			true,
		},
		{
			"完全包含",
			DateRange{Start: date("2024-06-01"), End: date("2024-06-30")},
			DateRange{Start: date("2024-06-10"), End: date("2024-06-15")},
			true,
		},
		{
			"两个全无界区间必然重叠",
			DateRange{},
			DateRange{},
			true,
		},
		{
			"无界起点与有界区间",
			DateRange{End: date("2024-06-10")},
			DateRange{Start: date("2024-06-05"), End: date("2024-06-20")},
			true,
		},
		{
			"无界起点在对方区间之前结束",
			DateRange{End: date("2024-06-01")},
			DateRange{Start: date("2024-06-05"), End: date("2024-06-20")},
			false,
		},
		{
			"无界终点与有界区间",
			DateRange{Start: date("2024-06-15")},
			DateRange{Start: date("2024-06-01"), End: date("2024-06-10")},
			false,
		},
		{
			"一侧全无界与任意区间",
			DateRange{},
			DateRange{Start: date("2024-06-01"), End: date("2024-06-10")},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlap, tt.a.Overlaps(tt.b))
			// 重叠关系对称
			assert.Equal(t, tt.overlap, tt.b.Overlaps(tt.a))
		})
	}
}

package review

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReview(t *testing.T) {
	t.Run("正常创建", func(t *testing.T) {
		r, err := NewReview(1, 2, 5, "好书", "一口气读完")
		require.NoError(t, err)

		assert.Equal(t, uint(1), r.BookID)
		assert.Equal(t, uint(2), r.UserID)
		assert.Equal(t, 5, r.Rating)
		assert.False(t, r.ReviewDate.IsZero())
	})

	t.Run("评分越界", func(t *testing.T) {
		_, err := NewReview(1, 2, 0, "好书", "")
		assert.ErrorIs(t, err, ErrInvalidRating)

		_, err = NewReview(1, 2, 6, "好书", "")
		assert.ErrorIs(t, err, ErrInvalidRating)
	})

	t.Run("标题为空", func(t *testing.T) {
		_, err := NewReview(1, 2, 5, "", "")
		assert.ErrorIs(t, err, ErrInvalidTitle)
	})

	t.Run("标题超长", func(t *testing.T) {
		_, err := NewReview(1, 2, 5, strings.Repeat("x", 121), "")
		assert.ErrorIs(t, err, ErrInvalidTitle)
	})
}

func TestReview_SetContent(t *testing.T) {
	r, err := NewReview(1, 2, 3, "一般", "")
	require.NoError(t, err)

	// 让ReviewDate的刷新可观测
	past := time.Now().Add(-time.Hour)
	r.ReviewDate = past

	t.Run("修改内容并刷新评论日期", func(t *testing.T) {
		require.NoError(t, r.SetContent(5, "二刷真香", "值得重读"))

		assert.Equal(t, 5, r.Rating)
		assert.Equal(t, "二刷真香", r.Title)
		assert.True(t, r.ReviewDate.After(past), "修改后应刷新ReviewDate")
	})

	t.Run("非法内容不改动实体", func(t *testing.T) {
		before := *r
		assert.ErrorIs(t, r.SetContent(0, "标题", ""), ErrInvalidRating)
		assert.Equal(t, before.Rating, r.Rating)
		assert.Equal(t, before.Title, r.Title)
	})
}

func TestReview_IsOwnedBy(t *testing.T) {
	r := &Review{UserID: 9}
	assert.True(t, r.IsOwnedBy(9))
	assert.False(t, r.IsOwnedBy(10))
}

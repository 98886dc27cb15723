package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhangwei/bookshop/internal/domain/book"
	"github.com/zhangwei/bookshop/internal/domain/review"
)

// fakeBookRepo 只提供存在性判断
type fakeBookRepo struct {
	books map[uint]*book.Book
}

func (f *fakeBookRepo) Create(context.Context, *book.Book) error { return nil }
func (f *fakeBookRepo) Update(context.Context, *book.Book) error { return nil }
func (f *fakeBookRepo) Delete(context.Context, uint) error       { return nil }

func (f *fakeBookRepo) FindByID(_ context.Context, id uint) (*book.Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return b, nil
}

func (f *fakeBookRepo) FindByIDForUpdate(ctx context.Context, id uint) (*book.Book, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeBookRepo) List(_ context.Context, _ book.ListParams) ([]*book.Listing, int64, error) {
	return nil, 0, nil
}

func (f *fakeBookRepo) ListRecommended(_ context.Context, _ int) ([]*book.Listing, error) {
	return nil, nil
}

func (f *fakeBookRepo) ListPopular(_ context.Context, _ int) ([]*book.Listing, error) {
	return nil, nil
}

func (f *fakeBookRepo) ListTopDiscounted(_ context.Context, _ int) ([]*book.Listing, error) {
	return nil, nil
}

// fakeReviewRepo 内存书评仓储
type fakeReviewRepo struct {
	reviews map[uint]*review.Review
	nextID  uint
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[uint]*review.Review), nextID: 1}
}

func (f *fakeReviewRepo) Create(_ context.Context, r *review.Review) error {
	r.ID = f.nextID
	f.nextID++
	f.reviews[r.ID] = r
	return nil
}

func (f *fakeReviewRepo) FindByID(_ context.Context, id uint) (*review.Review, error) {
	r, ok := f.reviews[id]
	if !ok {
		return nil, review.ErrReviewNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeReviewRepo) List(_ context.Context, params review.ListParams) ([]*review.Review, int64, error) {
	var out []*review.Review
	for _, r := range f.reviews {
		if params.BookID != 0 && r.BookID != params.BookID {
			continue
		}
		if params.UserID != 0 && r.UserID != params.UserID {
			continue
		}
		if params.RatingStar != 0 && r.Rating != params.RatingStar {
			continue
		}
		out = append(out, r)
	}
	return out, int64(len(out)), nil
}

func (f *fakeReviewRepo) Stats(_ context.Context, bookID uint) (*review.RatingStats, error) {
	stats := &review.RatingStats{BookID: bookID}
	return stats, nil
}

func (f *fakeReviewRepo) Update(_ context.Context, r *review.Review) error {
	f.reviews[r.ID] = r
	return nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, id uint) error {
	delete(f.reviews, id)
	return nil
}

func newTestUseCase() (*UseCase, *fakeReviewRepo) {
	reviewRepo := newFakeReviewRepo()
	bookRepo := &fakeBookRepo{books: map[uint]*book.Book{
		1: {ID: 1, Title: "Go语言实战", Price: 5900},
	}}
	return NewUseCase(reviewRepo, bookRepo), reviewRepo
}

func create(t *testing.T, uc *UseCase, userID uint) *review.Review {
	t.Helper()
	r, err := uc.Create(context.Background(), CreateInput{
		BookID: 1,
		UserID: userID,
		Rating: 5,
		Title:  "值得一读",
		Body:   "示例讲得很透彻",
	})
	require.NoError(t, err)
	return r
}

func TestUseCase_Create(t *testing.T) {
	t.Run("发表成功", func(t *testing.T) {
		uc, repo := newTestUseCase()
		r := create(t, uc, 7)
		assert.NotZero(t, r.ID)
		assert.Len(t, repo.reviews, 1)
	})

	t.Run("图书不存在", func(t *testing.T) {
		uc, _ := newTestUseCase()
		_, err := uc.Create(context.Background(), CreateInput{
			BookID: 99, UserID: 7, Rating: 5, Title: "值得一读",
		})
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})

	t.Run("评分越界", func(t *testing.T) {
		uc, _ := newTestUseCase()
		_, err := uc.Create(context.Background(), CreateInput{
			BookID: 1, UserID: 7, Rating: 6, Title: "值得一读",
		})
		assert.ErrorIs(t, err, review.ErrInvalidRating)
	})
}

func TestUseCase_Update(t *testing.T) {
	t.Run("作者本人可修改", func(t *testing.T) {
		uc, _ := newTestUseCase()
		r := create(t, uc, 7)

		updated, err := uc.Update(context.Background(), r.ID, 7, UpdateInput{
			Rating: 3, Title: "一般般", Body: "后半部分注水",
		})
		require.NoError(t, err)
		assert.Equal(t, 3, updated.Rating)
		assert.Equal(t, "一般般", updated.Title)
	})

	t.Run("他人不可修改", func(t *testing.T) {
		uc, _ := newTestUseCase()
		r := create(t, uc, 7)

		_, err := uc.Update(context.Background(), r.ID, 8, UpdateInput{
			Rating: 1, Title: "乱写",
		})
		assert.ErrorIs(t, err, review.ErrNotOwner)
	})

	t.Run("书评不存在", func(t *testing.T) {
		uc, _ := newTestUseCase()
		_, err := uc.Update(context.Background(), 99, 7, UpdateInput{Rating: 3, Title: "一般般"})
		assert.ErrorIs(t, err, review.ErrReviewNotFound)
	})
}

func TestUseCase_Delete(t *testing.T) {
	t.Run("作者本人可删除", func(t *testing.T) {
		uc, repo := newTestUseCase()
		r := create(t, uc, 7)

		require.NoError(t, uc.Delete(context.Background(), r.ID, 7, false))
		assert.Empty(t, repo.reviews)
	})

	t.Run("管理员可删除任意书评", func(t *testing.T) {
		uc, repo := newTestUseCase()
		r := create(t, uc, 7)

		require.NoError(t, uc.Delete(context.Background(), r.ID, 99, true))
		assert.Empty(t, repo.reviews)
	})

	t.Run("他人不可删除", func(t *testing.T) {
		uc, repo := newTestUseCase()
		r := create(t, uc, 7)

		err := uc.Delete(context.Background(), r.ID, 8, false)
		assert.ErrorIs(t, err, review.ErrNotOwner)
		assert.Len(t, repo.reviews, 1)
	})
}

func TestUseCase_Stats(t *testing.T) {
	uc, _ := newTestUseCase()

	stats, err := uc.Stats(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), stats.BookID)

	_, err = uc.Stats(context.Background(), 99)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

package user

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/zhangwei/bookshop/pkg/errors"
)

// fakeRepo 内存用户仓储
type fakeRepo struct {
	byEmail map[string]*User
	nextID  uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byEmail: make(map[string]*User), nextID: 1}
}

func (f *fakeRepo) Create(_ context.Context, u *User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return ErrEmailDuplicate
	}
	u.ID = f.nextID
	f.nextID++
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeRepo) FindByID(_ context.Context, id uint) (*User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (f *fakeRepo) FindByEmail(_ context.Context, email string) (*User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (f *fakeRepo) Update(_ context.Context, u *User) error {
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id uint) error {
	for email, u := range f.byEmail {
		if u.ID == id {
			delete(f.byEmail, email)
			return nil
		}
	}
	return ErrUserNotFound
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("正常注册", func(t *testing.T) {
		svc := NewService(newFakeRepo())

		u, err := svc.Register(ctx, "reader@example.com", "password123", "伟", "张")
		require.NoError(t, err)

		assert.NotZero(t, u.ID)
		assert.Equal(t, "reader@example.com", u.Email)
		assert.NotEqual(t, "password123", u.Password, "密码应存储哈希值")
		assert.NoError(t, svc.ValidatePassword(u.Password, "password123"))
	})

	t.Run("邮箱格式非法", func(t *testing.T) {
		svc := NewService(newFakeRepo())

		_, err := svc.Register(ctx, "not-an-email", "password123", "伟", "张")
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeInvalidParams, apperrors.GetAppError(err).Code)
	})

	t.Run("邮箱超长", func(t *testing.T) {
		svc := NewService(newFakeRepo())

		email := strings.Repeat("a", 65) + "@ex.com"
		_, err := svc.Register(ctx, email, "password123", "伟", "张")
		assert.Error(t, err)
	})

	t.Run("密码过短", func(t *testing.T) {
		svc := NewService(newFakeRepo())

		_, err := svc.Register(ctx, "reader@example.com", "short", "伟", "张")
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeInvalidParams, apperrors.GetAppError(err).Code)
	})

	t.Run("邮箱重复", func(t *testing.T) {
		svc := NewService(newFakeRepo())

		_, err := svc.Register(ctx, "reader@example.com", "password123", "伟", "张")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "reader@example.com", "password456", "强", "李")
		assert.ErrorIs(t, err, ErrEmailDuplicate)
	})
}

func TestService_Authenticate(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepo())

	_, err := svc.Register(ctx, "reader@example.com", "password123", "伟", "张")
	require.NoError(t, err)

	t.Run("正确凭证", func(t *testing.T) {
		u, err := svc.Authenticate(ctx, "reader@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "reader@example.com", u.Email)
	})

	t.Run("密码错误", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "reader@example.com", "wrongpassword")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("用户不存在返回同一错误", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "ghost@example.com", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials, "不区分用户不存在与密码错误")
	})
}

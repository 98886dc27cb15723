package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhangwei/bookshop/internal/domain/token"
	"github.com/zhangwei/bookshop/internal/domain/user"
	apperrors "github.com/zhangwei/bookshop/pkg/errors"
	"github.com/zhangwei/bookshop/pkg/jwt"
)

// fakeUserRepo 内存用户仓储
type fakeUserRepo struct {
	byEmail map[string]*user.User
	nextID  uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*user.User), nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return apperrors.ErrEmailDuplicate
	}
	u.ID = f.nextID
	f.nextID++
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uint) (*user.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *user.User) error {
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uint) error {
	for email, u := range f.byEmail {
		if u.ID == id {
			delete(f.byEmail, email)
			return nil
		}
	}
	return user.ErrUserNotFound
}

// fakeTokenRepo 内存黑名单仓储
type fakeTokenRepo struct {
	tokens map[string]*token.BlacklistedToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]*token.BlacklistedToken)}
}

func (f *fakeTokenRepo) Add(_ context.Context, t *token.BlacklistedToken) error {
	f.tokens[t.JTI] = t
	return nil
}

func (f *fakeTokenRepo) Exists(_ context.Context, jti string) (bool, error) {
	_, ok := f.tokens[jti]
	return ok, nil
}

func (f *fakeTokenRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for jti, t := range f.tokens {
		if t.Expiry.Before(now) {
			delete(f.tokens, jti)
			n++
		}
	}
	return n, nil
}

func newTestUseCase() (*UseCase, *fakeUserRepo, *fakeTokenRepo) {
	userRepo := newFakeUserRepo()
	tokenRepo := newFakeTokenRepo()
	jwtManager := jwt.NewManager("test-secret", 30*time.Minute, time.Hour)
	uc := NewUseCase(
		user.NewService(userRepo),
		userRepo,
		token.NewService(tokenRepo, nil),
		jwtManager,
	)
	return uc, userRepo, tokenRepo
}

func signup(t *testing.T, uc *UseCase) *user.User {
	t.Helper()
	u, err := uc.Signup(context.Background(), "reader@example.com", "password123", "三", "张")
	require.NoError(t, err)
	return u
}

func TestUseCase_Login(t *testing.T) {
	t.Run("注册后登录成功", func(t *testing.T) {
		uc, _, _ := newTestUseCase()
		signup(t, uc)

		pair, err := uc.Login(context.Background(), "reader@example.com", "password123")
		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
		assert.Equal(t, "bearer", pair.TokenType)
	})

	t.Run("密码错误", func(t *testing.T) {
		uc, _, _ := newTestUseCase()
		signup(t, uc)

		_, err := uc.Login(context.Background(), "reader@example.com", "wrong-password")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("用户不存在", func(t *testing.T) {
		uc, _, _ := newTestUseCase()

		_, err := uc.Login(context.Background(), "ghost@example.com", "password123")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestUseCase_Refresh(t *testing.T) {
	t.Run("换发新的Access Token", func(t *testing.T) {
		uc, _, _ := newTestUseCase()
		signup(t, uc)

		pair, err := uc.Login(context.Background(), "reader@example.com", "password123")
		require.NoError(t, err)

		refreshed, err := uc.Refresh(context.Background(), pair.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, refreshed.AccessToken)
		// Refresh Token不滚动续期,原样返回
		assert.Equal(t, pair.RefreshToken, refreshed.RefreshToken)
	})

	t.Run("Access Token不能用于刷新", func(t *testing.T) {
		uc, _, _ := newTestUseCase()
		signup(t, uc)

		pair, err := uc.Login(context.Background(), "reader@example.com", "password123")
		require.NoError(t, err)

		_, err = uc.Refresh(context.Background(), pair.AccessToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("登出后Refresh Token失效", func(t *testing.T) {
		uc, _, _ := newTestUseCase()
		signup(t, uc)

		pair, err := uc.Login(context.Background(), "reader@example.com", "password123")
		require.NoError(t, err)
		require.NoError(t, uc.Logout(context.Background(), pair.AccessToken, pair.RefreshToken))

		_, err = uc.Refresh(context.Background(), pair.RefreshToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("用户已注销", func(t *testing.T) {
		uc, userRepo, _ := newTestUseCase()
		u := signup(t, uc)

		pair, err := uc.Login(context.Background(), "reader@example.com", "password123")
		require.NoError(t, err)
		require.NoError(t, userRepo.Delete(context.Background(), u.ID))

		_, err = uc.Refresh(context.Background(), pair.RefreshToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestUseCase_Logout(t *testing.T) {
	t.Run("两个Token都被吊销", func(t *testing.T) {
		uc, _, tokenRepo := newTestUseCase()
		signup(t, uc)

		pair, err := uc.Login(context.Background(), "reader@example.com", "password123")
		require.NoError(t, err)

		require.NoError(t, uc.Logout(context.Background(), pair.AccessToken, pair.RefreshToken))
		assert.Len(t, tokenRepo.tokens, 2)
	})

	t.Run("无效的Refresh Token静默忽略", func(t *testing.T) {
		uc, _, tokenRepo := newTestUseCase()
		signup(t, uc)

		pair, err := uc.Login(context.Background(), "reader@example.com", "password123")
		require.NoError(t, err)

		require.NoError(t, uc.Logout(context.Background(), pair.AccessToken, "not-a-token"))
		assert.Len(t, tokenRepo.tokens, 1)
	})

	t.Run("无效的Access Token登出失败", func(t *testing.T) {
		uc, _, _ := newTestUseCase()

		err := uc.Logout(context.Background(), "not-a-token", "")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestUseCase_CurrentUser(t *testing.T) {
	uc, _, _ := newTestUseCase()
	signup(t, uc)

	u, err := uc.CurrentUser(context.Background(), "reader@example.com")
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", u.Email)

	_, err = uc.CurrentUser(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

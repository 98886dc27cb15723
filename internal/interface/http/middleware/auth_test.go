package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhangwei/bookshop/internal/domain/user"
	"github.com/zhangwei/bookshop/pkg/jwt"
	"github.com/zhangwei/bookshop/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeTokenService 受控的黑名单服务
type fakeTokenService struct {
	blacklisted map[string]bool
}

func (f *fakeTokenService) Blacklist(_ context.Context, jti string, _ time.Time) error {
	f.blacklisted[jti] = true
	return nil
}

func (f *fakeTokenService) IsBlacklisted(_ context.Context, jti string) (bool, error) {
	return f.blacklisted[jti], nil
}

func (f *fakeTokenService) PurgeExpired(context.Context) (int64, error) { return 0, nil }

// fakeUserRepo 内存用户仓储
type fakeUserRepo struct {
	users map[string]*user.User
}

func (f *fakeUserRepo) Create(context.Context, *user.User) error { return nil }
func (f *fakeUserRepo) Update(context.Context, *user.User) error { return nil }
func (f *fakeUserRepo) Delete(context.Context, uint) error       { return nil }

func (f *fakeUserRepo) FindByID(_ context.Context, id uint) (*user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

type testEnv struct {
	router       *gin.Engine
	jwtManager   *jwt.Manager
	tokenService *fakeTokenService
}

func newTestEnv(t *testing.T, admin bool) *testEnv {
	t.Helper()

	jwtManager := jwt.NewManager("test-secret", 30*time.Minute, time.Hour)
	tokenService := &fakeTokenService{blacklisted: make(map[string]bool)}
	userRepo := &fakeUserRepo{users: map[string]*user.User{
		"reader@example.com": {ID: 7, Email: "reader@example.com", Admin: admin},
	}}

	m := NewAuthMiddleware(jwtManager, tokenService, userRepo)

	r := gin.New()
	r.GET("/me", m.RequireAuth(), func(c *gin.Context) {
		response.Success(c, gin.H{
			"user_id":  GetUserID(c),
			"email":    GetEmail(c),
			"is_admin": IsAdmin(c),
		})
	})
	r.GET("/admin", m.RequireAuth(), m.RequireAdmin(), func(c *gin.Context) {
		response.Success(c, nil)
	})

	return &testEnv{router: r, jwtManager: jwtManager, tokenService: tokenService}
}

func (e *testEnv) request(t *testing.T, path, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	t.Run("合法Token放行", func(t *testing.T) {
		env := newTestEnv(t, false)
		token, err := env.jwtManager.GenerateAccessToken("reader@example.com")
		require.NoError(t, err)

		w := env.request(t, "/me", "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":7`)
	})

	t.Run("缺少Authorization头", func(t *testing.T) {
		env := newTestEnv(t, false)

		w := env.request(t, "/me", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("格式错误的头", func(t *testing.T) {
		env := newTestEnv(t, false)

		w := env.request(t, "/me", "Basic abc123")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("篡改的Token", func(t *testing.T) {
		env := newTestEnv(t, false)
		token, err := env.jwtManager.GenerateAccessToken("reader@example.com")
		require.NoError(t, err)

		w := env.request(t, "/me", "Bearer "+token+"x")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("已拉黑的Token被拒绝", func(t *testing.T) {
		env := newTestEnv(t, false)
		token, err := env.jwtManager.GenerateAccessToken("reader@example.com")
		require.NoError(t, err)

		claims, err := env.jwtManager.ParseToken(token)
		require.NoError(t, err)
		env.tokenService.blacklisted[claims.ID] = true

		w := env.request(t, "/me", "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Refresh Token不能访问接口", func(t *testing.T) {
		env := newTestEnv(t, false)
		pair, err := env.jwtManager.GenerateTokenPair("reader@example.com")
		require.NoError(t, err)

		w := env.request(t, "/me", "Bearer "+pair.RefreshToken)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("用户已不存在", func(t *testing.T) {
		env := newTestEnv(t, false)
		token, err := env.jwtManager.GenerateAccessToken("ghost@example.com")
		require.NoError(t, err)

		w := env.request(t, "/me", "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Run("管理员放行", func(t *testing.T) {
		env := newTestEnv(t, true)
		token, err := env.jwtManager.GenerateAccessToken("reader@example.com")
		require.NoError(t, err)

		w := env.request(t, "/admin", "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("普通用户拒绝", func(t *testing.T) {
		env := newTestEnv(t, false)
		token, err := env.jwtManager.GenerateAccessToken("reader@example.com")
		require.NoError(t, err)

		w := env.request(t, "/admin", "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appdiscount "github.com/zhangwei/bookshop/internal/application/discount"
	"github.com/zhangwei/bookshop/internal/domain/book"
	"github.com/zhangwei/bookshop/internal/domain/discount"
	"github.com/zhangwei/bookshop/internal/domain/user"
	"github.com/zhangwei/bookshop/internal/interface/http/handler"
	"github.com/zhangwei/bookshop/internal/interface/http/middleware"
	"github.com/zhangwei/bookshop/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubDiscountRepo 空折扣仓储,路由测试只关心鉴权分发
type stubDiscountRepo struct{}

func (stubDiscountRepo) Create(context.Context, *discount.Discount) error { return nil }

func (stubDiscountRepo) FindByID(context.Context, uint) (*discount.Discount, error) {
	return nil, discount.ErrDiscountNotFound
}

func (stubDiscountRepo) ListByBookForUpdate(context.Context, uint) ([]*discount.Discount, error) {
	return nil, nil
}

func (stubDiscountRepo) List(context.Context, discount.ListParams) ([]*discount.Discount, int64, error) {
	return nil, 0, nil
}

func (stubDiscountRepo) FindActiveByBook(context.Context, uint, time.Time) (*discount.Discount, error) {
	return nil, nil
}

func (stubDiscountRepo) Update(context.Context, *discount.Discount) error { return nil }
func (stubDiscountRepo) Delete(context.Context, uint) error               { return nil }

// stubBookRepo 空图书仓储
type stubBookRepo struct{}

func (stubBookRepo) Create(context.Context, *book.Book) error { return nil }

func (stubBookRepo) FindByID(context.Context, uint) (*book.Book, error) {
	return nil, book.ErrBookNotFound
}

func (stubBookRepo) FindByIDForUpdate(context.Context, uint) (*book.Book, error) {
	return nil, book.ErrBookNotFound
}

func (stubBookRepo) List(context.Context, book.ListParams) ([]*book.Listing, int64, error) {
	return nil, 0, nil
}

func (stubBookRepo) ListRecommended(context.Context, int) ([]*book.Listing, error) {
	return nil, nil
}

func (stubBookRepo) ListPopular(context.Context, int) ([]*book.Listing, error) { return nil, nil }

func (stubBookRepo) ListTopDiscounted(context.Context, int) ([]*book.Listing, error) {
	return nil, nil
}

func (stubBookRepo) Update(context.Context, *book.Book) error { return nil }
func (stubBookRepo) Delete(context.Context, uint) error       { return nil }

// stubTxManager 直通事务
type stubTxManager struct{}

func (stubTxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// stubTokenService 无黑名单
type stubTokenService struct{}

func (stubTokenService) Blacklist(context.Context, string, time.Time) error { return nil }
func (stubTokenService) IsBlacklisted(context.Context, string) (bool, error) {
	return false, nil
}
func (stubTokenService) PurgeExpired(context.Context) (int64, error) { return 0, nil }

// stubUserRepo 固定两个用户:管理员和普通读者
type stubUserRepo struct{}

func (stubUserRepo) Create(context.Context, *user.User) error { return nil }
func (stubUserRepo) Update(context.Context, *user.User) error { return nil }
func (stubUserRepo) Delete(context.Context, uint) error       { return nil }

func (stubUserRepo) FindByID(context.Context, uint) (*user.User, error) {
	return nil, user.ErrUserNotFound
}

func (stubUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	switch email {
	case "admin@example.com":
		return &user.User{ID: 1, Email: email, Admin: true}, nil
	case "reader@example.com":
		return &user.User{ID: 2, Email: email}, nil
	}
	return nil, user.ErrUserNotFound
}

func newTestRouter(t *testing.T) (*gin.Engine, *jwt.Manager) {
	t.Helper()

	jwtManager := jwt.NewManager("test-secret", 30*time.Minute, time.Hour)
	auth := middleware.NewAuthMiddleware(jwtManager, stubTokenService{}, stubUserRepo{})

	discountUseCase := appdiscount.NewUseCase(stubDiscountRepo{}, stubBookRepo{}, stubTxManager{})
	h := &handlers{
		discount: handler.NewDiscountHandler(discountUseCase),
	}

	r := gin.New()
	registerRoutes(r, h, auth)
	return r, jwtManager
}

func doRequest(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDiscountRoutePermissions(t *testing.T) {
	r, jwtManager := newTestRouter(t)

	adminToken, err := jwtManager.GenerateAccessToken("admin@example.com")
	require.NoError(t, err)
	readerToken, err := jwtManager.GenerateAccessToken("reader@example.com")
	require.NoError(t, err)

	t.Run("折扣列表公开可读", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/api/v1/discounts", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("折扣详情公开可读", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/api/v1/discounts/1", "")
		assert.Equal(t, http.StatusNotFound, w.Code, "未登录也能打到处理器,404而非401")
	})

	t.Run("未登录不能创建", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/api/v1/discounts", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("普通用户不能创建", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/api/v1/discounts", readerToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("未登录不能更新删除", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, doRequest(r, http.MethodPut, "/api/v1/discounts/1", "").Code)
		assert.Equal(t, http.StatusUnauthorized, doRequest(r, http.MethodDelete, "/api/v1/discounts/1", "").Code)
	})

	t.Run("管理员可删除", func(t *testing.T) {
		w := doRequest(r, http.MethodDelete, "/api/v1/discounts/1", adminToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

package token

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo 内存黑名单仓储
type fakeRepo struct {
	tokens     map[string]*BlacklistedToken
	existCalls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{tokens: make(map[string]*BlacklistedToken)}
}

func (f *fakeRepo) Add(_ context.Context, t *BlacklistedToken) error {
	f.tokens[t.JTI] = t
	return nil
}

func (f *fakeRepo) Exists(_ context.Context, jti string) (bool, error) {
	f.existCalls++
	_, ok := f.tokens[jti]
	return ok, nil
}

func (f *fakeRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for jti, t := range f.tokens {
		if t.IsExpired(now) {
			delete(f.tokens, jti)
			n++
		}
	}
	return n, nil
}

// fakeCache 内存黑名单缓存
type fakeCache struct {
	marked  map[string]bool
	failing bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{marked: make(map[string]bool)}
}

func (f *fakeCache) MarkBlacklisted(_ context.Context, jti string, _ time.Duration) error {
	if f.failing {
		return errors.New("connection refused")
	}
	f.marked[jti] = true
	return nil
}

func (f *fakeCache) IsBlacklisted(_ context.Context, jti string) (bool, bool, error) {
	if f.failing {
		return false, false, errors.New("connection refused")
	}
	if f.marked[jti] {
		return true, true, nil
	}
	return false, false, nil // 未命中,回源
}

func TestService_Blacklist(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	cache := newFakeCache()
	svc := NewService(repo, cache)

	expiry := time.Now().Add(time.Hour)
	require.NoError(t, svc.Blacklist(ctx, "jti-1", expiry))

	_, inDB := repo.tokens["jti-1"]
	assert.True(t, inDB, "数据库必须落库")
	assert.True(t, cache.marked["jti-1"], "缓存应同步写入")
}

func TestService_Blacklist_CacheFailure(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	cache := newFakeCache()
	cache.failing = true
	svc := NewService(repo, cache)

	// 缓存故障不影响吊销结果
	require.NoError(t, svc.Blacklist(ctx, "jti-1", time.Now().Add(time.Hour)))
	_, inDB := repo.tokens["jti-1"]
	assert.True(t, inDB)
}

func TestService_IsBlacklisted(t *testing.T) {
	ctx := context.Background()

	t.Run("缓存命中不查库", func(t *testing.T) {
		repo := newFakeRepo()
		cache := newFakeCache()
		svc := NewService(repo, cache)

		require.NoError(t, svc.Blacklist(ctx, "jti-1", time.Now().Add(time.Hour)))

		blacklisted, err := svc.IsBlacklisted(ctx, "jti-1")
		require.NoError(t, err)
		assert.True(t, blacklisted)
		assert.Zero(t, repo.existCalls, "缓存命中时不应回源")
	})

	t.Run("缓存未命中回源数据库", func(t *testing.T) {
		repo := newFakeRepo()
		cache := newFakeCache()
		svc := NewService(repo, cache)

		// 直接写库,模拟缓存过期后的状态
		require.NoError(t, repo.Add(ctx, NewBlacklistedToken("jti-2", time.Now().Add(time.Hour))))

		blacklisted, err := svc.IsBlacklisted(ctx, "jti-2")
		require.NoError(t, err)
		assert.True(t, blacklisted)
		assert.Equal(t, 1, repo.existCalls)
	})

	t.Run("缓存故障降级查库", func(t *testing.T) {
		repo := newFakeRepo()
		cache := newFakeCache()
		cache.failing = true
		svc := NewService(repo, cache)

		blacklisted, err := svc.IsBlacklisted(ctx, "jti-3")
		require.NoError(t, err)
		assert.False(t, blacklisted)
		assert.Equal(t, 1, repo.existCalls)
	})

	t.Run("无缓存纯数据库模式", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, nil)

		blacklisted, err := svc.IsBlacklisted(ctx, "jti-4")
		require.NoError(t, err)
		assert.False(t, blacklisted)
	})
}

func TestService_PurgeExpired(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewService(repo, nil)

	require.NoError(t, repo.Add(ctx, NewBlacklistedToken("expired", time.Now().Add(-time.Hour))))
	require.NoError(t, repo.Add(ctx, NewBlacklistedToken("valid", time.Now().Add(time.Hour))))

	purged, err := svc.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	_, stillThere := repo.tokens["valid"]
	assert.True(t, stillThere, "未过期记录不应被清理")
}

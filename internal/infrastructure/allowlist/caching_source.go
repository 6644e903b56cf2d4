package allowlist

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/na2na-p/oapi-publish/internal/domain"
	"github.com/na2na-p/oapi-publish/internal/infrastructure/redis"
	"github.com/na2na-p/oapi-publish/internal/usecase"
)

// CachingSource はPostgreSQLから取得した許可リストをRedisにキャッシュする
// ALLOWED_REPOSは実行ごとに与えられる値のため、キャッシュできるのはPostgreSQLの取得元のみ
// キャッシュの読み取り失敗や壊れたエントリはミスとして扱い、書き込み失敗は無視する
type CachingSource struct {
	source      *PostgresSource
	cacheClient usecase.AllowlistCacheClient
	cacheTTL    time.Duration
	refresh     bool
}

type CachingSourceOption func(*CachingSource)

// WithRefresh はキャッシュを読まずに削除してから取得元を参照させる
func WithRefresh(refresh bool) CachingSourceOption {
	return func(s *CachingSource) {
		s.refresh = refresh
	}
}

func NewCachingSource(
	source *PostgresSource,
	cacheClient usecase.AllowlistCacheClient,
	ttl time.Duration,
	opts ...CachingSourceOption,
) *CachingSource {
	if ttl <= 0 {
		ttl = redis.DefaultAllowlistTTL
	}
	s := &CachingSource{
		source:      source,
		cacheClient: cacheClient,
		cacheTTL:    ttl,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *CachingSource) Name() string {
	return s.source.Name()
}

func (s *CachingSource) Load(ctx context.Context) (*domain.Allowlist, error) {
	cacheKey := redis.AllowlistKey(s.source.Name())

	if s.refresh {
		if err := s.Invalidate(ctx); err != nil {
			slog.WarnContext(ctx, "failed to invalidate allowlist cache", "key", cacheKey, "error", err)
		}
	} else if allowlist, ok := s.checkCache(ctx, cacheKey); ok {
		return allowlist, nil
	}

	allowlist, err := s.source.Load(ctx)
	if err != nil {
		return nil, err
	}

	s.setCache(ctx, cacheKey, allowlist)
	return allowlist, nil
}

// Invalidate はキャッシュを削除する
func (s *CachingSource) Invalidate(ctx context.Context) error {
	return s.cacheClient.Delete(ctx, redis.AllowlistKey(s.source.Name()))
}

func (s *CachingSource) checkCache(ctx context.Context, cacheKey string) (*domain.Allowlist, bool) {
	val, err := s.cacheClient.Get(ctx, cacheKey)
	if err != nil {
		return nil, false
	}
	allowlist, err := domain.ParseAllowlist(val)
	if err != nil {
		slog.WarnContext(ctx, "ignoring corrupt allowlist cache entry", "key", cacheKey)
		return nil, false
	}
	return allowlist, true
}

func (s *CachingSource) setCache(ctx context.Context, cacheKey string, allowlist *domain.Allowlist) {
	encoded, err := json.Marshal(allowlist)
	if err != nil {
		return
	}
	_ = s.cacheClient.Set(ctx, cacheKey, string(encoded), s.cacheTTL)
}

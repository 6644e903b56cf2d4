//go:generate mockgen -source=$GOFILE -destination=mock_allowlist_source_test.go -package=usecase
package usecase

import (
	"context"
	"time"

	"github.com/na2na-p/oapi-publish/internal/domain"
)

// AllowlistSource は許可リストの取得元
type AllowlistSource interface {
	Name() string
	Load(ctx context.Context) (*domain.Allowlist, error)
}

// AllowlistCacheClient は許可リストのキャッシュに使用するクライアント
type AllowlistCacheClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

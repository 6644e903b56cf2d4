package oidc

import (
	"context"
	"errors"
	"time"
)

// CacheClient はJWKSのキャッシュに使用するクライアント
type CacheClient interface {
	GetJSON(ctx context.Context, key string, dest interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

var errNoCache = errors.New("cache disabled")

// nopCache はRedisを使用しない場合のキャッシュ。常にミスとなる
type nopCache struct{}

func (nopCache) GetJSON(context.Context, string, interface{}) error {
	return errNoCache
}

func (nopCache) SetJSON(context.Context, string, interface{}, time.Duration) error {
	return nil
}

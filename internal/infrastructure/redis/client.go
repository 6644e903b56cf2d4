package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisConfig はRedisクライアントの設定を保持します
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// RedisClientInterface はRedisクライアントの操作を抽象化するインターフェース
type RedisClientInterface interface {
	Ping(ctx context.Context) error
	Close() error
}

// ClientFactory はRedisクライアントを生成するファクトリ関数の型
type ClientFactory func(opt *redis.Options) RedisClientInterface

type redisClientAdapter struct {
	client *redis.Client
}

func (a *redisClientAdapter) Ping(ctx context.Context) error {
	return a.client.Ping(ctx).Err()
}

func (a *redisClientAdapter) Close() error {
	return a.client.Close()
}

func (a *redisClientAdapter) UnwrapClient() *redis.Client {
	return a.client
}

// DefaultClientFactory はデフォルトのクライアント生成関数
func DefaultClientFactory(opt *redis.Options) RedisClientInterface {
	return &redisClientAdapter{client: redis.NewClient(opt)}
}

// NewRedisConnectionWithFactory はファクトリを使用してRedis接続を作成し、Pingで疎通を確認する
func NewRedisConnectionWithFactory(ctx context.Context, cfg RedisConfig, factory ClientFactory) (RedisClientInterface, error) {
	if factory == nil {
		factory = DefaultClientFactory
	}
	if cfg.Host == "" {
		return nil, errors.New("redis host is required")
	}
	if cfg.PoolSize <= 0 {
		cfg.PoolSize = 2
	}

	client := factory(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	if err := client.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis接続に失敗しました: %w", err)
	}

	return client, nil
}

type clientUnwrapper interface {
	UnwrapClient() *redis.Client
}

// NewRedisConnection は新しいRedis接続を作成します
func NewRedisConnection(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	client, err := NewRedisConnectionWithFactory(ctx, cfg, nil)
	if err != nil {
		return nil, err
	}
	unwrapper, ok := client.(clientUnwrapper)
	if !ok {
		return nil, fmt.Errorf("クライアントが*redis.Clientを返すアダプタではありません")
	}
	return unwrapper.UnwrapClient(), nil
}

// RedisClient はRedisクライアントのラッパーです
type RedisClient struct {
	client *redis.Client
}

// NewRedisClient はネイティブのRedisクライアントからRedisClientを作成します
func NewRedisClient(client *redis.Client) *RedisClient {
	return &RedisClient{
		client: client,
	}
}

func (c *RedisClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Ping はRedisサーバーとの接続確認を行います
func (c *RedisClient) Ping(ctx context.Context) error {
	if c.client == nil {
		return errors.New("redis client is nil")
	}
	return c.client.Ping(ctx).Err()
}

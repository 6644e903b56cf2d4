package postgres

import (
	"context"
	"errors"
	"fmt"
)

// ErrAllowlistTableMissing はrepository_allowlistテーブルが存在しないことを示す
var ErrAllowlistTableMissing = errors.New("repository_allowlist table does not exist")

// Pinger はデータベース接続のヘルスチェックを行うインターフェース
type Pinger interface {
	PoolInterface
	Ping(ctx context.Context) error
}

// PostgresHealthChecker は疎通と許可リストテーブルの存在を確認する
type PostgresHealthChecker struct {
	pool Pinger
}

func NewPostgresHealthChecker(pool Pinger) *PostgresHealthChecker {
	return &PostgresHealthChecker{
		pool: pool,
	}
}

func (c *PostgresHealthChecker) Name() string {
	return "postgres"
}

func (c *PostgresHealthChecker) Check(ctx context.Context) error {
	if err := c.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres health check failed: %w", err)
	}

	var exists bool
	query := `SELECT to_regclass('repository_allowlist') IS NOT NULL`
	if err := c.pool.QueryRow(ctx, query).Scan(&exists); err != nil {
		return fmt.Errorf("postgres health check failed: %w", err)
	}
	if !exists {
		return ErrAllowlistTableMissing
	}
	return nil
}

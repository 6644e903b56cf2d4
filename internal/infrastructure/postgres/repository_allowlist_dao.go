package postgres

import (
	"context"
	"fmt"
)

// RepositoryAllowlistDAO はrepository_allowlistテーブルへのデータアクセスを提供する
type RepositoryAllowlistDAO struct {
	pool PoolInterface
}

// NewRepositoryAllowlistDAO は新しいRepositoryAllowlistDAOを作成する
func NewRepositoryAllowlistDAO(pool PoolInterface) *RepositoryAllowlistDAO {
	return &RepositoryAllowlistDAO{
		pool: pool,
	}
}

// FindAll は許可リポジトリの一覧をリポジトリ名順に取得する
// 行が存在しない場合は空のスライスを返す
func (dao *RepositoryAllowlistDAO) FindAll(ctx context.Context) ([]string, error) {
	query := `
		SELECT repository FROM repository_allowlist ORDER BY repository
	`

	rows, err := dao.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query repository_allowlist: %w", err)
	}
	defer rows.Close()

	repositories := []string{}
	for rows.Next() {
		var repo string
		if err := rows.Scan(&repo); err != nil {
			return nil, fmt.Errorf("failed to scan repository_allowlist row: %w", err)
		}
		repositories = append(repositories, repo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate repository_allowlist rows: %w", err)
	}

	return repositories, nil
}

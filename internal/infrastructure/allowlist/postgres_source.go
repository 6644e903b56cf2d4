package allowlist

import (
	"context"
	"fmt"

	"github.com/na2na-p/oapi-publish/internal/domain"
)

const SourcePostgres = "postgres"

// RepositoryLister は許可リポジトリの一覧を返す
type RepositoryLister interface {
	FindAll(ctx context.Context) ([]string, error)
}

// PostgresSource はrepository_allowlistテーブルを許可リストとする
type PostgresSource struct {
	lister RepositoryLister
}

func NewPostgresSource(lister RepositoryLister) *PostgresSource {
	return &PostgresSource{lister: lister}
}

func (s *PostgresSource) Name() string {
	return SourcePostgres
}

func (s *PostgresSource) Load(ctx context.Context) (*domain.Allowlist, error) {
	entries, err := s.lister.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("許可リストの取得に失敗しました: %w", err)
	}
	return domain.NewAllowlist(entries)
}

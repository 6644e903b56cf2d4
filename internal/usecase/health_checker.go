//go:generate mockgen -source=$GOFILE -destination=mock_health_checker_test.go -package=usecase
package usecase

import (
	"context"
)

// HealthChecker は実行前に確認する依存先（外部コマンド、DB、キャッシュ、ストレージ）
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}

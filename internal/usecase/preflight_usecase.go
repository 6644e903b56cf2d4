package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrHealthCheckFailed はヘルスチェックが失敗したことを示すエラー
var ErrHealthCheckFailed = errors.New("preflight check failed")

// HealthCheckResult は個々のヘルスチェック結果を表す
type HealthCheckResult struct {
	Name    string
	Healthy bool
	Error   error
}

// PreflightUseCase は生成・公開の前に依存先が利用可能かを確認する
type PreflightUseCase struct {
	checkers []HealthChecker
}

func NewPreflightUseCase(checkers ...HealthChecker) *PreflightUseCase {
	return &PreflightUseCase{
		checkers: checkers,
	}
}

// Execute はすべてのチェッカーを実行し、1つでも失敗した場合はエラーを返す
func (uc *PreflightUseCase) Execute(ctx context.Context) error {
	_, err := uc.ExecuteDetails(ctx)
	return err
}

// ExecuteDetails は途中で失敗しても残りのチェッカーを実行し、すべての結果を返す
func (uc *PreflightUseCase) ExecuteDetails(ctx context.Context) ([]HealthCheckResult, error) {
	results := make([]HealthCheckResult, 0, len(uc.checkers))
	var failed []string

	for _, checker := range uc.checkers {
		err := checker.Check(ctx)
		results = append(results, HealthCheckResult{
			Name:    checker.Name(),
			Healthy: err == nil,
			Error:   err,
		})
		if err != nil {
			failed = append(failed, fmt.Sprintf("%s: %v", checker.Name(), err))
		}
	}

	if len(failed) > 0 {
		return results, fmt.Errorf("%w: %s", ErrHealthCheckFailed, strings.Join(failed, "; "))
	}

	return results, nil
}

// Package allowlist は許可リストの取得元（シークレット、PostgreSQL）とRedisキャッシュを提供する
package allowlist

import (
	"context"
	"fmt"
	"strings"

	"github.com/na2na-p/oapi-publish/internal/domain"
)

const SourceSecret = "secret"

// SecretSource はALLOWED_REPOSシークレットのJSON配列を許可リストとする
type SecretSource struct {
	raw string
}

func NewSecretSource(raw string) *SecretSource {
	return &SecretSource{raw: raw}
}

func (s *SecretSource) Name() string {
	return SourceSecret
}

// Load はシークレットを解析する
// 未設定や空文字は空の許可リストではなく不正として扱う
func (s *SecretSource) Load(_ context.Context) (*domain.Allowlist, error) {
	if strings.TrimSpace(s.raw) == "" {
		return nil, fmt.Errorf("%w: ALLOWED_REPOS is not set", domain.ErrMalformedAllowlist)
	}
	return domain.ParseAllowlist(s.raw)
}

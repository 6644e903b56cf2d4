//go:generate mockgen -source=$GOFILE -destination=mock_caller_identity_test.go -package=usecase
package usecase

import (
	"context"

	"github.com/na2na-p/oapi-publish/internal/domain"
)

// CallerIdentityResolver は呼び出し元ワークフローの識別情報を解決する
type CallerIdentityResolver interface {
	Resolve(ctx context.Context) (*domain.CallerIdentity, error)
}

// IDTokenRequester はGitHub ActionsのOIDC IDトークンを要求する
type IDTokenRequester interface {
	Available() bool
	RequestIDToken(ctx context.Context, audience string) (string, error)
}

// GitHubOIDCVerifier はGitHub Actions発行のIDトークンを検証する
type GitHubOIDCVerifier interface {
	VerifyIDToken(ctx context.Context, token string) (*domain.CallerIdentity, error)
}

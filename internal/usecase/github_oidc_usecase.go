package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/na2na-p/oapi-publish/internal/domain"
)

// GitHubOIDCCallerResolver はGitHub ActionsのIDトークンを検証し、repositoryクレームを呼び出し元とする
type GitHubOIDCCallerResolver struct {
	requester IDTokenRequester
	verifier  GitHubOIDCVerifier
	audience  string
}

func NewGitHubOIDCCallerResolver(
	requester IDTokenRequester,
	verifier GitHubOIDCVerifier,
	audience string,
) (*GitHubOIDCCallerResolver, error) {
	if requester == nil || verifier == nil {
		return nil, errors.New("requester and verifier are required")
	}
	audience = strings.TrimSpace(audience)
	if audience == "" {
		return nil, errors.New("audience is required")
	}
	return &GitHubOIDCCallerResolver{
		requester: requester,
		verifier:  verifier,
		audience:  audience,
	}, nil
}

func (r *GitHubOIDCCallerResolver) Resolve(ctx context.Context) (*domain.CallerIdentity, error) {
	if !r.requester.Available() {
		return nil, fmt.Errorf("%w: id-token: write permission is required for OIDC caller verification", ErrCallerUnresolved)
	}

	token, err := r.requester.RequestIDToken(ctx, r.audience)
	if err != nil {
		return nil, fmt.Errorf("%w: IDトークンの取得に失敗しました: %w", ErrCallerUnresolved, err)
	}

	identity, err := r.verifier.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: IDトークンの検証に失敗しました: %w", ErrCallerUnresolved, err)
	}
	if identity == nil {
		return nil, fmt.Errorf("%w: verifier returned nil identity", ErrCallerUnresolved)
	}

	return identity, nil
}

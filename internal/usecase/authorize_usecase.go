package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/na2na-p/oapi-publish/internal/domain"
)

// AuthorizeUseCase は許可リストと呼び出し元からゲートを評価する
type AuthorizeUseCase struct {
	resolver CallerIdentityResolver
	source   AllowlistSource
	gate     *domain.AuthorizationGate
}

func NewAuthorizeUseCase(
	resolver CallerIdentityResolver,
	source AllowlistSource,
	gate *domain.AuthorizationGate,
) *AuthorizeUseCase {
	return &AuthorizeUseCase{
		resolver: resolver,
		source:   source,
		gate:     gate,
	}
}

// Execute はゲートを評価し、許可された呼び出し元の識別情報を返す
// 許可リストの取得・解析に失敗した場合や呼び出し元を特定できない場合は拒否する
func (uc *AuthorizeUseCase) Execute(ctx context.Context) (*domain.CallerIdentity, error) {
	allowlist, err := uc.source.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedAllowlist) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: source=%s: %w", ErrAllowlistUnavailable, uc.source.Name(), err)
	}

	identity, err := uc.resolver.Resolve(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}

	repo, err := identity.RepositoryIdentifier()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}

	if err := uc.gate.Authorize(repo.FullName(), allowlist); err != nil {
		slog.WarnContext(ctx, "authorization denied",
			"caller", repo.FullName(),
			"caller_source", identity.Source().String(),
			"allowlist_source", uc.source.Name(),
			"allowlist_size", allowlist.Len(),
		)
		return nil, err
	}

	slog.InfoContext(ctx, "authorization granted",
		"caller", repo.FullName(),
		"caller_source", identity.Source().String(),
		"self", repo.FullName() == uc.gate.SelfIdentifier(),
		"allowlist_source", uc.source.Name(),
		"allowlist_size", allowlist.Len(),
	)
	return identity, nil
}

package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/na2na-p/oapi-publish/internal/domain"
)

// CredentialUseCase はnpm trusted publishingを優先し、失敗時はNPM_TOKENにフォールバックする
type CredentialUseCase struct {
	idTokens    IDTokenRequester
	exchanger   RegistryTokenExchanger
	staticToken string
}

func NewCredentialUseCase(idTokens IDTokenRequester, exchanger RegistryTokenExchanger, staticToken string) *CredentialUseCase {
	return &CredentialUseCase{
		idTokens:    idTokens,
		exchanger:   exchanger,
		staticToken: strings.TrimSpace(staticToken),
	}
}

func (uc *CredentialUseCase) Resolve(ctx context.Context, request domain.PublishRequest) (domain.PublishCredential, error) {
	if cred, ok := uc.resolveOIDC(ctx, request); ok {
		return cred, nil
	}

	if uc.staticToken != "" {
		slog.InfoContext(ctx, "using static npm token", "registry", request.Registry.String())
		return domain.NewTokenCredential(uc.staticToken), nil
	}

	return domain.PublishCredential{}, ErrNoPublishCredential
}

func (uc *CredentialUseCase) resolveOIDC(ctx context.Context, request domain.PublishRequest) (domain.PublishCredential, bool) {
	if uc.idTokens == nil || uc.exchanger == nil || !uc.idTokens.Available() {
		return domain.PublishCredential{}, false
	}

	idToken, err := uc.idTokens.RequestIDToken(ctx, request.Registry.OIDCAudience())
	if err != nil {
		slog.WarnContext(ctx, "failed to request OIDC ID token, falling back", "error", err)
		return domain.PublishCredential{}, false
	}

	token, err := uc.exchanger.Exchange(ctx, request.Registry, request.Name, idToken)
	if err != nil {
		slog.WarnContext(ctx, "npm OIDC token exchange failed, falling back", "error", err)
		return domain.PublishCredential{}, false
	}
	if token == "" {
		slog.WarnContext(ctx, "npm OIDC token exchange returned empty token, falling back")
		return domain.PublishCredential{}, false
	}

	slog.InfoContext(ctx, "using short-lived npm token from trusted publishing", "registry", request.Registry.String())
	return domain.NewOIDCCredential(token), true
}

package oidc

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/na2na-p/oapi-publish/internal/domain"
)

const (
	// GitHubJWKSURL はGitHub ActionsのJWKS Endpointです
	GitHubJWKSURL = "https://token.actions.githubusercontent.com/.well-known/jwks"
	// GitHubIssuer はGitHub ActionsのIssuerです
	GitHubIssuer = "https://token.actions.githubusercontent.com"
)

// githubActionsClaims はGitHub ActionsのIDトークンから取得したクレーム情報を表します
type githubActionsClaims struct {
	repository     string
	ref            string
	actor          string
	jobWorkflowRef string
}

// GitHubOIDCProvider はGitHub Actions発行のIDトークンを検証し、呼び出し元を特定します
type GitHubOIDCProvider struct {
	jwtVerifier *JWTVerifier
	jwksURL     string
	issuer      string
	audience    string
}

type GitHubOIDCProviderOption func(*githubProviderOptions)

type githubProviderOptions struct {
	jwksURL    string
	issuer     string
	httpClient *http.Client
}

// WithJWKSURL はJWKS Endpointを差し替えます
func WithJWKSURL(jwksURL string) GitHubOIDCProviderOption {
	return func(o *githubProviderOptions) {
		o.jwksURL = jwksURL
	}
}

// WithIssuer は期待するissuerを差し替えます。GitHub Enterprise Serverで使用します
func WithIssuer(issuer string) GitHubOIDCProviderOption {
	return func(o *githubProviderOptions) {
		o.issuer = issuer
	}
}

func WithHTTPClient(client *http.Client) GitHubOIDCProviderOption {
	return func(o *githubProviderOptions) {
		o.httpClient = client
	}
}

// NewGitHubOIDCProvider は新しいGitHubOIDCProviderを作成します
// cacheClientはnilでもよく、その場合JWKSはキャッシュされません
func NewGitHubOIDCProvider(
	audience string,
	cacheClient CacheClient,
	opts ...GitHubOIDCProviderOption,
) (*GitHubOIDCProvider, error) {
	audience = strings.TrimSpace(audience)
	if audience == "" {
		return nil, fmt.Errorf("audience is required")
	}

	o := githubProviderOptions{
		jwksURL: GitHubJWKSURL,
		issuer:  GitHubIssuer,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.jwksURL == "" {
		o.jwksURL = GitHubJWKSURL
	}
	if o.issuer == "" {
		o.issuer = GitHubIssuer
	}

	return &GitHubOIDCProvider{
		jwtVerifier: NewJWTVerifier(cacheClient, o.httpClient),
		jwksURL:     o.jwksURL,
		issuer:      o.issuer,
		audience:    audience,
	}, nil
}

// VerifyIDToken はIDトークンを検証し、repositoryクレームを呼び出し元とするCallerIdentityを返します
func (p *GitHubOIDCProvider) VerifyIDToken(ctx context.Context, token string) (*domain.CallerIdentity, error) {
	verifiedToken, err := p.jwtVerifier.VerifyJWT(ctx, token, p.jwksURL, p.audience, p.issuer, "github")
	if err != nil {
		return nil, fmt.Errorf("JWT検証に失敗しました: %w", err)
	}

	jwtClaims, ok := verifiedToken.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("%w: claimsの取得に失敗しました", ErrInvalidToken)
	}

	claims := &githubActionsClaims{}

	repository, ok := jwtClaims["repository"].(string)
	if !ok || repository == "" {
		return nil, fmt.Errorf("%w: repository claimが含まれていません", ErrInvalidToken)
	}
	claims.repository = repository

	claims.ref, _ = jwtClaims["ref"].(string)
	claims.actor, _ = jwtClaims["actor"].(string)
	claims.jobWorkflowRef, _ = jwtClaims["job_workflow_ref"].(string)

	return toCallerIdentity(claims), nil
}

func toCallerIdentity(claims *githubActionsClaims) *domain.CallerIdentity {
	return domain.NewCallerIdentity(
		domain.CallerIdentitySourceOIDC,
		claims.repository,
		claims.ref,
		claims.actor,
		claims.jobWorkflowRef,
	)
}

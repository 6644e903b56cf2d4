//go:generate mockgen -source=$GOFILE -destination=mock_external_interfaces_test.go -package=usecase
package usecase

import (
	"context"

	"github.com/na2na-p/oapi-publish/internal/domain"
)

// Authorizer は生成処理の前に評価されるゲート
type Authorizer interface {
	Execute(ctx context.Context) (*domain.CallerIdentity, error)
}

// SpecFetcher はOpenAPI仕様書を取得して destDir に保存し、保存先のパスを返す
type SpecFetcher interface {
	Fetch(ctx context.Context, location domain.SpecLocation, destDir string) (string, error)
}

// ClientGenerator はOpenAPI仕様書からクライアントを生成する
type ClientGenerator interface {
	Generate(ctx context.Context, specPath string, options domain.GeneratorOptions, workDir string) error
}

// PackageBuilder は生成されたパッケージの依存解決とビルドを行う
type PackageBuilder interface {
	Build(ctx context.Context, packageDir string) error
}

// PackagePublisher はパッケージをレジストリに公開する
type PackagePublisher interface {
	Publish(ctx context.Context, packageDir string, request domain.PublishRequest, credential domain.PublishCredential) error
}

// ArtifactArchiver は生成物をアーカイブして保存し、保存先のキーを返す
type ArtifactArchiver interface {
	Archive(ctx context.Context, packageDir string, request domain.PublishRequest, runID string) (string, error)
}

// RegistryTokenExchanger はOIDC IDトークンをレジストリの短期トークンに交換する
type RegistryTokenExchanger interface {
	Exchange(ctx context.Context, registry domain.RegistryURL, name domain.PackageName, idToken string) (string, error)
}

// CredentialResolver は公開に使用する認証情報を決定する
type CredentialResolver interface {
	Resolve(ctx context.Context, request domain.PublishRequest) (domain.PublishCredential, error)
}

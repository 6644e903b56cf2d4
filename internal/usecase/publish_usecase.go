package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/na2na-p/oapi-publish/internal/domain"
)

// PublishUseCase はゲート評価、仕様書取得、生成、ビルド、公開を順に実行する
// どの段階も再試行せず、最初の失敗で終了する
type PublishUseCase struct {
	authorizer  Authorizer
	fetcher     SpecFetcher
	generator   ClientGenerator
	builder     PackageBuilder
	archiver    ArtifactArchiver
	credentials CredentialResolver
	publisher   PackagePublisher
	workDir     string
	newRunID    func() string
}

type PublishUseCaseOption func(*PublishUseCase)

// WithPackageBuilder はビルド段階を有効にする
func WithPackageBuilder(builder PackageBuilder) PublishUseCaseOption {
	return func(uc *PublishUseCase) {
		uc.builder = builder
	}
}

// WithArtifactArchiver は生成物のアーカイブを有効にする
func WithArtifactArchiver(archiver ArtifactArchiver) PublishUseCaseOption {
	return func(uc *PublishUseCase) {
		uc.archiver = archiver
	}
}

func WithRunIDGenerator(gen func() string) PublishUseCaseOption {
	return func(uc *PublishUseCase) {
		uc.newRunID = gen
	}
}

func NewPublishUseCase(
	authorizer Authorizer,
	fetcher SpecFetcher,
	generator ClientGenerator,
	credentials CredentialResolver,
	publisher PackagePublisher,
	workDir string,
	opts ...PublishUseCaseOption,
) *PublishUseCase {
	uc := &PublishUseCase{
		authorizer:  authorizer,
		fetcher:     fetcher,
		generator:   generator,
		credentials: credentials,
		publisher:   publisher,
		workDir:     workDir,
		newRunID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *PublishUseCase) Execute(ctx context.Context, request domain.PublishRequest) (*domain.PublishResult, error) {
	result := domain.NewPublishResult(ctx, uc.newRunID(), request)
	logger := slog.With(
		"run_id", result.RunID(),
		"package", request.Name.String(),
		"version", request.Version.String(),
		"dry_run", request.DryRun,
	)

	identity, err := uc.authorizer.Execute(ctx)
	if err != nil {
		return nil, err
	}
	logger = logger.With("caller", identity.Repository())

	specPath, err := uc.fetcher.Fetch(ctx, request.Spec, uc.workDir)
	if err != nil {
		return nil, err
	}
	logger.InfoContext(ctx, "OpenAPI document fetched", "path", specPath)

	options := request.GeneratorOptions()
	if err := uc.generator.Generate(ctx, specPath, options, uc.workDir); err != nil {
		return nil, fmt.Errorf("%w: client generation: %w", ErrDownstreamFailure, err)
	}
	packageDir := filepath.Join(uc.workDir, options.OutputDir())
	logger.InfoContext(ctx, "client generated", "generator", options.Generator(), "output", packageDir)

	if uc.builder != nil {
		if err := uc.builder.Build(ctx, packageDir); err != nil {
			return nil, fmt.Errorf("%w: package build: %w", ErrDownstreamFailure, err)
		}
		logger.InfoContext(ctx, "package built")
	}

	if uc.archiver != nil {
		key, err := uc.archiver.Archive(ctx, packageDir, request, result.RunID())
		if err != nil {
			return nil, fmt.Errorf("%w: artifact archive: %w", ErrDownstreamFailure, err)
		}
		result.SetArchiveKey(key)
		logger.InfoContext(ctx, "artifact archived", "key", key)
	}

	credential := domain.PublishCredential{}
	if !request.DryRun {
		credential, err = uc.credentials.Resolve(ctx, request)
		if err != nil {
			return nil, err
		}
	}

	if err := uc.publisher.Publish(ctx, packageDir, request, credential); err != nil {
		return nil, fmt.Errorf("%w: npm publish: %w", ErrDownstreamFailure, err)
	}

	result.MarkPublished(ctx, credential.Kind())
	logger.InfoContext(ctx, "publish finished",
		"published", result.Published(),
		"auth_method", result.Credential().String(),
		"duration", result.Duration(),
	)
	return result, nil
}

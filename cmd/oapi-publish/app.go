package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/na2na-p/oapi-publish/internal/config"
	"github.com/na2na-p/oapi-publish/internal/domain"
	"github.com/na2na-p/oapi-publish/internal/infrastructure/actions"
	"github.com/na2na-p/oapi-publish/internal/infrastructure/allowlist"
	"github.com/na2na-p/oapi-publish/internal/infrastructure/generator"
	"github.com/na2na-p/oapi-publish/internal/infrastructure/npm"
	"github.com/na2na-p/oapi-publish/internal/infrastructure/oidc"
	"github.com/na2na-p/oapi-publish/internal/infrastructure/openapi"
	"github.com/na2na-p/oapi-publish/internal/infrastructure/postgres"
	"github.com/na2na-p/oapi-publish/internal/infrastructure/process"
	"github.com/na2na-p/oapi-publish/internal/infrastructure/redis"
	"github.com/na2na-p/oapi-publish/internal/infrastructure/s3"
	"github.com/na2na-p/oapi-publish/internal/usecase"
)

// app は設定に応じて接続を確立し、ユースケースを組み立てる
// 接続に失敗したバックエンドは unavailable に記録し、利用する時点でエラーにする
type app struct {
	cfg         *config.Config
	env         *actions.Environment
	runner      process.Runner
	pool        *pgxpool.Pool
	redisClient *redis.RedisClient
	s3Client    *s3.S3Client
	unavailable []backendError
	closers     []func()
}

type backendError struct {
	name string
	err  error
}

func newApp(ctx context.Context, cfg *config.Config, env *actions.Environment) *app {
	a := &app{
		cfg:    cfg,
		env:    env,
		runner: process.NewExecRunner(),
	}

	if cfg.Allowlist.Source == config.AllowlistSourcePostgres {
		pool, err := postgres.NewPostgresConnection(ctx, postgres.PostgresConfig{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			Database: cfg.Database.DBName,
			SSLMode:  cfg.Database.SSLMode,
			CAFile:   cfg.Database.CAFile,
		})
		if err != nil {
			a.unavailable = append(a.unavailable, backendError{name: "postgres", err: err})
		} else {
			a.pool = pool
			a.closers = append(a.closers, pool.Close)
			slog.DebugContext(ctx, "PostgreSQL connection established")
		}
	}

	if cfg.Redis.Enabled {
		conn, err := redis.NewRedisConnection(ctx, redis.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			slog.WarnContext(ctx, "Redis is unavailable, continuing without cache", "error", err)
			a.unavailable = append(a.unavailable, backendError{name: "redis", err: err})
		} else {
			a.redisClient = redis.NewRedisClient(conn)
			a.closers = append(a.closers, func() { _ = conn.Close() })
			slog.DebugContext(ctx, "Redis connection established")
		}
	}

	if cfg.Artifacts.Enabled {
		conn, err := s3.NewS3Connection(s3.S3Config{
			Endpoint:        cfg.Artifacts.S3.Endpoint,
			AccessKeyID:     cfg.Artifacts.S3.AccessKeyID,
			SecretAccessKey: cfg.Artifacts.S3.SecretAccessKey,
			Region:          cfg.Artifacts.S3.Region,
			Bucket:          cfg.Artifacts.S3.BucketName,
			Prefix:          cfg.Artifacts.S3.Prefix,
		})
		if err != nil {
			a.unavailable = append(a.unavailable, backendError{name: "s3", err: err})
		} else {
			a.s3Client = s3.NewS3Client(conn, cfg.Artifacts.S3.BucketName)
		}
	}

	return a
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func (a *app) backendErr(name string) error {
	for _, b := range a.unavailable {
		if b.name == name {
			return b.err
		}
	}
	return nil
}

func (a *app) allowlistSource() (usecase.AllowlistSource, error) {
	if a.cfg.Allowlist.Source != config.AllowlistSourcePostgres {
		// シークレットは実行ごとに与えられるためキャッシュしない
		return allowlist.NewSecretSource(a.cfg.Allowlist.Raw), nil
	}

	if a.pool == nil {
		return nil, fmt.Errorf("%w: source=postgres: %w", usecase.ErrAllowlistUnavailable, a.backendErr("postgres"))
	}
	source := allowlist.NewPostgresSource(postgres.NewRepositoryAllowlistDAO(a.pool))
	if a.redisClient == nil {
		return source, nil
	}
	return allowlist.NewCachingSource(
		source,
		a.redisClient,
		a.cfg.Allowlist.CacheTTL,
		allowlist.WithRefresh(a.cfg.Allowlist.Refresh),
	), nil
}

func (a *app) callerResolver() (usecase.CallerIdentityResolver, error) {
	if a.cfg.Caller.Source != config.CallerSourceOIDC {
		return actions.NewEnvCallerResolver(a.env, a.cfg.Caller.Repository), nil
	}

	// 型付きnilを渡すとキャッシュなしとして扱われない
	var jwksCache oidc.CacheClient
	if a.redisClient != nil {
		jwksCache = a.redisClient
	}
	var opts []oidc.GitHubOIDCProviderOption
	if a.cfg.Caller.OIDC.JWKSURL != "" {
		opts = append(opts, oidc.WithJWKSURL(a.cfg.Caller.OIDC.JWKSURL))
	}
	if a.cfg.Caller.OIDC.Issuer != "" {
		opts = append(opts, oidc.WithIssuer(a.cfg.Caller.OIDC.Issuer))
	}
	provider, err := oidc.NewGitHubOIDCProvider(a.cfg.Caller.OIDC.Audience, jwksCache, opts...)
	if err != nil {
		return nil, err
	}
	return usecase.NewGitHubOIDCCallerResolver(
		actions.NewIDTokenClient(a.env, nil),
		provider,
		a.cfg.Caller.OIDC.Audience,
	)
}

func (a *app) authorizer() (*usecase.AuthorizeUseCase, error) {
	source, err := a.allowlistSource()
	if err != nil {
		return nil, err
	}
	resolver, err := a.callerResolver()
	if err != nil {
		return nil, err
	}
	return usecase.NewAuthorizeUseCase(resolver, source, domain.NewAuthorizationGate(a.cfg.Gate.SelfRepository)), nil
}

func (a *app) clientGenerator() (*generator.OpenAPIGenerator, error) {
	gen, err := generator.NewOpenAPIGenerator(a.runner, a.cfg.Generator.Command)
	if err != nil {
		return nil, fmt.Errorf("%w: generator.command: %w", usecase.ErrInvalidInput, err)
	}
	return gen, nil
}

func (a *app) publishUseCase(workDir string) (*usecase.PublishUseCase, error) {
	authorizer, err := a.authorizer()
	if err != nil {
		return nil, err
	}
	gen, err := a.clientGenerator()
	if err != nil {
		return nil, err
	}

	var opts []usecase.PublishUseCaseOption
	if !a.cfg.Build.Skip {
		opts = append(opts, usecase.WithPackageBuilder(npm.NewBuilder(a.runner, a.cfg.NPM.Command)))
	}
	if a.cfg.Artifacts.Enabled {
		if a.s3Client == nil {
			return nil, fmt.Errorf("%w: artifact storage: %w", usecase.ErrDownstreamFailure, a.backendErr("s3"))
		}
		opts = append(opts, usecase.WithArtifactArchiver(s3.NewArtifactArchiver(a.s3Client, a.cfg.Artifacts.S3.Prefix)))
	}

	credentials := usecase.NewCredentialUseCase(
		actions.NewIDTokenClient(a.env, nil),
		oidc.NewNPMTokenExchanger(nil),
		a.cfg.NPM.Token,
	)

	return usecase.NewPublishUseCase(
		authorizer,
		openapi.NewFetcher(),
		gen,
		credentials,
		npm.NewPublisher(a.runner, a.cfg.NPM.Command),
		workDir,
		opts...,
	), nil
}

func (a *app) preflightUseCase() (*usecase.PreflightUseCase, error) {
	gen, err := a.clientGenerator()
	if err != nil {
		return nil, err
	}
	npmCommand := a.cfg.NPM.Command
	if npmCommand == "" {
		npmCommand = npm.DefaultCommand
	}

	checkers := []usecase.HealthChecker{
		process.NewCommandHealthChecker("generator", gen.Executable(), nil),
		process.NewCommandHealthChecker("npm", npmCommand, nil),
	}
	if a.pool != nil {
		checkers = append(checkers, postgres.NewPostgresHealthChecker(a.pool))
	}
	if a.redisClient != nil {
		checkers = append(checkers, redis.NewRedisHealthChecker(a.redisClient))
	}
	if a.s3Client != nil {
		checkers = append(checkers, s3.NewS3HealthChecker(a.s3Client))
	}
	for _, b := range a.unavailable {
		checkers = append(checkers, unavailableChecker(b))
	}
	return usecase.NewPreflightUseCase(checkers...), nil
}

// unavailableChecker は接続時点で失敗したバックエンドを失敗として報告する
type unavailableChecker backendError

func (c unavailableChecker) Name() string {
	return c.name
}

func (c unavailableChecker) Check(context.Context) error {
	return c.err
}

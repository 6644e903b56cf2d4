package main

import (
	"fmt"

	"github.com/na2na-p/oapi-publish/internal/config"
	"github.com/na2na-p/oapi-publish/internal/domain"
	"github.com/na2na-p/oapi-publish/internal/usecase"
)

// buildPublishRequest は入力値を検証して公開リクエストを組み立てる
func buildPublishRequest(in config.InputsConfig) (domain.PublishRequest, error) {
	spec, err := domain.NewSpecLocation(in.SpecURL)
	if err != nil {
		return domain.PublishRequest{}, fmt.Errorf("%w: openapi-spec-url: %w", usecase.ErrInvalidInput, err)
	}
	name, err := domain.NewPackageName(in.PackageName)
	if err != nil {
		return domain.PublishRequest{}, fmt.Errorf("%w: package-name: %w", usecase.ErrInvalidInput, err)
	}
	version, err := domain.NewPackageVersion(in.PackageVersion)
	if err != nil {
		return domain.PublishRequest{}, fmt.Errorf("%w: package-version: %w", usecase.ErrInvalidInput, err)
	}
	registry, err := domain.NewRegistryURL(in.Registry)
	if err != nil {
		return domain.PublishRequest{}, fmt.Errorf("%w: npm-registry: %w", usecase.ErrInvalidInput, err)
	}
	access, err := domain.NewPublishAccess(in.Access)
	if err != nil {
		return domain.PublishRequest{}, fmt.Errorf("%w: access: %w", usecase.ErrInvalidInput, err)
	}

	return domain.PublishRequest{
		Spec:       spec,
		Name:       name,
		Version:    version,
		Registry:   registry,
		Access:     access,
		DryRun:     in.DryRun,
		Provenance: in.Provenance,
	}, nil
}

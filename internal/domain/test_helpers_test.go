package domain_test

import (
	"testing"

	"github.com/na2na-p/oapi-publish/internal/domain"
)

func mustPackageName(t *testing.T, value string) domain.PackageName {
	t.Helper()
	name, err := domain.NewPackageName(value)
	if err != nil {
		t.Fatalf("NewPackageName(%q) failed: %v", value, err)
	}
	return name
}

func mustPackageVersion(t *testing.T, value string) domain.PackageVersion {
	t.Helper()
	version, err := domain.NewPackageVersion(value)
	if err != nil {
		t.Fatalf("NewPackageVersion(%q) failed: %v", value, err)
	}
	return version
}

func NewTestPublishRequest(t *testing.T, dryRun bool) domain.PublishRequest {
	t.Helper()

	spec, err := domain.NewSpecLocation("https://api.example.com/openapi.json")
	if err != nil {
		t.Fatalf("NewSpecLocation() failed: %v", err)
	}
	registry, err := domain.NewRegistryURL("")
	if err != nil {
		t.Fatalf("NewRegistryURL() failed: %v", err)
	}

	return domain.PublishRequest{
		Spec:     spec,
		Name:     mustPackageName(t, "@acme/petstore"),
		Version:  mustPackageVersion(t, "1.0.0"),
		Registry: registry,
		Access:   domain.PublishAccessPublic,
		DryRun:   dryRun,
	}
}

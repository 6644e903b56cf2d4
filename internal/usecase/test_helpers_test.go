package usecase_test

import (
	"testing"

	"github.com/na2na-p/oapi-publish/internal/domain"
)

func newTestPublishRequest(t *testing.T, dryRun bool) domain.PublishRequest {
	t.Helper()

	spec, err := domain.NewSpecLocation("https://api.example.com/openapi.json")
	if err != nil {
		t.Fatalf("NewSpecLocation() failed: %v", err)
	}
	name, err := domain.NewPackageName("@acme/petstore")
	if err != nil {
		t.Fatalf("NewPackageName() failed: %v", err)
	}
	version, err := domain.NewPackageVersion("1.2.3")
	if err != nil {
		t.Fatalf("NewPackageVersion() failed: %v", err)
	}
	registry, err := domain.NewRegistryURL("")
	if err != nil {
		t.Fatalf("NewRegistryURL() failed: %v", err)
	}

	return domain.PublishRequest{
		Spec:     spec,
		Name:     name,
		Version:  version,
		Registry: registry,
		Access:   domain.PublishAccessPublic,
		DryRun:   dryRun,
	}
}

func mustAllowlist(t *testing.T, entries ...string) *domain.Allowlist {
	t.Helper()
	allowlist, err := domain.NewAllowlist(entries)
	if err != nil {
		t.Fatalf("NewAllowlist() failed: %v", err)
	}
	return allowlist
}

func newEnvIdentity(repository string) *domain.CallerIdentity {
	return domain.NewCallerIdentity(domain.CallerIdentitySourceEnv, repository, "refs/heads/main", "octocat", "")
}

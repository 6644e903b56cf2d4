package npm_test

import (
	"context"
	"testing"

	"github.com/na2na-p/oapi-publish/internal/domain"
	"github.com/na2na-p/oapi-publish/internal/infrastructure/process"
)

// fakeRunner は実行されたコマンドを記録する
type fakeRunner struct {
	commands []process.Command
	err      error
	failAt   int
}

func (r *fakeRunner) Run(_ context.Context, cmd process.Command) ([]byte, error) {
	r.commands = append(r.commands, cmd)
	if r.err != nil && len(r.commands) == r.failAt {
		return []byte(r.err.Error()), r.err
	}
	return nil, nil
}

func newTestRequest(t *testing.T, version string, dryRun, provenance bool) domain.PublishRequest {
	t.Helper()
	spec, err := domain.NewSpecLocation("https://api.example.com/openapi.json")
	if err != nil {
		t.Fatalf("NewSpecLocation() error = %v", err)
	}
	name, err := domain.NewPackageName("@acme/petstore")
	if err != nil {
		t.Fatalf("NewPackageName() error = %v", err)
	}
	v, err := domain.NewPackageVersion(version)
	if err != nil {
		t.Fatalf("NewPackageVersion() error = %v", err)
	}
	registry, err := domain.NewRegistryURL("https://registry.npmjs.org/")
	if err != nil {
		t.Fatalf("NewRegistryURL() error = %v", err)
	}
	return domain.PublishRequest{
		Spec:       spec,
		Name:       name,
		Version:    v,
		Registry:   registry,
		Access:     domain.PublishAccessPublic,
		DryRun:     dryRun,
		Provenance: provenance,
	}
}

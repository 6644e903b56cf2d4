package actions

import (
	"context"
	"fmt"
	"strings"

	"github.com/na2na-p/oapi-publish/internal/domain"
	"github.com/na2na-p/oapi-publish/internal/usecase"
)

// EnvCallerResolver はランナーの環境変数から呼び出し元リポジトリを特定する
// overrideが設定されている場合はGITHUB_REPOSITORYより優先する
type EnvCallerResolver struct {
	env      *Environment
	override string
}

func NewEnvCallerResolver(env *Environment, override string) *EnvCallerResolver {
	return &EnvCallerResolver{
		env:      env,
		override: strings.TrimSpace(override),
	}
}

func (r *EnvCallerResolver) Resolve(_ context.Context) (*domain.CallerIdentity, error) {
	repository := r.override
	if repository == "" {
		repository = strings.TrimSpace(r.env.Get("GITHUB_REPOSITORY"))
	}
	if repository == "" {
		return nil, fmt.Errorf("%w: GITHUB_REPOSITORY is not set", usecase.ErrCallerUnresolved)
	}

	return domain.NewCallerIdentity(
		domain.CallerIdentitySourceEnv,
		repository,
		r.env.Get("GITHUB_REF"),
		r.env.Get("GITHUB_ACTOR"),
		r.env.Get("GITHUB_WORKFLOW_REF"),
	), nil
}

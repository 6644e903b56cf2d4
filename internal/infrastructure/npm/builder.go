// Package npm はnpm CLIによるパッケージのビルドと公開を行う
package npm

import (
	"context"

	"github.com/na2na-p/oapi-publish/internal/infrastructure/process"
	"github.com/na2na-p/oapi-publish/internal/usecase"
)

// DefaultCommand は既定のnpm CLI
const DefaultCommand = "npm"

// Builder は生成されたパッケージの依存を解決してビルドする
type Builder struct {
	runner  process.Runner
	command string
}

func NewBuilder(runner process.Runner, command string) *Builder {
	if command == "" {
		command = DefaultCommand
	}
	return &Builder{runner: runner, command: command}
}

var _ usecase.PackageBuilder = (*Builder)(nil)

func (b *Builder) Build(ctx context.Context, packageDir string) error {
	steps := [][]string{
		{"install", "--no-audit", "--no-fund"},
		{"run", "build"},
	}
	for _, args := range steps {
		if _, err := b.runner.Run(ctx, process.Command{
			Name: b.command,
			Args: args,
			Dir:  packageDir,
		}); err != nil {
			return err
		}
	}
	return nil
}

// Package generator はopenapi-generatorでTypeScriptクライアントを生成する
package generator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/na2na-p/oapi-publish/internal/domain"
	"github.com/na2na-p/oapi-publish/internal/infrastructure/process"
	"github.com/na2na-p/oapi-publish/internal/usecase"
)

// DefaultCommand は既定のopenapi-generator CLI
const DefaultCommand = "openapi-generator-cli"

var ErrEmptyCommand = errors.New("generator command is empty")

// OpenAPIGenerator は openapi-generator generate を実行する
type OpenAPIGenerator struct {
	runner  process.Runner
	command []string
}

// NewOpenAPIGenerator は新しいOpenAPIGeneratorを生成する
// command は空白区切りで引数を含められる（例: "npx --yes @openapitools/openapi-generator-cli"）
func NewOpenAPIGenerator(runner process.Runner, command string) (*OpenAPIGenerator, error) {
	if command == "" {
		command = DefaultCommand
	}
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, ErrEmptyCommand
	}
	return &OpenAPIGenerator{
		runner:  runner,
		command: fields,
	}, nil
}

var _ usecase.ClientGenerator = (*OpenAPIGenerator)(nil)

// Executable はPATH上で確認すべき実行ファイル名を返す
func (g *OpenAPIGenerator) Executable() string {
	return g.command[0]
}

func (g *OpenAPIGenerator) Generate(ctx context.Context, specPath string, options domain.GeneratorOptions, workDir string) error {
	outputDir := filepath.Join(workDir, options.OutputDir())
	// 前回の生成物が残っていると削除済みのモデルが公開されてしまう
	if err := os.RemoveAll(outputDir); err != nil {
		return fmt.Errorf("failed to clean %s: %w", outputDir, err)
	}

	args := append([]string{}, g.command[1:]...)
	args = append(args,
		"generate",
		"-i", specPath,
		"-g", options.Generator(),
		"-o", outputDir,
		"--additional-properties="+options.AdditionalProperties(),
	)

	if _, err := g.runner.Run(ctx, process.Command{
		Name: g.command[0],
		Args: args,
		Dir:  workDir,
	}); err != nil {
		return err
	}

	if _, err := os.Stat(filepath.Join(outputDir, "package.json")); err != nil {
		return fmt.Errorf("generator produced no package.json in %s: %w", outputDir, err)
	}
	return nil
}

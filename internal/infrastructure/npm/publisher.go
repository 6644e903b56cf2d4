package npm

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/na2na-p/oapi-publish/internal/domain"
	"github.com/na2na-p/oapi-publish/internal/infrastructure/process"
	"github.com/na2na-p/oapi-publish/internal/usecase"
)

const (
	// AuthTokenEnv は .npmrc から参照するトークンの環境変数
	// トークンはこの環境変数経由で子プロセスにのみ渡し、コマンドライン引数やファイルには書かない
	AuthTokenEnv = "NODE_AUTH_TOKEN"
	npmrcFile    = ".npmrc"
)

// Publisher は npm publish を実行する
type Publisher struct {
	runner  process.Runner
	command string
}

func NewPublisher(runner process.Runner, command string) *Publisher {
	if command == "" {
		command = DefaultCommand
	}
	return &Publisher{runner: runner, command: command}
}

var _ usecase.PackagePublisher = (*Publisher)(nil)

func (p *Publisher) Publish(ctx context.Context, packageDir string, request domain.PublishRequest, credential domain.PublishCredential) error {
	args := []string{
		"publish",
		"--registry", request.Registry.String(),
		"--access", request.Access.String(),
		"--tag", request.Version.DistTag(),
	}

	cmd := process.Command{Name: p.command, Dir: packageDir}

	if request.DryRun {
		cmd.Args = append(args, "--dry-run")
		_, err := p.runner.Run(ctx, cmd)
		return err
	}

	if credential.IsZero() {
		return usecase.ErrNoPublishCredential
	}
	if err := WriteNPMRC(packageDir, request.Registry); err != nil {
		return err
	}
	if request.Provenance && credential.Kind() == domain.CredentialKindOIDC {
		args = append(args, "--provenance")
	}

	cmd.Args = args
	cmd.Env = []string{AuthTokenEnv + "=" + credential.Token()}
	_, err := p.runner.Run(ctx, cmd)
	return err
}

// WriteNPMRC はレジストリの認証設定を環境変数参照として書き出す
func WriteNPMRC(packageDir string, registry domain.RegistryURL) error {
	content := fmt.Sprintf("registry=%s/\n%s=${%s}\n", registry.String(), registry.NPMRCAuthKey(), AuthTokenEnv)
	path := filepath.Join(packageDir, npmrcFile)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

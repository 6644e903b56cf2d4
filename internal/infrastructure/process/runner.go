// Package process は外部コマンドの実行を扱う
package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// Command は実行するコマンド
// Env は親プロセスの環境変数に追加され、子プロセスにのみ渡される
type Command struct {
	Name string
	Args []string
	Dir  string
	Env  []string
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Runner はコマンドを実行して標準出力と標準エラーを結合した出力を返す
type Runner interface {
	Run(ctx context.Context, cmd Command) ([]byte, error)
}

// ExecRunner はos/execでコマンドを実行する
type ExecRunner struct{}

func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

var _ Runner = (*ExecRunner)(nil)

func (r *ExecRunner) Run(ctx context.Context, cmd Command) ([]byte, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	if len(cmd.Env) > 0 {
		c.Env = append(os.Environ(), cmd.Env...)
	}

	var output bytes.Buffer
	c.Stdout = &output
	c.Stderr = &output

	slog.DebugContext(ctx, "running command", "command", cmd.String(), "dir", cmd.Dir)

	if err := c.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return output.Bytes(), &ExitError{
				Command:  cmd.String(),
				ExitCode: exitErr.ExitCode(),
				Output:   output.String(),
				Err:      exitErr,
			}
		}
		return output.Bytes(), fmt.Errorf("failed to run %s: %w", cmd.Name, err)
	}

	return output.Bytes(), nil
}

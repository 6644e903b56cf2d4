package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/na2na-p/oapi-publish/internal/infrastructure/actions"
	"github.com/na2na-p/oapi-publish/internal/infrastructure/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr, actions.NewEnvironment(nil))
	stop()
	os.Exit(code)
}

// execute はコマンドを実行して終了コードを返す
// stdout はランナーのワークフローコマンド用、ログは stderr に出力する
func execute(ctx context.Context, args []string, stdout, stderr io.Writer, env *actions.Environment) int {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logging.MaskSensitiveAttrs,
	}))
	slog.SetDefault(logger)

	reporter := actions.NewReporter(env, stdout)
	root := newRootCommand(&cli{
		env:      env,
		reporter: reporter,
		level:    level,
	})
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err != nil {
		reportFailure(ctx, reporter, err)
	}
	return exitCode(err)
}

func reportFailure(ctx context.Context, reporter *actions.Reporter, err error) {
	slog.ErrorContext(ctx, "oapi-publish failed", "stage", failureStage(err), "error", err)
	reporter.Error(err.Error())
	if summaryErr := reporter.AppendSummary(actions.RenderFailureSummary(failureStage(err), err.Error())); summaryErr != nil {
		slog.WarnContext(ctx, "failed to write job summary", "error", summaryErr)
	}
}

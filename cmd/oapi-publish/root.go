package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/na2na-p/oapi-publish/internal/config"
	"github.com/na2na-p/oapi-publish/internal/infrastructure/actions"
	"github.com/na2na-p/oapi-publish/internal/usecase"
)

// cli はサブコマンド間で共有する状態
type cli struct {
	env        *actions.Environment
	reporter   *actions.Reporter
	level      *slog.LevelVar
	configFile string
	cfg        *config.Config
}

func newRootCommand(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "oapi-publish",
		Short:         "Generate a TypeScript client from an OpenAPI document and publish it to npm",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.loadConfig(cmd.Flags())
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", usecase.ErrInvalidInput, err)
	})

	flags := root.PersistentFlags()
	flags.StringVar(&c.configFile, "config", "", "path to config.yaml (default: ./config.yaml if present)")
	flags.String("openapi-spec-url", "", "URL or local path of the OpenAPI document")
	flags.String("package-name", "", "npm package name, e.g. @scope/client")
	flags.String("package-version", "", "semantic version to publish")
	flags.String("npm-registry", "", "npm registry URL (default https://registry.npmjs.org)")
	flags.Bool("dry-run", false, "run npm publish --dry-run without credentials")
	flags.Bool("provenance", false, "publish with npm provenance when using trusted publishing")
	flags.String("access", "", "npm access level: public or restricted")
	flags.String("working-directory", "", "directory for the fetched document and generated client")

	root.AddCommand(
		newRunCommand(c),
		newAuthorizeCommand(c),
		newPreflightCommand(c),
	)
	return root
}

func (c *cli) loadConfig(flags *pflag.FlagSet) error {
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: c.configFile,
		Flags:      flags,
		Inputs:     c.env,
	})
	if err != nil {
		return err
	}
	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return err
	}
	c.level.Set(level)
	c.reporter.AddMask(cfg.NPM.Token)
	c.cfg = cfg
	return nil
}

func newRunCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Authorize the caller, then fetch, generate, build and publish the client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			request, err := buildPublishRequest(c.cfg.Inputs)
			if err != nil {
				return err
			}
			workDir, err := prepareWorkDir(c.cfg.Inputs.WorkingDirectory)
			if err != nil {
				return err
			}

			a := newApp(ctx, c.cfg, c.env)
			defer a.Close()

			uc, err := a.publishUseCase(workDir)
			if err != nil {
				return err
			}
			result, err := uc.Execute(ctx, request)
			if err != nil {
				return err
			}

			if err := c.reporter.SetOutputs(actions.PublishOutputs(result)); err != nil {
				slog.WarnContext(ctx, "failed to write step outputs", "error", err)
			}
			if err := c.reporter.AppendSummary(actions.RenderSummary(result)); err != nil {
				slog.WarnContext(ctx, "failed to write job summary", "error", err)
			}
			return nil
		},
	}
}

func newAuthorizeCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "authorize",
		Short: "Evaluate the repository allowlist gate only",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a := newApp(ctx, c.cfg, c.env)
			defer a.Close()

			uc, err := a.authorizer()
			if err != nil {
				return err
			}
			identity, err := uc.Execute(ctx)
			if err != nil {
				return err
			}

			if err := c.reporter.SetOutputs(map[string]string{
				"authorized": strconv.FormatBool(true),
				"caller":     identity.Repository(),
			}); err != nil {
				slog.WarnContext(ctx, "failed to write step outputs", "error", err)
			}
			c.reporter.Notice(fmt.Sprintf("%s is authorized", identity.Repository()))
			return nil
		},
	}
}

func newPreflightCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "preflight",
		Short: "Check that the generator, npm and configured backends are reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a := newApp(ctx, c.cfg, c.env)
			defer a.Close()

			uc, err := a.preflightUseCase()
			if err != nil {
				return err
			}
			results, err := uc.ExecuteDetails(ctx)
			for _, r := range results {
				if r.Healthy {
					slog.InfoContext(ctx, "preflight check passed", "check", r.Name)
				} else {
					slog.WarnContext(ctx, "preflight check failed", "check", r.Name, "error", r.Error)
				}
			}
			return err
		},
	}
}

// prepareWorkDir は作業ディレクトリを絶対パスにして作成する
func prepareWorkDir(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%w: working-directory: %w", usecase.ErrInvalidInput, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return "", fmt.Errorf("%w: working-directory: %w", usecase.ErrInvalidInput, err)
	}
	return abs, nil
}

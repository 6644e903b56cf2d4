package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "OAPI_PUBLISH"

// ErrInvalidConfig は設定値の組み合わせが不正な場合のエラー
var ErrInvalidConfig = errors.New("invalid configuration")

const (
	AllowlistSourceSecret   = "secret"
	AllowlistSourcePostgres = "postgres"

	CallerSourceEnv  = "env"
	CallerSourceOIDC = "oidc"
)

type Config struct {
	Inputs    InputsConfig
	Gate      GateConfig
	Caller    CallerConfig
	Allowlist AllowlistConfig
	Generator GeneratorConfig
	Build     BuildConfig
	NPM       NPMConfig
	Artifacts ArtifactsConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Log       LogConfig
}

// InputsConfig はアクションの入力値
type InputsConfig struct {
	SpecURL          string
	PackageName      string
	PackageVersion   string
	Registry         string
	DryRun           bool
	Provenance       bool
	Access           string
	WorkingDirectory string
}

type GateConfig struct {
	// SelfRepository はワークフローを提供するリポジトリ。空の場合はバイパスしない
	SelfRepository string
}

type CallerConfig struct {
	Source     string
	Repository string
	OIDC       CallerOIDCConfig
}

type CallerOIDCConfig struct {
	Audience string
	JWKSURL  string
	// Issuer はGitHub Enterprise Serverなどで期待するissuerを差し替える
	Issuer string
}

type AllowlistConfig struct {
	Source   string
	Raw      string
	CacheTTL time.Duration
	// Refresh はPostgreSQLの許可リストのキャッシュを読まずに再取得する
	Refresh bool
}

type GeneratorConfig struct {
	Command string
}

type BuildConfig struct {
	Skip bool
}

type NPMConfig struct {
	Command string
	Token   string
}

type ArtifactsConfig struct {
	Enabled bool
	S3      S3Config
}

type S3Config struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	Prefix          string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	CAFile   string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type LogConfig struct {
	Level string
}

// InputSource はGitHub Actionsの INPUT_<NAME> を解決する
type InputSource interface {
	Input(name string) (string, bool)
}

// Input はアクションの入力名と設定キーの対応
type Input struct {
	Name string
	Key  string
}

// Inputs はフラグ名とアクションの入力名を兼ねる
var Inputs = []Input{
	{Name: "openapi-spec-url", Key: "inputs.specurl"},
	{Name: "package-name", Key: "inputs.packagename"},
	{Name: "package-version", Key: "inputs.packageversion"},
	{Name: "npm-registry", Key: "inputs.registry"},
	{Name: "dry-run", Key: "inputs.dryrun"},
	{Name: "provenance", Key: "inputs.provenance"},
	{Name: "access", Key: "inputs.access"},
	{Name: "working-directory", Key: "inputs.workingdirectory"},
}

var defaults = map[string]any{
	"inputs.specurl":          "",
	"inputs.packagename":      "",
	"inputs.packageversion":   "",
	"inputs.registry":         "https://registry.npmjs.org",
	"inputs.dryrun":           false,
	"inputs.provenance":       false,
	"inputs.access":           "public",
	"inputs.workingdirectory": ".",

	"gate.selfrepository": "",

	"caller.source":        CallerSourceEnv,
	"caller.repository":    "",
	"caller.oidc.audience": "oapi-publish",
	"caller.oidc.jwksurl":  "",
	"caller.oidc.issuer":   "",

	"allowlist.source":   AllowlistSourceSecret,
	"allowlist.raw":      "",
	"allowlist.cachettl": 5 * time.Minute,
	"allowlist.refresh":  false,

	"generator.command": "openapi-generator-cli",
	"build.skip":        false,
	"npm.command":       "npm",
	"npm.token":         "",

	"artifacts.enabled":            false,
	"artifacts.s3.endpoint":        "",
	"artifacts.s3.accesskeyid":     "",
	"artifacts.s3.secretaccesskey": "",
	"artifacts.s3.bucketname":      "",
	"artifacts.s3.region":          "",
	"artifacts.s3.prefix":          "",

	"database.host":     "",
	"database.port":     5432,
	"database.user":     "",
	"database.password": "",
	"database.dbname":   "",
	"database.sslmode":  "require",
	"database.cafile":   "",

	"redis.enabled":  false,
	"redis.host":     "",
	"redis.port":     6379,
	"redis.password": "",
	"redis.db":       0,

	"log.level": "info",
}

// secretEnvBindings はランナーのシークレットとして慣例的に使われる環境変数名
var secretEnvBindings = map[string][]string{
	"allowlist.raw":                {"ALLOWED_REPOS"},
	"npm.token":                    {"NPM_TOKEN"},
	"artifacts.s3.accesskeyid":     {"AWS_ACCESS_KEY_ID"},
	"artifacts.s3.secretaccesskey": {"AWS_SECRET_ACCESS_KEY"},
	"artifacts.s3.region":          {"AWS_REGION"},
}

type LoadOptions struct {
	// ConfigFile が空の場合はカレントディレクトリの config.yaml を任意で読む
	ConfigFile string
	Flags      *pflag.FlagSet
	Inputs     InputSource
}

// Load は フラグ > INPUT_* > OAPI_PUBLISH_* > config.yaml > 既定値 の順で設定を解決する
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, names := range secretEnvBindings {
		envNames := append([]string{envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))}, names...)
		if err := v.BindEnv(append([]string{key}, envNames...)...); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", opts.ConfigFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config.yaml: %w", err)
			}
		}
	}

	for _, in := range Inputs {
		var flag *pflag.Flag
		if opts.Flags != nil {
			flag = opts.Flags.Lookup(in.Name)
		}
		if flag != nil {
			if err := v.BindPFlag(in.Key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", in.Name, err)
			}
			if flag.Changed {
				continue
			}
		}
		// Set はフラグより優先されるため、フラグが指定されていない場合のみ使う
		if opts.Inputs != nil {
			if value, ok := opts.Inputs.Input(in.Name); ok && value != "" {
				v.Set(in.Key, value)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to decode configuration: %w", ErrInvalidConfig, err)
	}
	cfg.Allowlist.Raw = strings.TrimSpace(cfg.Allowlist.Raw)
	cfg.NPM.Token = strings.TrimSpace(cfg.NPM.Token)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate は設定値の組み合わせを検証する
// 入力値そのものの検証はドメインの値オブジェクトで行う
func (c *Config) Validate() error {
	switch c.Allowlist.Source {
	case AllowlistSourceSecret:
	case AllowlistSourcePostgres:
		if c.Database.Host == "" {
			return fmt.Errorf("%w: database.host is required when allowlist.source is postgres", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: allowlist.source must be secret or postgres, got %q", ErrInvalidConfig, c.Allowlist.Source)
	}

	switch c.Caller.Source {
	case CallerSourceEnv:
	case CallerSourceOIDC:
		if strings.TrimSpace(c.Caller.OIDC.Audience) == "" {
			return fmt.Errorf("%w: caller.oidc.audience is required when caller.source is oidc", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: caller.source must be env or oidc, got %q", ErrInvalidConfig, c.Caller.Source)
	}

	if c.Redis.Enabled && c.Redis.Host == "" {
		return fmt.Errorf("%w: redis.host is required when redis.enabled is true", ErrInvalidConfig)
	}

	if c.Artifacts.Enabled {
		if c.Artifacts.S3.BucketName == "" || c.Artifacts.S3.Region == "" {
			return fmt.Errorf("%w: artifacts.s3.bucketname and artifacts.s3.region are required when artifacts are enabled", ErrInvalidConfig)
		}
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

func (c LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log.level must be debug, info, warn or error, got %q", ErrInvalidConfig, c.Level)
	}
	return level, nil
}

func (c AllowlistConfig) String() string {
	return fmt.Sprintf("AllowlistConfig{Source: %s, Raw: ***, CacheTTL: %s}", c.Source, c.CacheTTL)
}

func (c NPMConfig) String() string {
	return fmt.Sprintf("NPMConfig{Command: %s, Token: ***}", c.Command)
}

func (c DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Host: %s, Port: %d, User: %s, Password: ***, DBName: %s, SSLMode: %s}",
		c.Host, c.Port, c.User, c.DBName, c.SSLMode)
}

func (c RedisConfig) String() string {
	return fmt.Sprintf("RedisConfig{Enabled: %t, Host: %s, Port: %d, Password: ***, DB: %d}",
		c.Enabled, c.Host, c.Port, c.DB)
}

func (c S3Config) String() string {
	return fmt.Sprintf("S3Config{Endpoint: %s, AccessKeyID: %s, SecretAccessKey: ***, BucketName: %s, Region: %s, Prefix: %s}",
		c.Endpoint, c.AccessKeyID, c.BucketName, c.Region, c.Prefix)
}

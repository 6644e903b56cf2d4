//go:build e2e

// Package e2e はビルドしたoapi-publishバイナリをランナーと同じ環境変数で実行するE2Eテストを提供します
package e2e

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	_ "github.com/lib/pq"
)

// testRepositories はE2Eテスト用に許可リストテーブルへ登録するリポジトリ一覧
var testRepositories = []string{
	"na2na-p/test-repo",
	"na2na-p/na2na-platform",
}

// binaryPath はTestMainでビルドしたバイナリのパス
var binaryPath string

// TestMain はバイナリをビルドし、許可リストテーブルを準備します
func TestMain(m *testing.M) {
	tempDir, err := os.MkdirTemp("", "oapi-publish-e2e-")
	if err != nil {
		fmt.Fprintf(os.Stderr, "一時ディレクトリの作成に失敗しました: %v\n", err)
		os.Exit(1)
	}

	if err := setup(tempDir); err != nil {
		fmt.Fprintf(os.Stderr, "E2Eテスト環境のセットアップに失敗しました: %v\n", err)
		_ = os.RemoveAll(tempDir)
		os.Exit(1)
	}

	code := m.Run()

	if err := os.RemoveAll(tempDir); err != nil {
		fmt.Fprintf(os.Stderr, "E2Eテスト環境のクリーンアップに失敗しました: %v\n", err)
	}
	os.Exit(code)
}

func setup(tempDir string) error {
	binaryPath = os.Getenv("E2E_BINARY")
	if binaryPath == "" {
		binaryPath = filepath.Join(tempDir, "oapi-publish")
		build := exec.Command("go", "build", "-o", binaryPath, "../cmd/oapi-publish")
		build.Stdout = os.Stderr
		build.Stderr = os.Stderr
		if err := build.Run(); err != nil {
			return fmt.Errorf("バイナリのビルドに失敗しました: %w", err)
		}
	}

	if databaseEnabled() {
		if err := registerTestRepositories(); err != nil {
			return fmt.Errorf("テスト用リポジトリの登録に失敗しました: %w", err)
		}
	}
	return nil
}

// databaseEnabled はPostgreSQLを使うテストを実行するかを返します
func databaseEnabled() bool {
	return os.Getenv("DATABASE_HOST") != ""
}

// databaseEnv はバイナリに渡すPostgreSQL接続設定を返します
func databaseEnv() []string {
	return []string{
		"OAPI_PUBLISH_ALLOWLIST_SOURCE=postgres",
		"OAPI_PUBLISH_DATABASE_HOST=" + getEnvOrDefault("DATABASE_HOST", "localhost"),
		"OAPI_PUBLISH_DATABASE_PORT=" + getEnvOrDefault("DATABASE_PORT", "5432"),
		"OAPI_PUBLISH_DATABASE_USER=" + getEnvOrDefault("DATABASE_USER", "oapi_publish"),
		"OAPI_PUBLISH_DATABASE_PASSWORD=" + getEnvOrDefault("DATABASE_PASSWORD", "oapi_publish_dev_password"),
		"OAPI_PUBLISH_DATABASE_DBNAME=" + getEnvOrDefault("DATABASE_DBNAME", "oapi_publish"),
		"OAPI_PUBLISH_DATABASE_SSLMODE=disable",
	}
}

// registerTestRepositories はテスト用リポジトリをDBに登録します
func registerTestRepositories() error {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnvOrDefault("DATABASE_HOST", "localhost"),
		getEnvOrDefault("DATABASE_PORT", "5432"),
		getEnvOrDefault("DATABASE_USER", "oapi_publish"),
		getEnvOrDefault("DATABASE_PASSWORD", "oapi_publish_dev_password"),
		getEnvOrDefault("DATABASE_DBNAME", "oapi_publish"),
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return fmt.Errorf("データベース接続に失敗しました: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("データベースへの接続確認に失敗しました: %w", err)
	}

	if _, err := db.Exec(
		`CREATE TABLE IF NOT EXISTS repository_allowlist (
			repository TEXT PRIMARY KEY,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	); err != nil {
		return fmt.Errorf("repository_allowlistテーブルの作成に失敗しました: %w", err)
	}

	for _, repo := range testRepositories {
		_, err := db.Exec(
			`INSERT INTO repository_allowlist (repository, created_at)
			 VALUES ($1, NOW())
			 ON CONFLICT (repository) DO NOTHING`,
			repo,
		)
		if err != nil {
			return fmt.Errorf("リポジトリ %s の登録に失敗しました: %w", repo, err)
		}
	}
	return nil
}

// getEnvOrDefault は環境変数を取得し、存在しない場合はデフォルト値を返します
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Result はバイナリの実行結果
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Outputs  string
	Summary  string
}

// RunBinary はランナーの環境変数を模してバイナリを実行します
// 親プロセスの環境変数は引き継がず、PATHとHOMEのみを渡します
func RunBinary(t *testing.T, env []string, args ...string) Result {
	t.Helper()

	dir := t.TempDir()
	outputPath := filepath.Join(dir, "github_output")
	summaryPath := filepath.Join(dir, "step_summary")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cmd := exec.CommandContext(ctx, binaryPath, args...)
	cmd.Dir = dir
	cmd.Env = append([]string{
		"PATH=" + os.Getenv("PATH"),
		"HOME=" + dir,
		"GITHUB_ACTIONS=true",
		"GITHUB_OUTPUT=" + outputPath,
		"GITHUB_STEP_SUMMARY=" + summaryPath,
	}, env...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	exitCode := 0
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("バイナリの実行に失敗しました: %v", err)
		}
		exitCode = exitErr.ExitCode()
	}

	outputs, _ := os.ReadFile(outputPath)
	summary, _ := os.ReadFile(summaryPath)
	return Result{
		ExitCode: exitCode,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Outputs:  string(outputs),
		Summary:  string(summary),
	}
}

// ParseOutputs はGITHUB_OUTPUTのheredoc形式を解析します
func ParseOutputs(raw string) map[string]string {
	outputs := map[string]string{}
	lines := strings.Split(raw, "\n")
	for i := 0; i < len(lines); i++ {
		name, delimiter, ok := strings.Cut(lines[i], "<<")
		if !ok {
			continue
		}
		var value []string
		for i++; i < len(lines) && lines[i] != delimiter; i++ {
			value = append(value, lines[i])
		}
		outputs[name] = strings.Join(value, "\n")
	}
	return outputs
}

// AssertNoLeak は出力のいずれにも値が含まれないことを検証します
func AssertNoLeak(t *testing.T, r Result, values ...string) {
	t.Helper()
	for _, v := range values {
		for name, out := range map[string]string{
			"stdout":  r.Stdout,
			"stderr":  r.Stderr,
			"outputs": r.Outputs,
			"summary": r.Summary,
		} {
			if strings.Contains(out, v) {
				t.Errorf("%s に %q が出力されています:\n%s", name, v, out)
			}
		}
	}
}

// TestKeyPair はE2Eテスト用のRSA鍵ペアを保持します
type TestKeyPair struct {
	PrivateKey *rsa.PrivateKey
	KeyID      string
}

// GenerateTestKeyPair はテスト用のRSA鍵ペアを生成します
func GenerateTestKeyPair() (*TestKeyPair, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, fmt.Errorf("RSA秘密鍵の生成に失敗しました: %w", err)
	}
	return &TestKeyPair{PrivateKey: privateKey, KeyID: "test-key-id"}, nil
}

// GenerateJWT はテスト用のIDトークンをRS256で署名します
func GenerateJWT(claims map[string]interface{}, keyPair *TestKeyPair) (string, error) {
	now := time.Now()
	jwtClaims := jwt.MapClaims{
		"iat": now.Unix(),
		"exp": now.Add(1 * time.Hour).Unix(),
		"nbf": now.Unix(),
	}
	for key, value := range claims {
		jwtClaims[key] = value
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwtClaims)
	token.Header["kid"] = keyPair.KeyID

	signedToken, err := token.SignedString(keyPair.PrivateKey)
	if err != nil {
		return "", fmt.Errorf("JWTトークンの署名に失敗しました: %w", err)
	}
	return signedToken, nil
}

// NewOIDCServer はIDトークン発行APIとJWKSを提供するテストサーバーを起動します
// IDトークン発行APIはaudienceクエリを検証せずに固定のトークンを返します
func NewOIDCServer(t *testing.T, keyPair *TestKeyPair, idToken string) *httptest.Server {
	t.Helper()

	pub := keyPair.PrivateKey.PublicKey
	jwks := map[string]any{
		"keys": []map[string]string{
			{
				"kid": keyPair.KeyID,
				"kty": "RSA",
				"alg": "RS256",
				"use": "sig",
				"n":   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
				"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(pub.E)).Bytes()),
			},
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer request-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"value": idToken})
	})
	mux.HandleFunc("/.well-known/jwks", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(jwks)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

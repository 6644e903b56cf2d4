package oidc_test

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/golang-jwt/jwt/v5"

	"github.com/na2na-p/oapi-publish/internal/infrastructure/oidc"
	"github.com/na2na-p/oapi-publish/internal/infrastructure/redis"
)

// setupRedisMock はredismockを使用してRedisクライアントのモックを作成します
func setupRedisMock(t *testing.T) (*redis.RedisClient, redismock.ClientMock) {
	t.Helper()
	db, mock := redismock.NewClientMock()
	t.Cleanup(func() { _ = db.Close() })
	return redis.NewRedisClient(db), mock
}

// generateTestRSAKey はテスト用のRSA鍵ペアを生成します
func generateTestRSAKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("RSA鍵の生成に失敗しました: %v", err)
	}

	return privateKey
}

// createMockJWKSet はモックJWK Setを作成します
func createMockJWKSet(t *testing.T, keyID string, publicKey *rsa.PublicKey) oidc.JWKSet {
	t.Helper()

	n := base64.RawURLEncoding.EncodeToString(publicKey.N.Bytes())
	e := base64.RawURLEncoding.EncodeToString(big.NewInt(int64(publicKey.E)).Bytes())

	return oidc.JWKSet{
		Keys: []oidc.JWK{
			{
				Kid: keyID,
				Kty: "RSA",
				Alg: "RS256",
				Use: "sig",
				N:   n,
				E:   e,
			},
		},
	}
}

// newJWKSServer はJWK Setを返すサーバーとリクエスト回数のカウンタを返します
func newJWKSServer(t *testing.T, jwkSet oidc.JWKSet) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(jwkSet)
	}))
	t.Cleanup(server.Close)

	return server, &hits
}

// signToken はクレームにRS256で署名します
func signToken(t *testing.T, privateKey *rsa.PrivateKey, keyID string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	if keyID != "" {
		token.Header["kid"] = keyID
	}

	tokenString, err := token.SignedString(privateKey)
	if err != nil {
		t.Fatalf("JWTトークンの署名に失敗しました: %v", err)
	}

	return tokenString
}

func githubClaims(repository string, expiresAt time.Time) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"iss":              oidc.GitHubIssuer,
		"aud":              "oapi-publish",
		"sub":              "repo:" + repository + ":ref:refs/heads/main",
		"repository":       repository,
		"ref":              "refs/heads/main",
		"actor":            "octocat",
		"job_workflow_ref": "acme/workflows/.github/workflows/publish.yml@refs/heads/main",
		"exp":              expiresAt.Unix(),
		"nbf":              now.Add(-1 * time.Minute).Unix(),
		"iat":              now.Unix(),
	}
}

// Package redis はRedis接続、キャッシュ操作、キャッシュキーとTTLの定義を提供する
// キャッシュキーとTTLはこのファイルで一元管理する
package redis

import (
	"time"
)

const (
	// KeyPrefix はこのツールが使用するすべてのキーの接頭辞
	KeyPrefix = "oapi-publish:"

	// AllowlistKeyPrefix は許可リストキャッシュの接頭辞
	// Format: oapi-publish:allowlist:{source}
	AllowlistKeyPrefix = KeyPrefix + "allowlist:"

	// OIDCJWKSKeyPrefix はJWKSキャッシュの接頭辞
	// Format: oapi-publish:oidc:jwks:{provider}
	OIDCJWKSKeyPrefix = KeyPrefix + "oidc:jwks:"

	// PreflightKey はpreflightで書き込み確認に使うキー
	PreflightKey = KeyPrefix + "preflight"
)

const (
	// DefaultAllowlistTTL は許可リストキャッシュの既定TTL (5 minutes)
	DefaultAllowlistTTL = 5 * time.Minute

	// OIDCJWKSTTL はJWKSキャッシュのTTL (24 hours)
	OIDCJWKSTTL = 24 * time.Hour

	preflightTTL = 10 * time.Second
)

// AllowlistKey は許可リストの取得元ごとのキャッシュキーを生成する
func AllowlistKey(source string) string {
	return AllowlistKeyPrefix + source
}

// OIDCJWKSKey はプロバイダーごとのJWKSキャッシュキーを生成する
func OIDCJWKSKey(provider string) string {
	return OIDCJWKSKeyPrefix + provider
}

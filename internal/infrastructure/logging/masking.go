// Package logging はslogの属性から機密情報をマスクする
package logging

import (
	"log/slog"
	"strings"
)

const redacted = "[REDACTED]"

// defaultSensitiveKeys はキー名の部分一致でマスクする
// 許可リストの件数（allowlist_size）は出力したいので allowlist 自体は含めない
var defaultSensitiveKeys = []string{
	"token",
	"authorization",
	"password",
	"secret",
	"access_key_id",
	"accesskeyid",
	"api_key",
	"apikey",
	"credential",
	"private_key",
	"npm_token",
	"node_auth_token",
	"allowed_repos",
}

type SensitiveMasker struct {
	sensitiveKeys map[string]bool
}

func NewSensitiveMasker(keys []string) *SensitiveMasker {
	m := make(map[string]bool, len(keys))
	for _, key := range keys {
		m[strings.ToLower(key)] = true
	}
	return &SensitiveMasker{sensitiveKeys: m}
}

func (sm *SensitiveMasker) MaskAttrs(_ []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		maskedAttrs := make([]any, 0, len(attrs))
		for _, attr := range attrs {
			maskedAttrs = append(maskedAttrs, sm.MaskAttrs(nil, attr))
		}
		return slog.Group(a.Key, maskedAttrs...)
	}

	if sm.IsSensitive(a.Key) {
		return slog.String(a.Key, redacted)
	}
	return a
}

// IsSensitive はキーが機密情報を表すかどうかを返す
func (sm *SensitiveMasker) IsSensitive(key string) bool {
	key = strings.ToLower(key)
	if sm.sensitiveKeys[key] {
		return true
	}
	for sensitiveKey := range sm.sensitiveKeys {
		if strings.Contains(key, sensitiveKey) {
			return true
		}
	}
	return false
}

var defaultMasker = NewSensitiveMasker(defaultSensitiveKeys)

// MaskSensitiveAttrs は slog.HandlerOptions.ReplaceAttr に渡す
func MaskSensitiveAttrs(groups []string, a slog.Attr) slog.Attr {
	return defaultMasker.MaskAttrs(groups, a)
}

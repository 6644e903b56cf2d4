package domain

import (
	"net/url"
	"path/filepath"
	"strings"
)

// SpecLocation はOpenAPI仕様書の取得元
type SpecLocation struct {
	raw   string
	url   *url.URL
	local string
}

func NewSpecLocation(raw string) (SpecLocation, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return SpecLocation{}, ErrEmptySpecURL
	}

	u, err := url.Parse(raw)
	if err == nil {
		switch u.Scheme {
		case "http", "https":
			if u.Host == "" {
				return SpecLocation{}, ErrInvalidSpecURL
			}
			return SpecLocation{raw: raw, url: u}, nil
		case "file":
			if u.Path == "" {
				return SpecLocation{}, ErrInvalidSpecURL
			}
			return SpecLocation{raw: raw, local: filepath.FromSlash(u.Path)}, nil
		case "":
			return SpecLocation{raw: raw, local: filepath.Clean(raw)}, nil
		}
	}

	return SpecLocation{}, ErrInvalidSpecURL
}

func (l SpecLocation) String() string {
	return l.raw
}

// Redacted はログやエラーに出力できる形式を返す
// URLのクエリやユーザー情報にはトークンが含まれうるため、スキーム・ホスト・パスのみを残す
func (l SpecLocation) Redacted() string {
	if l.url == nil {
		return l.local
	}
	u := url.URL{Scheme: l.url.Scheme, Host: l.url.Host, Path: l.url.Path}
	return u.String()
}

func (l SpecLocation) IsRemote() bool {
	return l.url != nil
}

func (l SpecLocation) URL() string {
	if l.url == nil {
		return ""
	}
	return l.url.String()
}

func (l SpecLocation) LocalPath() string {
	return l.local
}

// Extension は取得元パスの拡張子から保存時の拡張子を決める
func (l SpecLocation) Extension() string {
	p := l.local
	if l.url != nil {
		p = l.url.Path
	}
	switch strings.ToLower(filepath.Ext(p)) {
	case ".yaml", ".yml":
		return ".yaml"
	default:
		return ".json"
	}
}

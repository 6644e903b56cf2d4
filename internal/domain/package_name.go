package domain

import (
	"errors"
	"regexp"
	"strings"
)

const maxPackageNameLength = 214

var ErrInvalidPackageName = errors.New("invalid npm package name")

var packageNamePattern = regexp.MustCompile(`^(?:@[a-z0-9~-][a-z0-9._~-]*/)?[a-z0-9~-][a-z0-9._~-]*$`)

// PackageName はnpmパッケージ名を表す
type PackageName struct {
	value string
}

func NewPackageName(value string) (PackageName, error) {
	if value == "" || len(value) > maxPackageNameLength {
		return PackageName{}, ErrInvalidPackageName
	}
	if !packageNamePattern.MatchString(value) {
		return PackageName{}, ErrInvalidPackageName
	}
	return PackageName{value: value}, nil
}

func (p PackageName) String() string {
	return p.value
}

// Scope はスコープ付きパッケージの場合 "@scope" を返す
func (p PackageName) Scope() string {
	if !strings.HasPrefix(p.value, "@") {
		return ""
	}
	scope, _, _ := strings.Cut(p.value, "/")
	return scope
}

// PathEscaped はレジストリAPIのパスに埋め込める形式を返す
// npmの慣習に従いスコープ区切りの "/" のみを %2F に変換する
func (p PackageName) PathEscaped() string {
	return strings.Replace(p.value, "/", "%2F", 1)
}

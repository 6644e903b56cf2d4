package domain

import (
	"errors"
	"fmt"
)

// ErrUnauthorized は呼び出し元リポジトリが許可されていない場合のエラー
// メッセージに許可リストの内容を含めてはならない
var ErrUnauthorized = errors.New("repository is not authorized to run this workflow")

// AuthorizationGate は生成・公開処理の前に呼び出し元を検査するゲート
type AuthorizationGate struct {
	selfIdentifier string
}

// NewAuthorizationGate はゲートを生成する
// selfIdentifier が空の場合、自リポジトリのバイパスは無効になる
func NewAuthorizationGate(selfIdentifier string) *AuthorizationGate {
	return &AuthorizationGate{selfIdentifier: selfIdentifier}
}

// Authorize は caller が自リポジトリであるか、許可リストに完全一致で含まれる場合のみ nil を返す
func (g *AuthorizationGate) Authorize(caller string, allowlist *Allowlist) error {
	if allowlist == nil {
		return ErrMalformedAllowlist
	}
	if caller == "" {
		return ErrUnauthorized
	}
	if g.selfIdentifier != "" && caller == g.selfIdentifier {
		return nil
	}
	if allowlist.Contains(caller) {
		return nil
	}
	return fmt.Errorf("%w: repository=%s", ErrUnauthorized, caller)
}

func (g *AuthorizationGate) SelfIdentifier() string {
	return g.selfIdentifier
}

// Authorize はJSON文字列の許可リストを解析してからゲートを評価する
func Authorize(caller string, rawAllowlist string, selfIdentifier string) error {
	allowlist, err := ParseAllowlist(rawAllowlist)
	if err != nil {
		return err
	}
	return NewAuthorizationGate(selfIdentifier).Authorize(caller, allowlist)
}

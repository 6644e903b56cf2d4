package domain

import "fmt"

// CredentialKind は公開時に使用した認証方式
type CredentialKind struct {
	value string
}

var (
	CredentialKindNone  = CredentialKind{value: "none"}
	CredentialKindOIDC  = CredentialKind{value: "oidc"}
	CredentialKindToken = CredentialKind{value: "token"}
)

func (k CredentialKind) String() string {
	if k.value == "" {
		return CredentialKindNone.value
	}
	return k.value
}

// PublishCredential はnpm publishで使用する認証情報
type PublishCredential struct {
	kind  CredentialKind
	token string
}

func NewOIDCCredential(token string) PublishCredential {
	return PublishCredential{kind: CredentialKindOIDC, token: token}
}

func NewTokenCredential(token string) PublishCredential {
	return PublishCredential{kind: CredentialKindToken, token: token}
}

func (c PublishCredential) Kind() CredentialKind {
	if c.kind.value == "" {
		return CredentialKindNone
	}
	return c.kind
}

func (c PublishCredential) Token() string {
	return c.token
}

func (c PublishCredential) IsZero() bool {
	return c.token == ""
}

// String はトークンを出力しない
func (c PublishCredential) String() string {
	return fmt.Sprintf("PublishCredential{Kind: %s, Token: ***}", c.Kind())
}

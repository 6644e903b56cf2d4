package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedAllowlist は許可リストがJSON文字列配列として解釈できない場合のエラー
var ErrMalformedAllowlist = errors.New("allowlist must be a JSON array of non-empty strings")

// Allowlist はゲート操作の実行を許可されたリポジトリ識別子の順序付きリスト
// エントリの内容はエラーメッセージやログに出力しない
type Allowlist struct {
	entries []string
}

// ParseAllowlist はJSON配列の文字列から許可リストを生成する
// 不正な値を空リストとして扱うことはなく、必ず ErrMalformedAllowlist を返す
func ParseAllowlist(raw string) (*Allowlist, error) {
	trimmed := bytes.TrimSpace([]byte(raw))
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrMalformedAllowlist
	}

	var entries []string
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedAllowlist)
	}

	return NewAllowlist(entries)
}

// NewAllowlist はエントリのスライスから許可リストを生成する
func NewAllowlist(entries []string) (*Allowlist, error) {
	copied := make([]string, 0, len(entries))
	for i, entry := range entries {
		if entry == "" {
			return nil, fmt.Errorf("%w: entry %d is empty", ErrMalformedAllowlist, i)
		}
		copied = append(copied, entry)
	}
	return &Allowlist{entries: copied}, nil
}

// Contains は完全一致（大文字小文字を区別）でエントリを探す
func (a *Allowlist) Contains(caller string) bool {
	if a == nil {
		return false
	}
	for _, entry := range a.entries {
		if entry == caller {
			return true
		}
	}
	return false
}

func (a *Allowlist) Len() int {
	if a == nil {
		return 0
	}
	return len(a.entries)
}

// Entries はエントリのコピーを返す
func (a *Allowlist) Entries() []string {
	if a == nil {
		return nil
	}
	out := make([]string, len(a.entries))
	copy(out, a.entries)
	return out
}

func (a *Allowlist) String() string {
	return fmt.Sprintf("Allowlist{entries: %d}", a.Len())
}

func (a *Allowlist) MarshalJSON() ([]byte, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a.entries)
}

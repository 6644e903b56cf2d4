// Package actions はGitHub Actionsランナーの環境変数、ファイルコマンド、IDトークンAPIを扱う
package actions

import (
	"os"
	"strings"
)

// LookupEnv は環境変数の参照関数。テストでは差し替える
type LookupEnv func(key string) (string, bool)

// Environment はランナーが設定する環境変数へのアクセスを提供する
type Environment struct {
	lookup LookupEnv
}

func NewEnvironment(lookup LookupEnv) *Environment {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &Environment{lookup: lookup}
}

// MapLookup はmapをLookupEnvとして扱う
func MapLookup(m map[string]string) LookupEnv {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func (e *Environment) Get(key string) string {
	v, _ := e.lookup(key)
	return v
}

// InActions はGitHub Actions上で実行されているかを返す
func (e *Environment) InActions() bool {
	return e.Get("GITHUB_ACTIONS") == "true"
}

// Input はアクションの入力値を返す
// ランナーは名前を大文字化し空白のみを "_" に置換するため、"-" を含む名前はそのまま探し、
// 見つからなければ "-" を "_" に置換した名前でも探す
func (e *Environment) Input(name string) (string, bool) {
	key := "INPUT_" + strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
	if v, ok := e.lookup(key); ok {
		return strings.TrimSpace(v), true
	}
	if alt := strings.ReplaceAll(key, "-", "_"); alt != key {
		if v, ok := e.lookup(alt); ok {
			return strings.TrimSpace(v), true
		}
	}
	return "", false
}

package usecase

import "errors"

var (
	// ErrInvalidInput は入力値の検証に失敗した場合のエラー
	ErrInvalidInput = errors.New("invalid input")

	// ErrAllowlistUnavailable は許可リストの取得元にアクセスできない場合のエラー
	ErrAllowlistUnavailable = errors.New("allowlist source unavailable")

	// ErrCallerUnresolved は呼び出し元リポジトリを特定できない場合のエラー
	ErrCallerUnresolved = errors.New("caller repository could not be resolved")

	// ErrSpecFetchFailed はOpenAPI仕様書の取得に失敗した場合のエラー
	ErrSpecFetchFailed = errors.New("failed to fetch OpenAPI document")

	// ErrInvalidSpec は取得した文書がOpenAPI仕様書として解釈できない場合のエラー
	ErrInvalidSpec = errors.New("document is not an OpenAPI specification")

	// ErrDownstreamFailure は生成・ビルド・公開などの外部ツールが失敗した場合のエラー
	ErrDownstreamFailure = errors.New("downstream tool failed")

	// ErrNoPublishCredential はOIDCトークンもNPM_TOKENも利用できない場合のエラー
	ErrNoPublishCredential = errors.New("no npm publish credential available: configure trusted publishing (id-token: write) or NPM_TOKEN")
)

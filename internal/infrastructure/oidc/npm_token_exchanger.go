package oidc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/na2na-p/oapi-publish/internal/domain"
)

const maxResponseSize = 1 << 20

// NPMTokenExchanger はGitHub ActionsのIDトークンをnpm trusted publishingの短期トークンに交換します
type NPMTokenExchanger struct {
	httpClient *http.Client
}

func NewNPMTokenExchanger(httpClient *http.Client) *NPMTokenExchanger {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &NPMTokenExchanger{
		httpClient: httpClient,
	}
}

// ExchangeURL はパッケージごとのトークン交換エンドポイントを返します
func ExchangeURL(registry domain.RegistryURL, name domain.PackageName) string {
	return registry.String() + "/-/npm/v1/oidc/token/exchange/package/" + name.PathEscaped()
}

func (e *NPMTokenExchanger) Exchange(ctx context.Context, registry domain.RegistryURL, name domain.PackageName, idToken string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ExchangeURL(registry, name), http.NoBody)
	if err != nil {
		return "", fmt.Errorf("リクエストの作成に失敗しました: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+idToken)
	req.Header.Set("Accept", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenExchangeFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
	if err != nil {
		return "", fmt.Errorf("レスポンスの読み取りに失敗しました: %w", err)
	}
	if len(body) > maxResponseSize {
		return "", fmt.Errorf("%w: レスポンスが大きすぎます: %d bytes (最大: %d bytes)", ErrTokenExchangeFailed, len(body), maxResponseSize)
	}

	var tokenResp struct {
		Token   string `json:"token"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	// エラーレスポンスはJSONでない場合もある
	_ = json.Unmarshal(body, &tokenResp)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := tokenResp.Message
		if detail == "" {
			detail = tokenResp.Error
		}
		return "", fmt.Errorf("%w: status=%d %s", ErrTokenExchangeFailed, resp.StatusCode, detail)
	}
	if tokenResp.Token == "" {
		return "", fmt.Errorf("%w: レスポンスにtokenが含まれていません", ErrTokenExchangeFailed)
	}

	return tokenResp.Token, nil
}

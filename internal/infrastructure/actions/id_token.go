package actions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const maxIDTokenResponseSize = 64 << 10

// ErrIDTokenUnavailable はワークフローにid-token: write権限がなくIDトークンを要求できないことを示す
var ErrIDTokenUnavailable = errors.New("GitHub Actions ID token is not available (missing id-token: write permission)")

// IDTokenClient はACTIONS_ID_TOKEN_REQUEST_URLからIDトークンを取得する
type IDTokenClient struct {
	requestURL   string
	requestToken string
	httpClient   *http.Client
}

func NewIDTokenClient(env *Environment, httpClient *http.Client) *IDTokenClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &IDTokenClient{
		requestURL:   env.Get("ACTIONS_ID_TOKEN_REQUEST_URL"),
		requestToken: env.Get("ACTIONS_ID_TOKEN_REQUEST_TOKEN"),
		httpClient:   httpClient,
	}
}

func (c *IDTokenClient) Available() bool {
	return c.requestURL != "" && c.requestToken != ""
}

// RequestIDToken は指定されたaudienceのIDトークンを要求する
func (c *IDTokenClient) RequestIDToken(ctx context.Context, audience string) (string, error) {
	if !c.Available() {
		return "", ErrIDTokenUnavailable
	}

	u, err := url.Parse(c.requestURL)
	if err != nil {
		return "", fmt.Errorf("ACTIONS_ID_TOKEN_REQUEST_URLの解析に失敗しました: %w", err)
	}
	if audience != "" {
		q := u.Query()
		q.Set("audience", audience)
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("リクエストの作成に失敗しました: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.requestToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("IDトークンの要求に失敗しました: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("IDトークンの要求に失敗しました: status=%d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxIDTokenResponseSize))
	if err != nil {
		return "", fmt.Errorf("レスポンスの読み取りに失敗しました: %w", err)
	}

	var tokenResp struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", fmt.Errorf("レスポンスのパースに失敗しました: %w", err)
	}
	if tokenResp.Value == "" {
		return "", errors.New("IDトークンが空です")
	}

	return tokenResp.Value, nil
}

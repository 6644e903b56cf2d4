// Package openapi はOpenAPI仕様書の取得と検証を行う
package openapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/na2na-p/oapi-publish/internal/domain"
	"github.com/na2na-p/oapi-publish/internal/usecase"
)

const (
	defaultFetchTimeout = 30 * time.Second
	// DefaultMaxDocumentBytes は仕様書の最大サイズ（10MiB）
	DefaultMaxDocumentBytes int64 = 10 << 20
	specFileBaseName              = "openapi"
)

// Fetcher はHTTP(S)またはローカルファイルから仕様書を取得して作業ディレクトリに保存する
type Fetcher struct {
	httpClient *http.Client
	maxBytes   int64
}

type FetcherOption func(*Fetcher)

func WithHTTPClient(client *http.Client) FetcherOption {
	return func(f *Fetcher) {
		f.httpClient = client
	}
}

func WithMaxBytes(n int64) FetcherOption {
	return func(f *Fetcher) {
		f.maxBytes = n
	}
}

func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		httpClient: &http.Client{Timeout: defaultFetchTimeout},
		maxBytes:   DefaultMaxDocumentBytes,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var _ usecase.SpecFetcher = (*Fetcher)(nil)

func (f *Fetcher) Fetch(ctx context.Context, location domain.SpecLocation, destDir string) (string, error) {
	var (
		body []byte
		err  error
	)
	if location.IsRemote() {
		body, err = f.fetchRemote(ctx, location)
	} else {
		body, err = f.readLocal(location.LocalPath())
	}
	if err != nil {
		return "", err
	}

	version, err := Validate(body)
	if err != nil {
		return "", err
	}

	dest := filepath.Join(destDir, specFileBaseName+location.Extension())
	if err := os.WriteFile(dest, body, 0o600); err != nil {
		return "", fmt.Errorf("%w: failed to write %s: %w", usecase.ErrSpecFetchFailed, dest, err)
	}

	slog.InfoContext(ctx, "fetched OpenAPI document",
		"spec_url", location.Redacted(),
		"spec_version", version,
		"bytes", len(body),
	)
	return dest, nil
}

func (f *Fetcher) fetchRemote(ctx context.Context, location domain.SpecLocation) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location.URL(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: invalid request", usecase.ErrSpecFetchFailed, location.Redacted())
	}
	req.Header.Set("Accept", "application/json, application/yaml, application/x-yaml, text/yaml, */*")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		// url.Error はクエリを含むURL全体を出力するため、原因のエラーだけを残す
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, fmt.Errorf("%w: GET %s: %w", usecase.ErrSpecFetchFailed, location.Redacted(), err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: GET %s: unexpected status code %d", usecase.ErrSpecFetchFailed, location.Redacted(), resp.StatusCode)
	}

	return f.readLimited(resp.Body)
}

func (f *Fetcher) readLocal(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", usecase.ErrSpecFetchFailed, err)
	}
	defer func() { _ = file.Close() }()

	return f.readLimited(file)
}

func (f *Fetcher) readLimited(r io.Reader) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read document: %w", usecase.ErrSpecFetchFailed, err)
	}
	if int64(len(body)) > f.maxBytes {
		return nil, fmt.Errorf("%w: document exceeds %d bytes", usecase.ErrSpecFetchFailed, f.maxBytes)
	}
	return body, nil
}

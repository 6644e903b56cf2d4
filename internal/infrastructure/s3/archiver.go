package s3

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/na2na-p/oapi-publish/internal/domain"
	"github.com/na2na-p/oapi-publish/internal/usecase"
)

const archiveContentType = "application/gzip"

// ObjectUploader はアーカイブのアップロード先
type ObjectUploader interface {
	PutObject(ctx context.Context, key string, body io.Reader, contentLength int64, contentType string) error
}

// excludedEntries はアーカイブに含めないエントリ
// .npmrc は認証設定を含むため必ず除外する
var excludedEntries = map[string]struct{}{
	"node_modules": {},
	".npmrc":       {},
}

// ArtifactArchiver は生成されたクライアントをtar.gzにしてS3に保存する
type ArtifactArchiver struct {
	uploader ObjectUploader
	prefix   string
}

func NewArtifactArchiver(uploader ObjectUploader, prefix string) *ArtifactArchiver {
	return &ArtifactArchiver{
		uploader: uploader,
		prefix:   strings.Trim(prefix, "/"),
	}
}

var _ usecase.ArtifactArchiver = (*ArtifactArchiver)(nil)

// ArtifactKey は <prefix>/<package-name>/<version>/<run-id>.tar.gz を返す
func ArtifactKey(prefix string, request domain.PublishRequest, runID string) string {
	key := path.Join(request.Name.String(), request.Version.String(), runID+".tar.gz")
	if prefix == "" {
		return key
	}
	return path.Join(prefix, key)
}

func (a *ArtifactArchiver) Archive(ctx context.Context, packageDir string, request domain.PublishRequest, runID string) (string, error) {
	var buf bytes.Buffer
	if err := WriteTarGz(&buf, packageDir); err != nil {
		return "", err
	}

	key := ArtifactKey(a.prefix, request, runID)
	if err := a.uploader.PutObject(ctx, key, bytes.NewReader(buf.Bytes()), int64(buf.Len()), archiveContentType); err != nil {
		return "", err
	}
	return key, nil
}

// WriteTarGz は root 配下をtar.gzとして書き出す
// エントリ名は root からの相対パスでスラッシュ区切り
func WriteTarGz(w io.Writer, root string) error {
	gz := gzip.NewWriter(w)
	tw := tar.NewWriter(gz)

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		if _, excluded := excludedEntries[d.Name()]; excluded {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		header, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		header.Name = filepath.ToSlash(rel)
		if d.IsDir() {
			header.Name += "/"
		}
		if err := tw.WriteHeader(header); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		f, err := os.Open(p)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		_, err = io.Copy(tw, f)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to archive %s: %w", root, err)
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("failed to finalize tar: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("failed to finalize gzip: %w", err)
	}
	return nil
}

package actions

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/na2na-p/oapi-publish/internal/domain"
)

// PublishOutputs はステップの出力値を組み立てる
func PublishOutputs(result *domain.PublishResult) map[string]string {
	req := result.Request()
	return map[string]string{
		"package-name":    req.Name.String(),
		"package-version": req.Version.String(),
		"published":       strconv.FormatBool(result.Published()),
		"run-id":          result.RunID(),
	}
}

// RenderSummary はジョブサマリー用のMarkdownを組み立てる
// 許可リストの内容や認証情報は含めない
func RenderSummary(result *domain.PublishResult) string {
	req := result.Request()

	status := "Published"
	if req.DryRun {
		status = "Dry run (not published)"
	}

	var b strings.Builder
	b.WriteString("### OpenAPI client publish\n\n")
	b.WriteString("| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Package | `%s@%s` |\n", req.Name, req.Version)
	fmt.Fprintf(&b, "| Status | %s |\n", status)
	fmt.Fprintf(&b, "| Registry | %s |\n", req.Registry)
	fmt.Fprintf(&b, "| Dist tag | `%s` |\n", req.Version.DistTag())
	fmt.Fprintf(&b, "| Credential | %s |\n", result.Credential())
	if key := result.ArchiveKey(); key != "" {
		fmt.Fprintf(&b, "| Archive | `%s` |\n", key)
	}
	fmt.Fprintf(&b, "| Run ID | `%s` |\n", result.RunID())
	fmt.Fprintf(&b, "| Duration | %s |\n", result.Duration().Round(10*time.Millisecond))
	return b.String()
}

// RenderFailureSummary は失敗時のジョブサマリーを組み立てる
func RenderFailureSummary(stage, message string) string {
	return fmt.Sprintf("### OpenAPI client publish failed\n\n**%s**: %s\n", stage, message)
}

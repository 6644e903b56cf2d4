package actions

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Reporter はジョブの出力、ステップサマリー、アノテーションを書き出す
// GITHUB_OUTPUT / GITHUB_STEP_SUMMARY が未設定の場合は何もしない
type Reporter struct {
	env    *Environment
	stdout io.Writer
}

func NewReporter(env *Environment, stdout io.Writer) *Reporter {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Reporter{env: env, stdout: stdout}
}

// SetOutputs はステップの出力を GITHUB_OUTPUT に追記する
// 値に改行が含まれても壊れないよう、常にランダムな区切り文字の複数行形式で書く
func (r *Reporter) SetOutputs(outputs map[string]string) error {
	path := r.env.Get("GITHUB_OUTPUT")
	if path == "" || len(outputs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(outputs))
	for k := range outputs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		delimiter := "ghadelimiter_" + uuid.NewString()
		v := outputs[k]
		if strings.Contains(k, delimiter) || strings.Contains(v, delimiter) {
			return fmt.Errorf("output %q contains the delimiter", k)
		}
		fmt.Fprintf(&b, "%s<<%s\n%s\n%s\n", k, delimiter, v, delimiter)
	}

	return appendFile(path, b.String())
}

// AppendSummary はMarkdownをジョブサマリーに追記する
func (r *Reporter) AppendSummary(markdown string) error {
	path := r.env.Get("GITHUB_STEP_SUMMARY")
	if path == "" || markdown == "" {
		return nil
	}
	if !strings.HasSuffix(markdown, "\n") {
		markdown += "\n"
	}
	return appendFile(path, markdown)
}

// Error はエラーアノテーションを出力する
func (r *Reporter) Error(message string) {
	fmt.Fprintf(r.stdout, "::error::%s\n", escapeData(message))
}

// Notice は情報アノテーションを出力する
func (r *Reporter) Notice(message string) {
	fmt.Fprintf(r.stdout, "::notice::%s\n", escapeData(message))
}

// AddMask はログ上で値をマスクするようランナーに指示する
func (r *Reporter) AddMask(value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(r.stdout, "::add-mask::%s\n", escapeData(value))
}

func escapeData(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	return strings.ReplaceAll(s, "\n", "%0A")
}

func appendFile(path, content string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteString(content); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

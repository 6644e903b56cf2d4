package process

import "fmt"

// ExitError はコマンドが0以外の終了コードで終了した場合のエラー
// Output はツールの出力をそのまま保持する
type ExitError struct {
	Command  string
	ExitCode int
	Output   string
	Err      error
}

func (e *ExitError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("%s exited with code %d", e.Command, e.ExitCode)
	}
	return fmt.Sprintf("%s exited with code %d:\n%s", e.Command, e.ExitCode, e.Output)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

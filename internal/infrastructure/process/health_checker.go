package process

import (
	"context"
	"fmt"
	"os/exec"
)

// LookPathFunc はコマンドのフルパスを解決する
type LookPathFunc func(file string) (string, error)

// CommandHealthChecker はコマンドがPATH上に存在するか確認する
type CommandHealthChecker struct {
	name     string
	command  string
	lookPath LookPathFunc
}

// NewCommandHealthChecker は新しいCommandHealthCheckerを生成する
// lookPath がnilの場合は exec.LookPath を使用する
func NewCommandHealthChecker(name, command string, lookPath LookPathFunc) *CommandHealthChecker {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	return &CommandHealthChecker{
		name:     name,
		command:  command,
		lookPath: lookPath,
	}
}

func (c *CommandHealthChecker) Name() string {
	return c.name
}

func (c *CommandHealthChecker) Check(_ context.Context) error {
	if _, err := c.lookPath(c.command); err != nil {
		return fmt.Errorf("%s not found on PATH: %w", c.command, err)
	}
	return nil
}

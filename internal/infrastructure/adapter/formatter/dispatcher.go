// Package formatter dispatches edited files to the matching language
// formatter. Formatting is best-effort: a missing formatter binary or an
// unknown file type is a silent no-op, because the edit has already happened
// and a formatting hook must never block the workflow.
package formatter

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// DefaultTimeout bounds a single formatter run.
const DefaultTimeout = 30 * time.Second

// Tool is one external formatter invocation; Args come before the file path.
type Tool struct {
	Name string
	Args []string
}

// toolsByExtension maps file extensions to their formatter.
var toolsByExtension = map[string]Tool{
	".go":   {Name: "gofmt", Args: []string{"-w"}},
	".py":   {Name: "black", Args: []string{"-q"}},
	".rs":   {Name: "rustfmt"},
	".sh":   {Name: "shfmt", Args: []string{"-w"}},
	".js":   {Name: "prettier", Args: []string{"--write"}},
	".jsx":  {Name: "prettier", Args: []string{"--write"}},
	".ts":   {Name: "prettier", Args: []string{"--write"}},
	".tsx":  {Name: "prettier", Args: []string{"--write"}},
	".json": {Name: "prettier", Args: []string{"--write"}},
	".css":  {Name: "prettier", Args: []string{"--write"}},
	".scss": {Name: "prettier", Args: []string{"--write"}},
	".md":   {Name: "prettier", Args: []string{"--write"}},
	".html": {Name: "prettier", Args: []string{"--write"}},
	".yaml": {Name: "prettier", Args: []string{"--write"}},
	".yml":  {Name: "prettier", Args: []string{"--write"}},
}

// ToolFor returns the formatter responsible for path, if any.
func ToolFor(path string) (Tool, bool) {
	tool, ok := toolsByExtension[filepath.Ext(path)]
	return tool, ok
}

// Dispatcher runs formatters against edited files.
type Dispatcher struct {
	timeout time.Duration

	// injectable for tests
	lookPath func(string) (string, error)
	run      func(ctx context.Context, name string, args ...string) error
}

// NewDispatcher returns a Dispatcher with the default timeout.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		timeout:  DefaultTimeout,
		lookPath: exec.LookPath,
		run:      runCommand,
	}
}

// Format formats path in place. It returns the name of the formatter that
// ran, or "" when nothing applied (missing file, unknown extension, or
// formatter not installed). A non-nil error means the formatter itself
// failed; callers report it but do not treat it as fatal.
func (d *Dispatcher) Format(ctx context.Context, path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", nil
	}
	tool, ok := ToolFor(path)
	if !ok {
		return "", nil
	}
	if _, err := d.lookPath(tool.Name); err != nil {
		return "", nil
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	args := append(append([]string{}, tool.Args...), path)
	if err := d.run(ctx, tool.Name, args...); err != nil {
		return tool.Name, fmt.Errorf("%s %s: %w", tool.Name, path, err)
	}
	return tool.Name, nil
}

func runCommand(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run()
}

// Package audit persists the append-only command audit log: one file per
// calendar day, one JSON object per line, one line per evaluated command.
//
// Log files accumulate indefinitely; this package deliberately implements no
// rotation or deletion.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Entry is one audit record describing a single evaluated command.
// The command field is pre-truncated by the caller.
type Entry struct {
	Timestamp string `json:"timestamp"`
	Command   string `json:"command"`
	Blocked   bool   `json:"blocked"`
	Reason    string `json:"reason"`
}

// FileLogger appends entries to dated files under a log directory, creating
// the directory on first use.
type FileLogger struct {
	dir string
	now func() time.Time
}

// NewFileLogger returns a logger writing under dir.
func NewFileLogger(dir string) *FileLogger {
	return &FileLogger{dir: dir, now: time.Now}
}

// FileName returns the log file name for the given local date.
func FileName(t time.Time) string {
	return fmt.Sprintf("commands_%s.log", t.Format("20060102"))
}

// Append writes entry as one JSON line to today's log file. The file is
// opened in append mode and the whole line lands in a single Write call, so
// concurrent invocations cannot interleave partial lines.
func (l *FileLogger) Append(entry Entry) error {
	if err := os.MkdirAll(l.dir, 0o750); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode audit entry: %w", err)
	}

	path := filepath.Join(l.dir, FileName(l.now()))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		f.Close()
		return fmt.Errorf("append audit entry: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close audit log: %w", err)
	}
	return nil
}

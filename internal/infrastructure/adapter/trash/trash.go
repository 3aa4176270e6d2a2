// Package trash moves files to a recoverable location instead of deleting
// them. Each invocation gets its own timestamped batch directory, so nothing
// is ever overwritten and recovery is a plain file move back.
package trash

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Mover relocates files into the trash directory.
type Mover struct {
	dir string
	now func() time.Time
}

// NewMover returns a Mover writing under dir.
func NewMover(dir string) *Mover {
	return &Mover{dir: dir, now: time.Now}
}

// Move relocates path into a timestamped batch directory and returns the
// destination. Name collisions within a batch get a numeric suffix. Rename
// is attempted first; a cross-device move falls back to copy-and-remove.
func (m *Mover) Move(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("trash %s: %w", path, err)
	}

	batch := filepath.Join(m.dir, m.now().Format("20060102-150405"))
	if err := os.MkdirAll(batch, 0o750); err != nil {
		return "", fmt.Errorf("create trash batch: %w", err)
	}

	dest := uniquePath(filepath.Join(batch, filepath.Base(path)))
	if err := os.Rename(path, dest); err == nil {
		return dest, nil
	}
	if info.IsDir() {
		return "", fmt.Errorf("trash %s: cannot move directory across filesystems", path)
	}
	if err := copyFile(path, dest, info.Mode()); err != nil {
		return "", fmt.Errorf("trash %s: %w", path, err)
	}
	if err := os.Remove(path); err != nil {
		return "", fmt.Errorf("remove original %s: %w", path, err)
	}
	return dest, nil
}

// uniquePath returns path, or the first "name-N" variant (before the
// extension) that does not exist yet.
func uniquePath(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}
	ext := filepath.Ext(path)
	stem := path[:len(path)-len(ext)]
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d%s", stem, i, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

func copyFile(src, dest string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode.Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

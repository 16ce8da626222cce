// Package fsutil provides utility functions for working with the filesystem.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// EnsureDir creates a directory if it does not exist.
func EnsureDir(path string) error {
	err := os.MkdirAll(path, os.ModePerm)
	if err != nil {
		return fmt.Errorf("fsutil.EnsureDir: failed to create directory %s: %w", path, err)
	}
	return nil
}

// FileExists reports whether path exists and is a regular file.
// A missing path is not an error; any other stat failure is.
func FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("fsutil.FileExists: failed to stat %s: %w", path, err)
	}
	return info.Mode().IsRegular(), nil
}

// ReadText reads a whole file and returns it along with its permission bits.
func ReadText(path string) (string, fs.FileMode, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", 0, fmt.Errorf("fsutil.ReadText: failed to stat %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", 0, fmt.Errorf("fsutil.ReadText: failed to read %s: %w", path, err)
	}
	return string(data), info.Mode().Perm(), nil
}

// WriteText overwrites path with content. A zero perm means 0644.
func WriteText(path, content string, perm fs.FileMode) error {
	if perm == 0 {
		perm = 0644
	}
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		return fmt.Errorf("fsutil.WriteText: failed to write %s: %w", path, err)
	}
	return nil
}

// RemoveIfEmpty removes dir when it has no entries and reports whether it did.
func RemoveIfEmpty(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, fmt.Errorf("fsutil.RemoveIfEmpty: failed to read %s: %w", dir, err)
	}
	if len(entries) > 0 {
		return false, nil
	}
	if err := os.Remove(dir); err != nil {
		return false, fmt.Errorf("fsutil.RemoveIfEmpty: failed to remove %s: %w", dir, err)
	}
	return true, nil
}

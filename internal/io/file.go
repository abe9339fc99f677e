package ioutils

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// FindBaseDir finds the project base directory by walking upward from start.
//
// start itself is checked first, then each of its ancestors up to the
// filesystem root. The first directory containing any of the markers (a
// file or directory name, e.g. ".git" or "go.mod") is returned. If no
// ancestor contains a marker, the parent of start is returned.
//
// start is typically the path of the running executable, so checking start
// itself only matters when it is a directory.
//
// Example:
//
//	// /src/proj/.git exists
//	FindBaseDir("/src/proj/bin/bing-wallpaper", []string{".git"}) // Returns "/src/proj"
//	FindBaseDir("/opt/bin/bing-wallpaper", []string{".git"})      // Returns "/opt/bin"
func FindBaseDir(start string, markers []string) string {
	start = filepath.Clean(start)
	for dir := start; ; {
		for _, marker := range markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return filepath.Dir(start)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// Exists reports whether anything exists at path.
//
// Errors other than fs.ErrNotExist (e.g. permission denied) are returned
// so callers don't mistake an unreadable path for a missing one.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// WriteFileAtomic replaces the file at path with data.
//
// The data is written to a temporary file in the same directory which is
// then renamed over path, so readers see either the old or the new content
// and never a truncated file. An existing file keeps its mode; a new file
// gets 0644.
func WriteFileAtomic(path string, data []byte) error {
	existed, err := Exists(path)
	if err != nil {
		return err
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return err
	}
	if !existed {
		return os.Chmod(path, 0644)
	}
	return nil
}

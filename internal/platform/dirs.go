package platform

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"runtime"
)

// DirPerm is the mode used for every directory the generator creates.
const DirPerm os.FileMode = 0755

// ErrOccupied is returned when a directory that must be empty is not.
var ErrOccupied = errors.New("directory already exists and is not empty")

// EnsureDir makes sure path exists as a directory. When requireEmpty is set
// an existing directory must have no entries.
func EnsureDir(path string, requireEmpty bool) error {
	info, err := os.Stat(path)
	switch {
	case err == nil:
		if !info.IsDir() {
			return fmt.Errorf("%s exists but is not a directory", path)
		}
		if requireEmpty {
			empty, err := isEmptyDir(path)
			if err != nil {
				return err
			}
			if !empty {
				return fmt.Errorf("%s: %w", path, ErrOccupied)
			}
		}
		return nil
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(path, DirPerm); err != nil {
			return fmt.Errorf("creating directory %s: %w", path, err)
		}
		return nil
	default:
		return fmt.Errorf("checking %s: %w", path, err)
	}
}

// EnsureDirs calls EnsureDir for each path in order, stopping at the first
// failure.
func EnsureDirs(paths []string, requireEmpty bool) error {
	for _, p := range paths {
		if err := EnsureDir(p, requireEmpty); err != nil {
			return err
		}
	}
	return nil
}

// MkdirIfAbsent creates path and any missing parents. An existing directory
// is not an error, including one created concurrently by another process.
// Every other failure is returned.
func MkdirIfAbsent(path string) error {
	if err := os.MkdirAll(path, DirPerm); err != nil && !errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s exists but is not a directory", path)
	}
	return nil
}

// Chmod sets permission bits on path. Windows has no Unix permission bits,
// so it is a no-op there.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

func isEmptyDir(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	_, err = f.Readdirnames(1)
	if errors.Is(err, io.EOF) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	return false, nil
}

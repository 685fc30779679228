package fscopy

import (
	"fmt"
	"os"

	"github.com/couchapp/couchapp/internal/platform"
)

// CopyFile copies the file src to dst, overwriting dst, and keeps the source
// permissions and modification time. A missing src is reported with an error
// wrapping fs.ErrNotExist.
func CopyFile(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}
	if srcInfo.IsDir() {
		return fmt.Errorf("%s is a directory", src)
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dst, data, srcInfo.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	// WriteFile leaves an existing file's mode alone and is subject to umask.
	if err := platform.Chmod(dst, srcInfo.Mode().Perm()); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", dst, err)
	}
	if err := os.Chtimes(dst, srcInfo.ModTime(), srcInfo.ModTime()); err != nil {
		return fmt.Errorf("setting times on %s: %w", dst, err)
	}
	return nil
}

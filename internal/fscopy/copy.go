package fscopy

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/couchapp/couchapp/internal/platform"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

var (
	// ErrNotDirectory is returned when the merge source is missing or is not
	// a directory.
	ErrNotDirectory = errors.New("source is not a directory")

	// ErrDestinationExists is returned when a top-level source directory
	// would be copied onto a path that already exists at the destination.
	ErrDestinationExists = errors.New("destination already exists")

	// ErrMetadataUnsupported is returned by a Changes preserver when the
	// destination filesystem cannot set modes and modification times.
	ErrMetadataUnsupported = errors.New("destination cannot keep file metadata")
)

// Preserver applies the mode and modification time of a source entry to the
// copied entry at the slash-separated path p.
type Preserver func(p string, info os.FileInfo) error

// OnDisk returns a Preserver for a destination rooted at the on-disk
// directory root.
func OnDisk(root string) Preserver {
	return func(p string, info os.FileInfo) error {
		full := filepath.Join(root, filepath.FromSlash(p))
		if err := platform.Chmod(full, info.Mode().Perm()); err != nil {
			return fmt.Errorf("setting permissions on %s: %w", full, err)
		}
		mtime := info.ModTime()
		if err := os.Chtimes(full, mtime, mtime); err != nil {
			return fmt.Errorf("setting times on %s: %w", full, err)
		}
		return nil
	}
}

// Changes returns a Preserver that goes through dst's billy.Change methods.
// It fails with ErrMetadataUnsupported when dst does not implement them.
func Changes(dst billy.Filesystem) Preserver {
	change, ok := dst.(billy.Change)
	return func(p string, info os.FileInfo) error {
		if !ok {
			return fmt.Errorf("%s: %w", p, ErrMetadataUnsupported)
		}
		// The full mode keeps the directory bit on in-memory filesystems.
		if err := change.Chmod(p, info.Mode()); err != nil {
			return err
		}
		mtime := info.ModTime()
		return change.Chtimes(p, mtime, mtime)
	}
}

// MergeDir merge-copies the on-disk directory src into dest, creating dest
// when it is absent. Every copied entry keeps its source mode and
// modification time.
func MergeDir(src, dest string) error {
	info, err := os.Stat(src)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("source %q: %w", src, ErrNotDirectory)
	}
	if err := platform.EnsureDir(dest, false); err != nil {
		return err
	}
	if err := Merge(osfs.New(src), osfs.New(dest), OnDisk(dest)); err != nil {
		return fmt.Errorf("copying %s to %s: %w", src, dest, err)
	}
	return nil
}

// Merge copies every entry at the root of src onto the root of dst, handing
// each copied entry to keep. A nil keep copies content only.
// Partially copied state is left in place when an entry fails.
func Merge(src, dst billy.Filesystem, keep Preserver) error {
	if keep == nil {
		keep = func(string, os.FileInfo) error { return nil }
	}

	entries, err := src.ReadDir("/")
	if err != nil {
		return err
	}

	for _, entry := range entries {
		name := entry.Name()
		info, err := follow(src, name, entry)
		if err != nil {
			return err
		}

		if info.IsDir() {
			if _, err := dst.Lstat(name); err == nil {
				return fmt.Errorf("%s: %w", name, ErrDestinationExists)
			} else if !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			if err := copyTree(src, dst, keep, name, info); err != nil {
				return err
			}
			continue
		}

		if err := copyFile(src, dst, keep, name, info); err != nil {
			return err
		}
	}

	return nil
}

// copyTree recursively copies the directory p from src to the same path in dst.
func copyTree(src, dst billy.Filesystem, keep Preserver, p string, info os.FileInfo) error {
	if err := dst.MkdirAll(p, info.Mode().Perm()); err != nil {
		return err
	}

	entries, err := src.ReadDir(p)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		child := path.Join(p, entry.Name())
		childInfo, err := follow(src, child, entry)
		if err != nil {
			return err
		}
		if childInfo.IsDir() {
			if err := copyTree(src, dst, keep, child, childInfo); err != nil {
				return err
			}
			continue
		}
		if err := copyFile(src, dst, keep, child, childInfo); err != nil {
			return err
		}
	}

	return keep(p, info)
}

// copyFile copies a single file, replacing any existing one.
func copyFile(src, dst billy.Filesystem, keep Preserver, p string, info os.FileInfo) error {
	in, err := src.Open(p)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := dst.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	return keep(p, info)
}

// follow resolves symlinked entries to the file or directory they point at.
func follow(src billy.Filesystem, p string, info os.FileInfo) (os.FileInfo, error) {
	if info.Mode()&os.ModeSymlink == 0 {
		return info, nil
	}
	return src.Stat(p)
}

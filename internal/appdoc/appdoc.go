package appdoc

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
)

// File names inside an app directory.
const (
	IDFile     = "_id"
	RCFile     = ".couchapprc"
	IgnoreFile = ".couchappignore"
)

const defaultRC = "{}\n"

const defaultIgnore = `[
  // filenames matching these regexps will not be pushed to the database
  // uncomment to activate; separate entries with ","
  // ".*~$"
  // ".*\\.swp$"
  // ".*\\.bak$"
]
`

// Document is the design-document metadata bound to one app directory.
type Document struct {
	dir    string
	rc     map[string]interface{}
	ignore []string
}

// DesignID returns the design document id for an app directory,
// "_design/<basename>".
func DesignID(appDir string) string {
	return "_design/" + filepath.Base(filepath.Clean(appDir))
}

// SaveID writes id to the app's _id file, replacing any existing content.
func SaveID(appDir, id string) error {
	p := filepath.Join(appDir, IDFile)
	if err := os.WriteFile(p, []byte(id), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", p, err)
	}
	return nil
}

// Create writes the default .couchapprc and .couchappignore into appDir
// when they are absent and returns the opened document. Existing files are
// left untouched.
func Create(appDir string) (*Document, error) {
	if err := writeIfAbsent(filepath.Join(appDir, RCFile), defaultRC); err != nil {
		return nil, err
	}
	if err := writeIfAbsent(filepath.Join(appDir, IgnoreFile), defaultIgnore); err != nil {
		return nil, err
	}
	return Open(appDir)
}

// Open reads the document files of appDir. Missing files are treated as
// empty; malformed ones are an error.
func Open(appDir string) (*Document, error) {
	d := &Document{dir: appDir, rc: map[string]interface{}{}}

	if err := readJSONC(filepath.Join(appDir, RCFile), &d.rc); err != nil {
		return nil, err
	}
	if err := readJSONC(filepath.Join(appDir, IgnoreFile), &d.ignore); err != nil {
		return nil, err
	}
	return d, nil
}

// Dir returns the app directory the document is bound to.
func (d *Document) Dir() string { return d.dir }

// RC returns the parsed .couchapprc settings.
func (d *Document) RC() map[string]interface{} { return d.rc }

// Ignores returns the active .couchappignore patterns.
func (d *Document) Ignores() []string { return d.ignore }

// DocID returns the id stored in _id, or the id derived from the directory
// name when the file is absent or empty.
func (d *Document) DocID() (string, error) {
	data, err := os.ReadFile(filepath.Join(d.dir, IDFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DesignID(d.dir), nil
		}
		return "", fmt.Errorf("reading %s: %w", IDFile, err)
	}
	if id := strings.TrimSpace(string(data)); id != "" {
		return id, nil
	}
	return DesignID(d.dir), nil
}

func writeIfAbsent(path, content string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil
		}
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

func readJSONC(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(jsonc.ToJSON(data), v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

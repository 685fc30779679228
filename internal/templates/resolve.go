package templates

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/couchapp/couchapp/internal/branding"
	"go.uber.org/zap"
)

// Template payload types.
const (
	TypeApp       = "app"
	TypeFunctions = "functions"
	TypeVendor    = "vendor"
)

// DefaultSet is the name that selects the root template set.
const DefaultSet = "default"

// Types lists the valid payload types. They are reserved and cannot be used
// as template set names.
var Types = []string{TypeApp, TypeFunctions, TypeVendor}

var (
	// ErrInvalidType is returned for a payload type outside Types.
	ErrInvalidType = errors.New("invalid template type")

	// ErrNotFound is returned when no search root holds the requested template.
	ErrNotFound = errors.New("template not found")
)

// Resolver finds template directories across an ordered list of roots.
type Resolver struct {
	roots  func() []string
	logger *zap.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithRoots replaces the platform search roots. The function is called on
// every lookup.
func WithRoots(roots func() []string) Option {
	return func(r *Resolver) { r.roots = roots }
}

// WithLogger sets the logger that traces each probe.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Resolver) { r.logger = logger }
}

// NewResolver returns a Resolver searching PlatformRoots by default.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		roots:  PlatformRoots,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Roots returns the current search roots in precedence order.
func (r *Resolver) Roots() []string {
	return r.roots()
}

// Lookup returns the first <root>/templates/<name>/<type> directory. The
// name "default" selects the root set, and nested names use "/" as the
// separator. An empty type selects the set directory itself. ok is false
// when no root matches.
func (r *Resolver) Lookup(name, tmplType string) (dir string, ok bool, err error) {
	if !validType(tmplType) {
		return "", false, fmt.Errorf("%w %q", ErrInvalidType, tmplType)
	}
	rel := Probe(name, tmplType)

	dir, ok = FirstDir(r.roots(), func(root string) string {
		return filepath.Join(root, rel)
	}, r.logger)
	return dir, ok, nil
}

// Resolve is Lookup for required templates: a miss is an ErrNotFound error
// naming <name>/<type>.
func (r *Resolver) Resolve(name, tmplType string) (string, error) {
	dir, ok, err := r.Lookup(name, tmplType)
	if err != nil {
		return "", err
	}
	if !ok {
		r.logger.Info("template not found, list the search roots with '" +
			branding.CLIName() + " templates paths'")
		return "", fmt.Errorf("%w: %q", ErrNotFound, NormalizeName(name)+"/"+tmplType)
	}
	return dir, nil
}

// Probe returns the root-relative path checked for a template, for example
// templates/vuejs/myvue/app. Empty components are dropped.
func Probe(name, tmplType string) string {
	return filepath.Join("templates", filepath.FromSlash(NormalizeName(name)), tmplType)
}

// NormalizeName maps "default" to the empty root set name and cleans nested
// names.
func NormalizeName(name string) string {
	if name == DefaultSet || name == "" {
		return ""
	}
	name = filepath.ToSlash(filepath.Clean(filepath.FromSlash(name)))
	if name == "." {
		return ""
	}
	return strings.Trim(name, "/")
}

// IsReserved reports whether name is one of the payload type names.
func IsReserved(name string) bool {
	for _, t := range Types {
		if name == t {
			return true
		}
	}
	return false
}

// FirstDir probes candidate(root) for each root in order and returns the
// first one that exists as a directory. Every attempt is logged at debug
// level.
func FirstDir(roots []string, candidate func(root string) string, logger *zap.Logger) (string, bool) {
	for _, root := range roots {
		p := candidate(filepath.Clean(root))
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			logger.Debug("template path match", zap.String("path", p))
			return p, true
		}
		logger.Debug("template search path not found", zap.String("path", p))
	}
	return "", false
}

func validType(t string) bool {
	return t == "" || IsReserved(t)
}

package scaffold

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/couchapp/couchapp/internal/appdoc"
	"github.com/couchapp/couchapp/internal/fscopy"
	"github.com/couchapp/couchapp/internal/platform"
	"github.com/couchapp/couchapp/internal/templates"
	"go.uber.org/zap"
)

// AppTree is the set of subdirectories every initialized app contains.
var AppTree = []string{
	"_attachments",
	"filters",
	"lists",
	"shows",
	"updates",
	"views",
}

// DocumentCreator initializes the design-document files of an app directory.
type DocumentCreator func(appDir string) error

// Generator scaffolds apps and functions from template sets.
type Generator struct {
	resolver  *templates.Resolver
	logger    *zap.Logger
	createDoc DocumentCreator
}

// Option configures a Generator.
type Option func(*Generator)

// WithResolver sets the template resolver.
func WithResolver(r *templates.Resolver) Option {
	return func(g *Generator) { g.resolver = r }
}

// WithLogger sets the logger used for warnings and fallbacks.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) { g.logger = logger }
}

// WithDocumentCreator replaces the design-document initializer.
func WithDocumentCreator(fn DocumentCreator) Option {
	return func(g *Generator) { g.createDoc = fn }
}

// New returns a Generator. Without options it searches the platform roots
// and writes .couchapprc and .couchappignore through appdoc.
func New(opts ...Option) *Generator {
	g := &Generator{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(g)
	}
	if g.resolver == nil {
		g.resolver = templates.NewResolver(templates.WithLogger(g.logger))
	}
	if g.createDoc == nil {
		g.createDoc = func(appDir string) error {
			_, err := appdoc.Create(appDir)
			return err
		}
	}
	return g
}

// InitBasic creates a bare app at path. path must be absent or empty.
// InitBasic itself writes only _id and the standard tree; .couchapprc and
// .couchappignore come from the document creator, appdoc.Create by default.
//
//	path/
//	    _id
//	    .couchapprc       (document creator)
//	    .couchappignore   (document creator)
//	    _attachments/ filters/ lists/ shows/ updates/ views/
func (g *Generator) InitBasic(path string) error {
	if err := platform.EnsureDir(path, true); err != nil {
		return err
	}
	if err := platform.EnsureDirs(appTree(path), true); err != nil {
		return err
	}
	return g.finishApp(path)
}

// InitTemplate creates an app at path from the named template set. path may
// already hold files; the set's app payload is merged over it.
func (g *Generator) InitTemplate(path, template string) error {
	if templates.IsReserved(template) {
		return fmt.Errorf("%w: %q (reserved: %s)", ErrAmbiguousTemplate, template, strings.Join(templates.Types, ", "))
	}
	name := templates.NormalizeName(template)

	src, err := g.resolver.Resolve(name, templates.TypeApp)
	if err != nil {
		return err
	}
	if err := fscopy.MergeDir(src, path); err != nil {
		return err
	}

	// The app payload may already define some of these.
	if err := platform.EnsureDirs(appTree(path), false); err != nil {
		return err
	}

	vendorSrc, ok, err := g.resolver.Lookup(name, templates.TypeVendor)
	if err != nil {
		return err
	}
	if !ok {
		g.logger.Debug("vendor not found in template set, falling back to default vendor",
			zap.String("template", name))
		if vendorSrc, err = g.resolver.Resolve("", templates.TypeVendor); err != nil {
			return err
		}
	}
	if err := fscopy.MergeDir(vendorSrc, filepath.Join(path, "vendor")); err != nil {
		return err
	}

	return g.finishApp(path)
}

// finishApp writes the _id marker and the design-document files.
func (g *Generator) finishApp(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}
	if err := appdoc.SaveID(path, appdoc.DesignID(abs)); err != nil {
		return err
	}
	if err := g.createDoc(path); err != nil {
		return fmt.Errorf("creating design document for %s: %w", path, err)
	}
	return nil
}

func appTree(path string) []string {
	dirs := make([]string, 0, len(AppTree))
	for _, n := range AppTree {
		dirs = append(dirs, filepath.Join(path, n))
	}
	return dirs
}

package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/couchapp/couchapp/internal/fscopy"
	"github.com/couchapp/couchapp/internal/platform"
	"github.com/couchapp/couchapp/internal/templates"
	"go.uber.org/zap"
)

// Generator kinds.
const (
	KindView     = "view"
	KindList     = "list"
	KindShow     = "show"
	KindFilter   = "filter"
	KindFunction = "function"
	KindVendor   = "vendor"
	KindUpdate   = "update"
	KindSpatial  = "spatial"
)

// Kinds lists every kind Generate accepts.
var Kinds = []string{
	KindView, KindList, KindShow, KindFilter,
	KindFunction, KindVendor, KindUpdate, KindSpatial,
}

// Result holds the outcome of a generation.
type Result struct {
	Dir      string   // destination directory
	Files    []string // app-relative, slash separated
	Warnings []string
}

// skeleton maps a file in the template to its name at the destination.
type skeleton struct {
	src string
	dst string
}

// Generate adds one function of the given kind to the app at path.
//
// Skeletons come from the default set's functions/ directory, or from the
// root of the template set named by template when it is non-empty. For the
// vendor kind, template is the path of the directory to copy instead.
func (g *Generator) Generate(path, kind, name, template string) (*Result, error) {
	if !IsKind(kind) {
		return nil, fmt.Errorf("can't generate %q in your couchapp: %w", kind, ErrUnknownKind)
	}
	if name == "" {
		return nil, fmt.Errorf("can't generate %q function: %w", kind, ErrMissingName)
	}

	if kind == KindVendor {
		return g.generateVendor(path, name, template)
	}
	return g.generateFunction(path, kind, name, template)
}

// IsKind reports whether kind is a known generator kind.
func IsKind(kind string) bool {
	for _, k := range Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

func (g *Generator) generateFunction(path, kind, name, template string) (*Result, error) {
	skeletonDir, err := g.skeletonDir(template)
	if err != nil {
		return nil, err
	}

	dest, files := placement(path, kind, name)
	if kind == KindView {
		if _, err := os.Stat(dest); err == nil {
			return nil, fmt.Errorf("view %q: %w", name, ErrArtifactExists)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	if err := platform.MkdirIfAbsent(dest); err != nil {
		return nil, err
	}

	result := &Result{Dir: dest}
	for _, f := range files {
		src := filepath.Join(skeletonDir, f.src)
		dst := filepath.Join(dest, f.dst)

		if err := fscopy.CopyFile(src, dst); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				msg := fmt.Sprintf("%s not found in %s", f.src, skeletonDir)
				g.logger.Warn("skeleton file not found",
					zap.String("file", f.src), zap.String("dir", skeletonDir))
				result.Warnings = append(result.Warnings, msg)
				continue
			}
			return result, fmt.Errorf("copying %s to %s: %w", src, dst, err)
		}
		result.Files = append(result.Files, relTo(path, dst))
	}

	return result, nil
}

// skeletonDir resolves where skeleton files are read from.
func (g *Generator) skeletonDir(template string) (string, error) {
	if template != "" {
		return g.resolver.Resolve(template, "")
	}
	return g.resolver.Resolve("", templates.TypeFunctions)
}

// placement returns the destination directory and skeleton files for kind.
func placement(path, kind, name string) (string, []skeleton) {
	switch kind {
	case KindView:
		return filepath.Join(path, "views", name), []skeleton{
			{"map.js", "map.js"},
			{"reduce.js", "reduce.js"},
		}
	case KindFunction:
		return filepath.Join(path, "functions"), []skeleton{{name + ".js", name + ".js"}}
	case KindSpatial:
		return filepath.Join(path, "spatial"), []skeleton{{"spatial.js", name + ".js"}}
	default:
		return filepath.Join(path, kind+"s"), []skeleton{{kind + ".js", name + ".js"}}
	}
}

// generateVendor merge-copies the directory src into path/vendor/name.
func (g *Generator) generateVendor(path, name, src string) (*Result, error) {
	if src == "" {
		return nil, fmt.Errorf("vendor %q: no source directory given: %w", name, ErrVendorSource)
	}
	src = filepath.FromSlash(src)
	info, err := os.Stat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("vendor %q: %s: %w", name, src, ErrVendorSource)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("vendor %q: source %q: %w", name, src, fscopy.ErrNotDirectory)
	}

	dest := filepath.Join(path, "vendor", name)
	if err := platform.MkdirIfAbsent(dest); err != nil {
		return nil, err
	}
	if err := fscopy.MergeDir(src, dest); err != nil {
		return nil, err
	}

	result := &Result{Dir: dest}
	err = filepath.WalkDir(src, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		result.Files = append(result.Files, relTo(path, filepath.Join(dest, rel)))
		return nil
	})
	if err != nil {
		return result, fmt.Errorf("listing %s: %w", src, err)
	}
	return result, nil
}

func relTo(base, p string) string {
	rel, err := filepath.Rel(base, p)
	if err != nil {
		return filepath.ToSlash(p)
	}
	return filepath.ToSlash(rel)
}

package templates

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

// MetaFile is the optional metadata file inside a template set.
const MetaFile = "template.yaml"

// Meta is the content of a template set's template.yaml.
type Meta struct {
	Description string `yaml:"description"`
	// Requires is a semver constraint on the tool version, e.g. ">= 1.1".
	Requires string `yaml:"requires"`
}

// Set is a template set found under one of the search roots.
type Set struct {
	Name  string   // "default", "mytmpl", "vuejs/myvue"
	Dir   string   // absolute path of the set directory
	Root  string   // search root it was found under
	Types []string // payload types present, in Types order
	Meta  Meta
}

// Compatible reports whether the set's Requires constraint accepts the
// given tool version. Development builds and sets without a constraint are
// always compatible.
func (s Set) Compatible(version string) (bool, error) {
	if s.Meta.Requires == "" {
		return true, nil
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return true, nil
	}
	c, err := semver.NewConstraint(s.Meta.Requires)
	if err != nil {
		return false, fmt.Errorf("template set %q: invalid requires %q: %w", s.Name, s.Meta.Requires, err)
	}
	return c.Check(v), nil
}

// Discover lists the template sets visible through the resolver's roots.
// When the same name exists under several roots the highest-precedence one
// is kept, matching Lookup.
func (r *Resolver) Discover() ([]Set, error) {
	seen := make(map[string]bool)
	var result []Set

	for _, root := range r.roots() {
		sets, err := walkRoot(filepath.Clean(root))
		if err != nil {
			return nil, err
		}
		for _, s := range sets {
			if seen[s.Name] {
				continue
			}
			seen[s.Name] = true
			result = append(result, s)
		}
	}

	sort.SliceStable(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// walkRoot finds every template set below <root>/templates.
func walkRoot(root string) ([]Set, error) {
	base := filepath.Join(root, "templates")
	if info, err := os.Stat(base); err != nil || !info.IsDir() {
		return nil, nil
	}

	var sets []Set
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip inaccessible entries
		}
		if !d.IsDir() {
			return nil
		}
		if path != base && IsReserved(d.Name()) {
			return filepath.SkipDir
		}

		types := presentTypes(path)
		if len(types) == 0 {
			return nil
		}

		rel, err := filepath.Rel(base, path)
		if err != nil {
			return nil
		}
		name := filepath.ToSlash(rel)
		if name == "." {
			name = DefaultSet
		}

		meta, err := readMeta(path)
		if err != nil {
			return err
		}

		sets = append(sets, Set{
			Name:  name,
			Dir:   path,
			Root:  root,
			Types: types,
			Meta:  meta,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sets, nil
}

func presentTypes(dir string) []string {
	var types []string
	for _, t := range Types {
		if info, err := os.Stat(filepath.Join(dir, t)); err == nil && info.IsDir() {
			types = append(types, t)
		}
	}
	return types
}

func readMeta(dir string) (Meta, error) {
	var meta Meta
	p := filepath.Join(dir, MetaFile)
	data, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return meta, nil
		}
		return meta, fmt.Errorf("reading %s: %w", p, err)
	}
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return meta, fmt.Errorf("parsing %s: %w", p, err)
	}
	return meta, nil
}

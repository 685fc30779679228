package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/couchapp/couchapp/internal/scaffold"
	"github.com/spf13/viper"
)

// setupHome points the user-level search root at a fresh templates tree and
// isolates the config file.
func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("COUCHAPP_TEMPLATE", "")
	t.Setenv("COUCHAPP_SEARCH_PATHS", "")
	t.Setenv("COUCHAPP_VERBOSE", "")

	tmplRoot := filepath.Join(t.TempDir(), "share")
	t.Setenv("COUCHAPP_HOME", tmplRoot)

	files := map[string]string{
		"templates/app/language":                    "javascript",
		"templates/vendor/couchapp/jquery.couch.js": "// couch",
		"templates/functions/map.js":                "// map",
		"templates/functions/reduce.js":             "// reduce",
		"templates/functions/list.js":               "// list",
		"templates/mytmpl/app/README.md":            "# mytmpl",
		"templates/mytmpl/template.yaml":            "description: My template\n",
	}
	for rel, content := range files {
		p := filepath.Join(tmplRoot, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return tmplRoot
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	initTemplate, initEmpty = "", false
	generateApp, generateTemplate = ".", ""
	verbose = false
	versionShort, versionJSON = false, false
	viper.Reset()
	t.Cleanup(viper.Reset)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestInitCommand(t *testing.T) {
	setupHome(t)
	appDir := filepath.Join(t.TempDir(), "blog")

	out, err := execute(t, "init", appDir)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if !strings.Contains(out, "_design/blog") {
		t.Errorf("output should mention the design doc id, got:\n%s", out)
	}
	for _, rel := range []string{"language", "vendor/couchapp/jquery.couch.js", "_id", "views"} {
		if _, err := os.Stat(filepath.Join(appDir, filepath.FromSlash(rel))); err != nil {
			t.Errorf("%s missing: %v", rel, err)
		}
	}
}

func TestInitCommandEmpty(t *testing.T) {
	setupHome(t)
	appDir := filepath.Join(t.TempDir(), "blog")

	if _, err := execute(t, "init", appDir, "--empty"); err != nil {
		t.Fatalf("init --empty: %v", err)
	}
	if _, err := os.Stat(filepath.Join(appDir, "language")); err == nil {
		t.Error("--empty should not copy the app template")
	}
	for _, d := range scaffold.AppTree {
		if _, err := os.Stat(filepath.Join(appDir, d)); err != nil {
			t.Errorf("%s missing", d)
		}
	}
}

func TestGenerateCommand(t *testing.T) {
	setupHome(t)
	appDir := filepath.Join(t.TempDir(), "blog")
	if _, err := execute(t, "init", appDir, "--empty"); err != nil {
		t.Fatalf("init: %v", err)
	}

	out, err := execute(t, "generate", "view", "byDate", "--app", appDir)
	if err != nil {
		t.Fatalf("generate view: %v", err)
	}
	if !strings.Contains(out, "views/byDate/map.js") {
		t.Errorf("output should list generated files, got:\n%s", out)
	}

	if _, err := execute(t, "generate", "view", "byDate", "--app", appDir); err == nil {
		t.Error("generating the same view twice should fail")
	}

	if _, err := execute(t, "generate", "list", "--app", appDir); err == nil {
		t.Error("generate without a name should fail")
	}
}

func TestTemplatesList(t *testing.T) {
	setupHome(t)

	out, err := execute(t, "templates", "list")
	if err != nil {
		t.Fatalf("templates list: %v", err)
	}
	for _, want := range []string{"default", "mytmpl", "My template"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTemplatesPaths(t *testing.T) {
	root := setupHome(t)

	out, err := execute(t, "templates", "paths")
	if err != nil {
		t.Fatalf("templates paths: %v", err)
	}
	first := strings.SplitN(out, "\n", 2)[0]
	if !strings.Contains(first, filepath.Join(root, "templates")) {
		t.Errorf("COUCHAPP_HOME should be the first root, got %q", first)
	}
	if !strings.Contains(first, "[ OK ]") {
		t.Errorf("first root should be marked present, got %q", first)
	}
}

func TestConfigSetRejectsUnknownKey(t *testing.T) {
	setupHome(t)
	if _, err := execute(t, "config", "set", "colour", "blue"); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestVersionJSONListsRoots(t *testing.T) {
	tmplRoot := setupHome(t)

	out, err := execute(t, "version", "--json")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	var info versionInfo
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("decoding %q: %v", out, err)
	}
	if len(info.Roots) == 0 || info.Roots[0] != tmplRoot {
		t.Errorf("first template root = %v, want %s", info.Roots, tmplRoot)
	}
}

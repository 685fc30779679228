package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func mkdirs(t *testing.T, root string, rels ...string) {
	t.Helper()
	for _, rel := range rels {
		require.NoError(t, os.MkdirAll(filepath.Join(root, filepath.FromSlash(rel)), 0755))
	}
}

func staticRoots(roots ...string) Option {
	return WithRoots(func() []string { return roots })
}

func TestLookup_FirstRootWins(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	mkdirs(t, first, "templates/app")
	mkdirs(t, second, "templates/app")

	r := NewResolver(staticRoots(first, second))
	dir, ok, err := r.Lookup("", TypeApp)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(first, "templates", "app"), dir)

	r = NewResolver(staticRoots(second, first))
	dir, ok, err = r.Lookup("", TypeApp)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(second, "templates", "app"), dir)
}

func TestLookup_SingleMatchIndependentOfOrder(t *testing.T) {
	empty, full := t.TempDir(), t.TempDir()
	mkdirs(t, full, "templates/mytmpl/functions")
	want := filepath.Join(full, "templates", "mytmpl", "functions")

	for _, roots := range [][]string{{empty, full}, {full, empty}} {
		dir, err := NewResolver(staticRoots(roots...)).Resolve("mytmpl", TypeFunctions)
		require.NoError(t, err)
		assert.Equal(t, want, dir)
	}
}

func TestLookup_DefaultEqualsEmpty(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "templates/app", "templates/default/app")

	r := NewResolver(staticRoots(root))
	byDefault, err := r.Resolve("default", TypeApp)
	require.NoError(t, err)
	byEmpty, err := r.Resolve("", TypeApp)
	require.NoError(t, err)

	assert.Equal(t, byEmpty, byDefault)
	assert.Equal(t, filepath.Join(root, "templates", "app"), byDefault)
}

func TestLookup_NestedName(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "templates/vuejs/myvue/app")

	dir, err := NewResolver(staticRoots(root)).Resolve("vuejs/myvue", TypeApp)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "templates", "vuejs", "myvue", "app"), dir)
}

func TestLookup_SkipsFiles(t *testing.T) {
	fileRoot, dirRoot := t.TempDir(), t.TempDir()
	mkdirs(t, fileRoot, "templates")
	require.NoError(t, os.WriteFile(filepath.Join(fileRoot, "templates", "vendor"), []byte("x"), 0644))
	mkdirs(t, dirRoot, "templates/vendor")

	dir, err := NewResolver(staticRoots(fileRoot, dirRoot)).Resolve("", TypeVendor)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dirRoot, "templates", "vendor"), dir)
}

func TestLookup_EmptyTypeSelectsSet(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "templates/mytmpl")

	dir, err := NewResolver(staticRoots(root)).Resolve("mytmpl", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "templates", "mytmpl"), dir)
}

func TestLookup_InvalidType(t *testing.T) {
	called := false
	r := NewResolver(WithRoots(func() []string {
		called = true
		return nil
	}))

	_, _, err := r.Lookup("", "views")
	require.ErrorIs(t, err, ErrInvalidType)
	assert.False(t, called, "roots must not be searched for an invalid type")
}

func TestLookup_NotFound(t *testing.T) {
	r := NewResolver(staticRoots(t.TempDir()))

	dir, ok, err := r.Lookup("mytmpl", TypeVendor)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, dir)

	_, err = r.Resolve("mytmpl", TypeVendor)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "mytmpl/vendor")
}

func TestLookup_TracesEveryProbe(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	miss, hit := t.TempDir(), t.TempDir()
	mkdirs(t, hit, "templates/app")

	r := NewResolver(staticRoots(miss, hit), WithLogger(zap.New(core)))
	_, err := r.Resolve("", TypeApp)
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "template search path not found", entries[0].Message)
	assert.Equal(t, filepath.Join(miss, "templates", "app"), entries[0].ContextMap()["path"])
	assert.Equal(t, "template path match", entries[1].Message)
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"default", ""},
		{"", ""},
		{"mytmpl", "mytmpl"},
		{"vuejs/myvue", "vuejs/myvue"},
		{"vuejs/myvue/", "vuejs/myvue"},
		{"vuejs//myvue", "vuejs/myvue"},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestProbe(t *testing.T) {
	assert.Equal(t, filepath.Join("templates", "app"), Probe("default", TypeApp))
	assert.Equal(t, "templates", Probe("", ""))
	assert.Equal(t, filepath.Join("templates", "vuejs", "myvue", "vendor"), Probe("vuejs/myvue", TypeVendor))
}

func TestIsReserved(t *testing.T) {
	for _, name := range []string{"app", "functions", "vendor"} {
		assert.True(t, IsReserved(name), name)
	}
	for _, name := range []string{"default", "views", ""} {
		assert.False(t, IsReserved(name), name)
	}
}

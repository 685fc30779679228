package templates

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformRoots_Order(t *testing.T) {
	user := []string{"/home/ann/.couchapp"}
	extra := []string{"/srv/templates"}

	roots := platformRoots("linux", user, extra)
	require.GreaterOrEqual(t, len(roots), 7)

	assert.Equal(t, "/home/ann/.couchapp", roots[0])
	assert.Equal(t, "/srv/templates", roots[1])
	assert.Equal(t, filepath.Join(roots[2], ".."), roots[3], "install dir parent follows install dir")
	assert.Equal(t, []string{
		filepath.Join("/usr/share", "couchapp"),
		filepath.Join("/usr/local/share", "couchapp"),
		filepath.Join("/opt", "couchapp"),
	}, roots[4:7])
}

func TestPlatformRoots_Windows(t *testing.T) {
	roots := platformRoots("windows", []string{`C:\Users\ann\.couchapp`}, nil)
	require.Len(t, roots, 3)
	for _, r := range roots {
		assert.NotContains(t, r, "/usr/share")
	}
}

func TestPlatformRoots_DarwinAppendsApplicationSupport(t *testing.T) {
	t.Setenv("HOME", "/Users/ann")
	roots := platformRoots("darwin", nil, nil)
	last := roots[len(roots)-1]
	assert.Equal(t, filepath.Join("/Users/ann", "Library", "Application Support", "Couchapp"), last)
}

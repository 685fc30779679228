package templates

import (
	"path/filepath"
	"runtime"

	"github.com/couchapp/couchapp/internal/platform"
)

// PlatformRoots returns the built-in search roots for the running platform,
// highest precedence first. It is computed on every call.
//
//   - per-user directories ($COUCHAPP_HOME, ~/.couchapp, and on Windows the
//     %USERPROFILE% and %APPDATA% locations)
//   - the directory holding the executable, then its parent
//   - on POSIX: /usr/share/couchapp, /usr/local/share/couchapp, /opt/couchapp
//   - on macOS: ~/Library/Application Support/Couchapp
func PlatformRoots() []string {
	return platformRoots(runtime.GOOS, platform.UserSearchPaths(), nil)
}

// PlatformRootsWith is PlatformRoots with extra user-level roots, such as
// those from the search_paths setting, placed after the built-in user roots.
func PlatformRootsWith(extra []string) []string {
	return platformRoots(runtime.GOOS, platform.UserSearchPaths(), extra)
}

func platformRoots(goos string, user, extra []string) []string {
	roots := append([]string{}, user...)
	roots = append(roots, extra...)

	if dir, err := platform.InstallDir(); err == nil {
		roots = append(roots, dir, filepath.Join(dir, ".."))
	}

	if goos != "windows" {
		roots = append(roots, platform.SystemShareDirs()...)
	}

	if goos == "darwin" {
		if dir, err := platform.ApplicationSupportDir(); err == nil {
			roots = append(roots, dir)
		}
	}

	return roots
}

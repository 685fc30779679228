package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/couchapp/couchapp/internal/branding"
)

// UserSearchPaths returns the per-user configuration directories that may
// hold a templates/ tree, highest precedence first.
//
// COUCHAPP_HOME comes first when set, then ~/.couchapp. On Windows the
// %USERPROFILE% and %APPDATA% based locations follow.
func UserSearchPaths() []string {
	home, _ := os.UserHomeDir()
	return userSearchPaths(runtime.GOOS, home, os.Getenv)
}

func userSearchPaths(goos, home string, getenv func(string) string) []string {
	var paths []string
	if v := getenv(branding.EnvVar("HOME")); v != "" {
		paths = append(paths, v)
	}
	if home != "" {
		paths = append(paths, filepath.Join(home, branding.HomeDir()))
	}
	if goos == "windows" {
		if profile := getenv("USERPROFILE"); profile != "" && profile != home {
			paths = append(paths, filepath.Join(profile, branding.HomeDir()))
		}
		if appData := getenv("APPDATA"); appData != "" {
			paths = append(paths, filepath.Join(appData, branding.CLIName()))
		}
	}
	return dedupe(paths)
}

// InstallDir returns the directory holding the running executable, with
// symlinks resolved so a binary linked into /usr/local/bin still finds the
// templates shipped next to its real location.
func InstallDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// ApplicationSupportDir returns ~/Library/Application Support/<ToolName>.
// It is only searched on macOS.
func ApplicationSupportDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, "Library", "Application Support", branding.ToolName()), nil
}

// SystemShareDirs returns the system-wide install locations searched on
// POSIX platforms.
func SystemShareDirs() []string {
	name := branding.CLIName()
	return []string{
		filepath.Join("/usr/share", name),
		filepath.Join("/usr/local/share", name),
		filepath.Join("/opt", name),
	}
}

func dedupe(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	out := paths[:0]
	for _, p := range paths {
		clean := filepath.Clean(p)
		if seen[clean] {
			continue
		}
		seen[clean] = true
		out = append(out, p)
	}
	return out
}

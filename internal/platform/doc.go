// Package platform provides the cross-platform filesystem helpers the
// generator builds on: per-user template roots, the install location of the
// running binary, directory setup with optional emptiness checks, and
// permission changes that are a no-op on Windows.
package platform

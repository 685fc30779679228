// Package templates locates template sets on disk.
//
// A template set is a directory under <root>/templates/ holding any of the
// typed payloads app/, functions/ and vendor/. The set at templates/ itself is
// the default set; nested names such as "vuejs/myvue" select sub-directories.
// Roots are searched in precedence order and the first root holding the
// requested <name>/<type> directory wins. Nothing is merged across roots.
package templates

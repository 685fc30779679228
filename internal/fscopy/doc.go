// Package fscopy implements the merge copy used to lay template payloads onto
// an app directory.
//
// A merge copy does not require the destination to be absent or empty. Files
// at the top level of the source overwrite same-named files at the
// destination, keeping their mode and modification time. Directories at the
// top level are copied as whole subtrees and must not already exist at the
// destination. The asymmetry is intentional: it lets a template be laid over
// an app that already has unrelated top-level files, while nested template
// directories stay atomic units. Turning it into a recursive merge would
// change what re-running a template or a vendor generation does.
package fscopy

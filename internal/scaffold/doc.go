// Package scaffold creates CouchApp directories and the individual functions
// inside them. It powers "couchapp init" and "couchapp generate".
//
// InitBasic lays down the standard tree in an empty directory. InitTemplate
// merge-copies a template set's app payload, adds the standard tree and the
// set's vendor payload (falling back to the default set's vendor). Generate
// places one view, list, show, filter, update, spatial index, plain function
// or vendor package into an existing app from skeleton files.
package scaffold

// Package appdoc manages the per-app files that describe the design document
// an app directory is pushed as: the _id marker, .couchapprc and
// .couchappignore. The generator only creates them; their content is owned
// by whatever pushes the app.
package appdoc

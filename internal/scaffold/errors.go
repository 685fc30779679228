package scaffold

import "errors"

var (
	// ErrAmbiguousTemplate is returned when a payload type name is given as
	// a template set name.
	ErrAmbiguousTemplate = errors.New("template name cannot be a template type")

	// ErrUnknownKind is returned for a generator kind outside Kinds.
	ErrUnknownKind = errors.New("generator is unknown")

	// ErrMissingName is returned when Generate is called without a name.
	ErrMissingName = errors.New("name is missing")

	// ErrArtifactExists is returned when a view directory already exists.
	ErrArtifactExists = errors.New("already exists")

	// ErrVendorSource is returned when a vendor generation has no source
	// directory or the source does not exist.
	ErrVendorSource = errors.New("vendor source directory not found")
)

package htmltools

import "errors"

// Sentinel errors for dependency operations.
var (
	// ErrInvalidDependency indicates a descriptor with an empty name,
	// no sources, or an unsupported source kind.
	ErrInvalidDependency = errors.New("invalid dependency")

	// ErrNoUsableSource indicates that none of the preferred source kinds
	// is present on the dependency.
	ErrNoUsableSource = errors.New("dependency has no usable source")

	// ErrNotDiskBased indicates a staging operation on a dependency that
	// has no file source.
	ErrNotDiskBased = errors.New("dependency is not disk-based")

	// ErrNotADescendant indicates a path that does not live under the
	// base directory it should be made relative to.
	ErrNotADescendant = errors.New("path is not under base path")
)

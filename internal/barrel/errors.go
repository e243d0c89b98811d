package barrel

import "errors"

var (
	// ErrNotADirectory indicates the generation target is missing or not a directory.
	ErrNotADirectory = errors.New("target is not a directory")

	// ErrFileSystem indicates a directory read or barrel write failed.
	ErrFileSystem = errors.New("filesystem operation failed")

	// ErrPackagePrefix indicates no package name could be derived for a library root.
	ErrPackagePrefix = errors.New("package name could not be resolved")

	// ErrInvalidPattern indicates an exclusion glob failed to compile.
	ErrInvalidPattern = errors.New("invalid exclusion pattern")
)

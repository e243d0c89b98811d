// Package testing contains helper utilities used across tests: fixture trees,
// configuration builders and barrel file assertions.
package testing

const (
	// testDirPermissions is the permission mode for creating test directories.
	testDirPermissions = 0o750

	// testFilePermissions is the permission mode for creating test files.
	testFilePermissions = 0o600
)

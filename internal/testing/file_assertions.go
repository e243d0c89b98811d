package testing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// BarrelAssertions provides utilities for asserting generated barrel files in tests
type BarrelAssertions struct {
	t       *testing.T
	baseDir string
}

// NewBarrelAssertions creates a new assertions helper rooted at baseDir
func NewBarrelAssertions(t *testing.T, baseDir string) *BarrelAssertions {
	return &BarrelAssertions{t: t, baseDir: baseDir}
}

// AssertFileExists validates that a file exists
func (ba *BarrelAssertions) AssertFileExists(relativePath string) *BarrelAssertions {
	ba.t.Helper()
	fullPath := filepath.Join(ba.baseDir, filepath.FromSlash(relativePath))
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		ba.t.Errorf("Expected file to exist: %s", fullPath)
	}
	return ba
}

// AssertFileNotExists validates that a file does not exist
func (ba *BarrelAssertions) AssertFileNotExists(relativePath string) *BarrelAssertions {
	ba.t.Helper()
	fullPath := filepath.Join(ba.baseDir, filepath.FromSlash(relativePath))
	if _, err := os.Stat(fullPath); err == nil {
		ba.t.Errorf("Expected file to not exist: %s", fullPath)
	}
	return ba
}

// AssertExports validates that the barrel at relativePath exports exactly the given
// targets, in order, with no prefix
func (ba *BarrelAssertions) AssertExports(relativePath string, targets ...string) *BarrelAssertions {
	ba.t.Helper()
	return ba.AssertPrefixedExports(relativePath, "", targets...)
}

// AssertPrefixedExports is AssertExports with every target preceded by prefix
func (ba *BarrelAssertions) AssertPrefixedExports(relativePath, prefix string, targets ...string) *BarrelAssertions {
	ba.t.Helper()
	var want strings.Builder
	for _, target := range targets {
		want.WriteString("export '" + prefix + target + "';\n")
	}
	got := ba.GetFileContent(relativePath)
	if got != want.String() {
		ba.t.Errorf("Unexpected content in %s\nExpected:\n%s\nActual:\n%s", relativePath, want.String(), got)
	}
	return ba
}

// AssertFileContains validates that a file contains expected content
func (ba *BarrelAssertions) AssertFileContains(relativePath, expectedContent string) *BarrelAssertions {
	ba.t.Helper()
	content := ba.GetFileContent(relativePath)
	if !strings.Contains(content, expectedContent) {
		ba.t.Errorf("Expected file %s to contain %q\nActual content:\n%s",
			relativePath, expectedContent, content)
	}
	return ba
}

// GetFileContent reads and returns the content of a file
func (ba *BarrelAssertions) GetFileContent(relativePath string) string {
	ba.t.Helper()
	fullPath := filepath.Join(ba.baseDir, filepath.FromSlash(relativePath))

	content, err := os.ReadFile(fullPath)
	if err != nil {
		ba.t.Fatalf("Failed to read file %s: %v", fullPath, err)
	}
	return string(content)
}

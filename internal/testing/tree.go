package testing

import (
	"os"
	"path/filepath"
	"testing"
)

// Tree builds a directory fixture under a temporary root.
type Tree struct {
	t    *testing.T
	root string
}

// NewTree creates an empty fixture rooted in t.TempDir().
func NewTree(t *testing.T) *Tree {
	t.Helper()
	return &Tree{t: t, root: t.TempDir()}
}

// Root returns the absolute fixture root.
func (tr *Tree) Root() string { return tr.root }

// Path joins slash-separated rel onto the root.
func (tr *Tree) Path(rel string) string {
	return filepath.Join(tr.root, filepath.FromSlash(rel))
}

// Dir creates rel and any parents.
func (tr *Tree) Dir(rel string) *Tree {
	tr.t.Helper()
	if err := os.MkdirAll(tr.Path(rel), testDirPermissions); err != nil {
		tr.t.Fatalf("Failed to create directory %s: %v", rel, err)
	}
	return tr
}

// File writes content to rel, creating parent directories.
func (tr *Tree) File(rel, content string) *Tree {
	tr.t.Helper()
	full := tr.Path(rel)
	if err := os.MkdirAll(filepath.Dir(full), testDirPermissions); err != nil {
		tr.t.Fatalf("Failed to create parent of %s: %v", rel, err)
	}
	if err := os.WriteFile(full, []byte(content), testFilePermissions); err != nil {
		tr.t.Fatalf("Failed to write %s: %v", rel, err)
	}
	return tr
}

// Files writes an empty file for each rel.
func (tr *Tree) Files(rels ...string) *Tree {
	tr.t.Helper()
	for _, rel := range rels {
		tr.File(rel, "")
	}
	return tr
}

// Package barrel holds the traversal and policy functions behind barrel generation:
// path normalization, directory classification, naming, package prefixes and export ordering.
//
// Paths handled here are POSIX-normalized; conversion back to the host form happens
// only at the filesystem boundary.
package barrel

package barrel

import (
	"path/filepath"
	"strings"
	"time"
)

const (
	// SourceExtension marks exportable source files and barrel files.
	SourceExtension = ".dart"
	// LibraryRootMarker is the directory name of a package's library root.
	LibraryRootMarker = "lib"
	// FreezedSuffix marks files produced by the freezed code generator.
	FreezedSuffix = ".freezed.dart"
	// GeneratedSuffix marks files produced by build_runner style generators.
	GeneratedSuffix = ".g.dart"
)

// ToPosixPath converts a host path to forward-slash form.
func ToPosixPath(p string) string {
	return filepath.ToSlash(p)
}

// ToOSPath converts a POSIX path back to the host form.
func ToOSPath(p string) string {
	return filepath.FromSlash(p)
}

// FormatDate renders t as "YYYY-MM-DD HH:MM:SS" in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05")
}

// JoinPath appends child to a POSIX directory path.
func JoinPath(dir, child string) string {
	if dir == "" {
		return child
	}
	return strings.TrimSuffix(dir, "/") + "/" + child
}

// RelativeTo strips the dir prefix from target. Paths outside dir are returned unchanged.
func RelativeTo(dir, target string) string {
	prefix := strings.TrimSuffix(dir, "/") + "/"
	if rel, ok := strings.CutPrefix(target, prefix); ok {
		return rel
	}
	return target
}

// LastSegment returns the final non-empty segment of a POSIX path.
func LastSegment(p string) string {
	p = strings.TrimRight(p, "/")
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		return p[i+1:]
	}
	return p
}

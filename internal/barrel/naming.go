package barrel

import (
	"strings"

	"git.home.luguber.info/inful/barrelgen/internal/config"
	"git.home.luguber.info/inful/barrelgen/internal/foundation/errors"
)

// ComputeBarrelName derives the barrel base name (without extension) for targetPath.
//
// The base is DefaultBarrelName with spaces replaced by underscores and lower-cased,
// or the folder name when unset. PrependFolderName and AppendFolderName wrap it
// with the folder name.
func ComputeBarrelName(targetPath string, cfg config.Config) string {
	folder := LastSegment(targetPath)

	name := folder
	if cfg.DefaultBarrelName != "" {
		name = strings.ToLower(strings.ReplaceAll(cfg.DefaultBarrelName, " ", "_"))
	}
	if cfg.PrependFolderName {
		name = folder + "_" + name
	}
	if cfg.AppendFolderName {
		name = name + "_" + folder
	}
	return name
}

// BarrelFileName returns the file name written for barrelName.
func BarrelFileName(barrelName string) string {
	return barrelName + SourceExtension
}

// IsLibraryRoot reports whether the final segment of posixPath is the library root marker.
func IsLibraryRoot(posixPath string) bool {
	return LastSegment(posixPath) == LibraryRootMarker
}

// ResolvePackagePrefix returns "package:<name>/" where name is the segment
// preceding the last library root marker in posixPath.
func ResolvePackagePrefix(posixPath string) (string, error) {
	segments := strings.Split(strings.TrimRight(posixPath, "/"), "/")
	for i := len(segments) - 1; i > 0; i-- {
		if segments[i] != LibraryRootMarker {
			continue
		}
		if pkg := segments[i-1]; pkg != "" {
			return "package:" + pkg + "/", nil
		}
		break
	}
	return "", errors.PackageError("package name could not be resolved").
		WithCause(ErrPackagePrefix).
		WithContext("path", posixPath).
		Build()
}

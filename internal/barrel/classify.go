package barrel

import (
	"fmt"

	"git.home.luguber.info/inful/barrelgen/internal/foundation/errors"
	"git.home.luguber.info/inful/barrelgen/internal/util/sets"
)

// Listing is the classification of one directory's immediate children.
type Listing struct {
	// Files are exportable file names in enumeration order.
	Files []string
	// Dirs are traversable directory names in enumeration order.
	Dirs *sets.Ordered[string]
}

// Classify reads targetPath once and splits its entries into exportable files
// and traversable directories. Entries that are neither regular files nor
// directories are ignored.
func (p *Policy) Classify(barrelName, targetPath string) (Listing, error) {
	entries, err := p.fs.ReadDir(ToOSPath(targetPath))
	if err != nil {
		return Listing{}, errors.FileSystemError("failed to read directory").
			WithCause(fmt.Errorf("%w: %w", ErrFileSystem, err)).
			WithContext("path", targetPath).
			Build()
	}

	listing := Listing{Dirs: sets.NewOrdered[string]()}
	for _, entry := range entries {
		name := entry.Name()
		child := JoinPath(targetPath, name)
		switch {
		case entry.Type().IsRegular():
			if p.ShouldExport(name, child, barrelName) {
				listing.Files = append(listing.Files, name)
			}
		case entry.IsDir():
			if p.ShouldExportDirectory(child) {
				listing.Dirs.Add(name)
			}
		}
	}
	return listing, nil
}

// CollectFlattened gathers every exportable file below targetPath as paths
// relative to it. barrelName is applied at every depth. Excluded directories
// are never read.
func (p *Policy) CollectFlattened(barrelName, targetPath string) ([]string, error) {
	return p.collect(barrelName, targetPath, "")
}

func (p *Policy) collect(barrelName, dir, rel string) ([]string, error) {
	listing, err := p.Classify(barrelName, dir)
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(listing.Files))
	for _, f := range listing.Files {
		files = append(files, JoinPath(rel, f))
	}
	for _, d := range listing.Dirs.Values() {
		nested, err := p.collect(barrelName, JoinPath(dir, d), JoinPath(rel, d))
		if err != nil {
			return nil, err
		}
		files = append(files, nested...)
	}
	return files, nil
}

package barrel

import (
	"strings"

	"git.home.luguber.info/inful/barrelgen/internal/config"
)

// IsSourceFile reports whether name carries the source extension.
func IsSourceFile(name string) bool {
	return strings.HasSuffix(name, SourceExtension)
}

// IsBarrelFile reports whether name is the barrel file for barrelName.
func IsBarrelFile(barrelName, name string) bool {
	return name == barrelName+SourceExtension
}

// IsFreezedFile reports whether name was produced by freezed.
func IsFreezedFile(name string) bool {
	return strings.HasSuffix(name, FreezedSuffix)
}

// IsGeneratedFile reports whether name was produced by a .g.dart generator.
func IsGeneratedFile(name string) bool {
	return strings.HasSuffix(name, GeneratedSuffix)
}

// Policy applies a configuration's export rules. Build one per run with NewPolicy.
type Policy struct {
	cfg          config.Config
	fileExcludes PatternSet
	dirExcludes  PatternSet
	fs           FileSystem
}

// NewPolicy compiles the exclusion patterns of cfg. A nil fsys selects OSFileSystem.
func NewPolicy(cfg config.Config, fsys FileSystem) (*Policy, error) {
	files, err := CompilePatterns(cfg.ExcludeFileList)
	if err != nil {
		return nil, err
	}
	dirs, err := CompilePatterns(cfg.ExcludeDirList)
	if err != nil {
		return nil, err
	}
	if fsys == nil {
		fsys = OSFileSystem{}
	}
	return &Policy{cfg: cfg, fileExcludes: files, dirExcludes: dirs, fs: fsys}, nil
}

// ShouldExport decides whether a file belongs in the barrel named barrelName.
// posixPath is the file's full path.
func (p *Policy) ShouldExport(name, posixPath, barrelName string) bool {
	switch {
	case !IsSourceFile(name):
		return false
	case IsBarrelFile(barrelName, name):
		return false
	case p.cfg.ExcludeFreezed && IsFreezedFile(name):
		return false
	case p.cfg.ExcludeGenerated && IsGeneratedFile(name):
		return false
	}
	return !p.fileExcludes.MatchAny(posixPath)
}

// ShouldExportDirectory decides whether a directory is traversed.
func (p *Policy) ShouldExportDirectory(posixPath string) bool {
	return !p.dirExcludes.MatchAny(posixPath)
}

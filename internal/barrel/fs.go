package barrel

import (
	"io/fs"
	"os"
)

// FileSystem is the filesystem surface generation touches.
// Names are host paths.
type FileSystem interface {
	ReadDir(name string) ([]fs.DirEntry, error)
	Lstat(name string) (fs.FileInfo, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
}

// OSFileSystem is the FileSystem backed by package os.
type OSFileSystem struct{}

func (OSFileSystem) ReadDir(name string) ([]fs.DirEntry, error) { return os.ReadDir(name) }

func (OSFileSystem) Lstat(name string) (fs.FileInfo, error) { return os.Lstat(name) }

func (OSFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

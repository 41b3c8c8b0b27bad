package mirror

import (
	"io/fs"
	"os"
)

// Storage - the filesystem surface the mirror writes through. Local disk
// in production, a fake in tests.
type Storage interface {
	Stat(path string) (fs.FileInfo, error)
	MkdirAll(path string, perm fs.FileMode) error
	WriteFile(path string, data []byte, perm fs.FileMode) error
	ReadDir(path string) ([]fs.DirEntry, error)
}

type diskStorage struct{}

// NewDiskStorage - Storage backed by the local filesystem
func NewDiskStorage() Storage {
	return diskStorage{}
}

func (diskStorage) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

func (diskStorage) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (diskStorage) WriteFile(path string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(path, data, perm)
}

func (diskStorage) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}

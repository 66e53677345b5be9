package fileutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Contents is the outcome of reading a target file. Found distinguishes
// an actually-empty file from a file that does not exist yet, which the
// changelog composer relies on to choose prepend over create-fresh.
type Contents struct {
	Data  string
	Found bool
}

// OS reads and writes target files on the local filesystem.
type OS struct{}

// ReadIfExists returns the file's content, or Found=false when the file
// does not exist. Any other failure is an error.
func (OS) ReadIfExists(path string) (Contents, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Contents{}, nil
	}
	if err != nil {
		return Contents{}, err
	}
	return Contents{Data: string(data), Found: true}, nil
}

// WriteAtomic replaces the file at path with data, creating the parent
// directory if needed. The content lands in a temporary file first and
// is moved into place with a rename, so a failed write never leaves the
// target truncated.
func (OS) WriteAtomic(path string, data string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, filepath.Base(path)+"-*")
	if err != nil {
		return err
	}
	if _, err := f.WriteString(data); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return err
	}
	if err := os.Chmod(f.Name(), 0644); err != nil {
		_ = os.Remove(f.Name())
		return err
	}
	if err := os.Rename(f.Name(), path); err != nil {
		_ = os.Remove(f.Name())
		return err
	}
	return nil
}

package generator

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// writeAtomic writes content to path by way of a temporary file in the
// same directory followed by a rename, so a failure mid-write never leaves
// a partial file at the target path. Parent directories are created as
// needed.
func writeAtomic(fs afero.Fs, path, content string) error {
	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	tmp, err := afero.TempFile(fs, dir, ".organizer-*")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		fs.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		fs.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}

	if err := fs.Rename(tmpName, path); err != nil {
		fs.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

func filepathBase(path string) string {
	return filepath.Base(path)
}

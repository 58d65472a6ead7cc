// Package file implements cachestore.Provider on the local filesystem.
package file

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gabapcia/utxokit/internal/cachestore"
)

const (
	dirPerm  = 0o700
	filePerm = 0o600
)

// Provider stores each document as a file at its path.
type Provider struct{}

var _ cachestore.Provider = Provider{}

// New returns a filesystem provider.
func New() Provider {
	return Provider{}
}

// Read returns the file content at path, or cachestore.ErrNotFound.
func (Provider) Read(_ context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, cachestore.ErrNotFound
	}

	return data, err
}

// Write replaces the file at path. Parent directories are created as needed
// and the content is renamed into place so readers never see a partial file.
func (Provider) Write(_ context.Context, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}

	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

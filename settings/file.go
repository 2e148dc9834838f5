//go:build !tinygo

package settings

import (
	"errors"
	"io/fs"
	"os"
)

// FileStore keeps the blob in a file. A missing file loads as empty.
type FileStore struct {
	Path string
}

func (f FileStore) Load() ([]byte, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

func (f FileStore) Save(data []byte) error {
	return os.WriteFile(f.Path, data, 0o644)
}

package filestorage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalStorage stores file blobs on the local filesystem. Keys are uuid
// based, with the original extension preserved.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates the storage directory if needed
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("error creating storage directory: %w", err)
	}
	return &LocalStorage{basePath: basePath}, nil
}

// Save stores the content under a fresh uuid key
func (s *LocalStorage) Save(filename string, content io.Reader) (string, error) {
	key := uuid.New().String() + filepath.Ext(filename)

	file, err := os.Create(filepath.Join(s.basePath, key))
	if err != nil {
		return "", fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		os.Remove(file.Name())
		return "", fmt.Errorf("error writing file: %w", err)
	}

	return key, nil
}

// Open returns a reader over a stored object
func (s *LocalStorage) Open(key string) (io.ReadCloser, error) {
	file, err := os.Open(filepath.Join(s.basePath, filepath.Base(key)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	return file, nil
}

// Delete removes a stored object. A missing object is treated as already
// deleted.
func (s *LocalStorage) Delete(key string) error {
	err := os.Remove(filepath.Join(s.basePath, filepath.Base(key)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error deleting file: %w", err)
	}
	return nil
}

// FullPath resolves a key to an absolute filesystem path
func (s *LocalStorage) FullPath(key string) string {
	return filepath.Join(s.basePath, filepath.Base(key))
}

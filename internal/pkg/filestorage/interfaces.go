// Package filestorage stores uploaded files under opaque keys so original
// filenames never collide on disk.
package filestorage

import (
	"errors"
	"io"
)

// ErrFileNotFound indicates the stored object does not exist
var ErrFileNotFound = errors.New("file not found")

// Storage abstracts where uploaded file blobs live
type Storage interface {
	// Save stores the content and returns the opaque key it was stored under
	Save(filename string, content io.Reader) (string, error)
	// Open returns a reader over a stored object
	Open(key string) (io.ReadCloser, error)
	// Delete removes a stored object; deleting a missing object is not an error
	Delete(key string) error
	// FullPath resolves a key to an absolute filesystem path
	FullPath(key string) string
}

package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// BlobStore writes uploaded content as one file per blob in a flat
// directory. Blobs are named by their generated identifier alone; the
// original (untrusted) filename never becomes part of the path.
type BlobStore struct {
	dir string
}

// NewBlobStore creates the blob directory if needed.
func NewBlobStore(dir string) (*BlobStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &BlobStore{dir: dir}, nil
}

// Save streams r into a new blob file and returns its absolute path and size.
func (b *BlobStore) Save(id string, r io.Reader) (string, int64, error) {
	path := filepath.Join(b.dir, id)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", 0, fmt.Errorf("create blob %s: %w", id, err)
	}

	written, err := io.Copy(f, r)
	if err != nil {
		f.Close()
		os.Remove(path)
		return "", 0, fmt.Errorf("write blob %s: %w", id, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", 0, fmt.Errorf("close blob %s: %w", id, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return path, written, nil
	}
	return abs, written, nil
}

// Open returns a reader over the blob at the stored path.
func (b *BlobStore) Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open blob: %w", err)
	}
	return f, nil
}

// Read returns the full contents of the blob at the stored path.
func (b *BlobStore) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read blob: %w", err)
	}
	return data, nil
}

// Remove deletes the blob at the stored path. A missing blob is not an
// error; metadata referencing it is already being discarded.
func (b *BlobStore) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove blob: %w", err)
	}
	return nil
}

// Ping reports whether the blob directory is usable.
func (b *BlobStore) Ping() error {
	info, err := os.Stat(b.dir)
	if err != nil {
		return fmt.Errorf("stat upload dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("upload path %s is not a directory", b.dir)
	}
	return nil
}

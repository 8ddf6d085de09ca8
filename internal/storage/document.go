package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Document owns one JSON file holding a pretty-printed array of records.
// All mutations go through Update, which holds the document mutex across the
// whole read-modify-write so concurrent writers cannot drop each other's
// changes.
type Document[T any] struct {
	path string
	mu   sync.Mutex
}

// OpenDocument binds a document to its backing file. The file is parsed
// eagerly so a corrupt document is reported at startup instead of being
// silently treated as empty; a missing file is an empty document.
func OpenDocument[T any](path string) (*Document[T], error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	doc := &Document[T]{path: path}
	if _, err := doc.read(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Load returns every persisted record. The document is re-read from disk on
// every call; nothing is cached across requests.
func (d *Document[T]) Load() ([]T, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.read()
}

// Save overwrites the document with the given records.
func (d *Document[T]) Save(records []T) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.write(records)
}

// Update applies fn to the current records and persists the result, all
// under the document mutex. Returning an error from fn aborts the update
// without touching the document.
func (d *Document[T]) Update(fn func([]T) ([]T, error)) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	records, err := d.read()
	if err != nil {
		return err
	}

	updated, err := fn(records)
	if err != nil {
		return err
	}

	return d.write(updated)
}

// Ping reports whether the backing file is readable and well formed.
func (d *Document[T]) Ping() error {
	_, err := d.Load()
	return err
}

func (d *Document[T]) read() ([]T, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("read document %s: %w", d.path, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse document %s: %w", d.path, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// write replaces the document through a temp file in the same directory so a
// crash mid-write cannot leave a truncated document behind.
func (d *Document[T]) write(records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document %s: %w", d.path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(d.path), filepath.Base(d.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp document: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write document %s: %w", d.path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("sync document %s: %w", d.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp document: %w", err)
	}

	if err := os.Rename(tmp.Name(), d.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace document %s: %w", d.path, err)
	}
	return nil
}

package file

import (
	"context"

	"github.com/alazarbeyenenew2/fileshare/internal/storage"
)

// Repository persists file records in the file metadata document.
type Repository struct {
	doc *storage.Document[Metadata]
}

// NewRepository builds a file repository over its metadata document.
func NewRepository(doc *storage.Document[Metadata]) *Repository {
	return &Repository{doc: doc}
}

// List returns all file records in persisted order.
func (r *Repository) List(ctx context.Context) ([]Metadata, error) {
	return r.doc.Load()
}

// Get returns the file record with the given identifier.
func (r *Repository) Get(ctx context.Context, id string) (Metadata, error) {
	records, err := r.doc.Load()
	if err != nil {
		return Metadata{}, err
	}
	for _, m := range records {
		if m.ID == id {
			return m, nil
		}
	}
	return Metadata{}, ErrFileNotFound
}

// Insert appends a new file record.
func (r *Repository) Insert(ctx context.Context, meta Metadata) error {
	return r.doc.Update(func(records []Metadata) ([]Metadata, error) {
		return append(records, meta), nil
	})
}

// Delete removes the record with the given identifier and returns it so the
// caller can clean up its blob.
func (r *Repository) Delete(ctx context.Context, id string) (Metadata, error) {
	var removed Metadata
	err := r.doc.Update(func(records []Metadata) ([]Metadata, error) {
		for i, m := range records {
			if m.ID == id {
				removed = m
				return append(records[:i], records[i+1:]...), nil
			}
		}
		return nil, ErrFileNotFound
	})
	if err != nil {
		return Metadata{}, err
	}
	return removed, nil
}

// DeleteByFolders removes every record owned by one of the given folders
// and returns the removed records for blob cleanup.
func (r *Repository) DeleteByFolders(ctx context.Context, folderIDs []string) ([]Metadata, error) {
	doomed := make(map[string]bool, len(folderIDs))
	for _, id := range folderIDs {
		doomed[id] = true
	}

	var removed []Metadata
	err := r.doc.Update(func(records []Metadata) ([]Metadata, error) {
		kept := records[:0]
		for _, m := range records {
			if doomed[m.FolderID] {
				removed = append(removed, m)
				continue
			}
			kept = append(kept, m)
		}
		return kept, nil
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

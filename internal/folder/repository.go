package folder

import (
	"context"

	"github.com/alazarbeyenenew2/fileshare/internal/storage"
)

// Repository persists folder records in the folder metadata document. Every
// mutation runs as one read-modify-write under the document mutex, so
// cross-record checks (parent existence, cascade collection) see the same
// snapshot they modify.
type Repository struct {
	doc *storage.Document[Folder]
}

// NewRepository builds a folder repository over its metadata document.
func NewRepository(doc *storage.Document[Folder]) *Repository {
	return &Repository{doc: doc}
}

// List returns all folder records in persisted order.
func (r *Repository) List(ctx context.Context) ([]Folder, error) {
	return r.doc.Load()
}

// Get returns the folder with the given identifier.
func (r *Repository) Get(ctx context.Context, id string) (Folder, error) {
	folders, err := r.doc.Load()
	if err != nil {
		return Folder{}, err
	}
	for _, f := range folders {
		if f.ID == id {
			return f, nil
		}
	}
	return Folder{}, ErrFolderNotFound
}

// Insert appends a new folder after validating its parent reference against
// the same snapshot the append lands in.
func (r *Repository) Insert(ctx context.Context, folder Folder) error {
	return r.doc.Update(func(folders []Folder) ([]Folder, error) {
		if folder.ParentID != nil {
			if !contains(folders, *folder.ParentID) {
				return nil, ErrParentNotFound
			}
		}
		return append(folders, folder), nil
	})
}

// Update applies mutate to the folder with the given identifier and returns
// the updated record.
func (r *Repository) Update(ctx context.Context, id string, mutate func(*Folder)) (Folder, error) {
	var updated Folder
	err := r.doc.Update(func(folders []Folder) ([]Folder, error) {
		for i := range folders {
			if folders[i].ID == id {
				mutate(&folders[i])
				updated = folders[i]
				return folders, nil
			}
		}
		return nil, ErrFolderNotFound
	})
	if err != nil {
		return Folder{}, err
	}
	return updated, nil
}

// DeleteSubtree removes the folder and every descendant, however deep, and
// returns the identifiers of all removed nodes (the requested id is always
// included so orphaned file records under it get cleaned up too). Deleting
// an unknown id succeeds.
func (r *Repository) DeleteSubtree(ctx context.Context, id string) ([]string, error) {
	removed := []string{id}

	err := r.doc.Update(func(folders []Folder) ([]Folder, error) {
		doomed := map[string]bool{id: true}

		// Children can precede parents in the document, so sweep until
		// no new descendants turn up.
		for changed := true; changed; {
			changed = false
			for _, f := range folders {
				if f.ParentID != nil && doomed[*f.ParentID] && !doomed[f.ID] {
					doomed[f.ID] = true
					changed = true
				}
			}
		}

		kept := folders[:0]
		for _, f := range folders {
			if doomed[f.ID] {
				if f.ID != id {
					removed = append(removed, f.ID)
				}
				continue
			}
			kept = append(kept, f)
		}
		return kept, nil
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

func contains(folders []Folder, id string) bool {
	for _, f := range folders {
		if f.ID == id {
			return true
		}
	}
	return false
}

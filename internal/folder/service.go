package folder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alazarbeyenenew2/fileshare/internal/access"
	"github.com/google/uuid"
)

// folderStore abstracts the persistence layer.
type folderStore interface {
	List(ctx context.Context) ([]Folder, error)
	Get(ctx context.Context, id string) (Folder, error)
	Insert(ctx context.Context, folder Folder) error
	Update(ctx context.Context, id string, mutate func(*Folder)) (Folder, error)
	DeleteSubtree(ctx context.Context, id string) ([]string, error)
}

// fileCleaner removes file records and blobs belonging to deleted folders.
type fileCleaner interface {
	RemoveByFolders(ctx context.Context, folderIDs []string) error
}

// Service implements folder CRUD and password verification.
type Service struct {
	repo    folderStore
	files   fileCleaner
	nowFunc func() time.Time
	newID   func() string
}

// NewService constructs a folder service.
func NewService(repo folderStore, files fileCleaner) *Service {
	return &Service{
		repo:    repo,
		files:   files,
		nowFunc: time.Now,
		newID:   uuid.NewString,
	}
}

// Create validates the input, hashes the password if one was given and
// persists the new folder. A missing parent aborts without any side effect.
func (s *Service) Create(ctx context.Context, input CreateInput) (Folder, error) {
	if strings.TrimSpace(input.Name) == "" {
		return Folder{}, ErrNameRequired
	}

	f := Folder{
		ID:        s.newID(),
		Name:      input.Name,
		ParentID:  input.ParentID,
		CreatedAt: s.nowFunc().UTC(),
	}
	if input.Password != "" {
		hash := access.HashPassword(input.Password)
		f.PasswordHash = &hash
	}

	if err := s.repo.Insert(ctx, f); err != nil {
		return Folder{}, err
	}
	return f, nil
}

// List returns all folders.
func (s *Service) List(ctx context.Context) ([]Folder, error) {
	return s.repo.List(ctx)
}

// Get returns the folder with the given identifier.
func (s *Service) Get(ctx context.Context, id string) (Folder, error) {
	return s.repo.Get(ctx, id)
}

// Update renames the folder and/or changes its password protection. The
// name is replaced only when non-empty; the password is presence-sensitive
// (nil untouched, empty clears, otherwise re-hashed).
func (s *Service) Update(ctx context.Context, id string, input UpdateInput) (Folder, error) {
	return s.repo.Update(ctx, id, func(f *Folder) {
		if input.Name != "" {
			f.Name = input.Name
		}
		if input.Password != nil {
			if *input.Password == "" {
				f.PasswordHash = nil
			} else {
				hash := access.HashPassword(*input.Password)
				f.PasswordHash = &hash
			}
		}
	})
}

// Delete removes the folder and its entire subtree, then the file records
// and blobs that lived anywhere inside it. Deleting an unknown id succeeds.
func (s *Service) Delete(ctx context.Context, id string) error {
	removed, err := s.repo.DeleteSubtree(ctx, id)
	if err != nil {
		return err
	}

	if err := s.files.RemoveByFolders(ctx, removed); err != nil {
		return fmt.Errorf("clean up folder files: %w", err)
	}
	return nil
}

// VerifyPassword grants access to the folder when its stored digest matches
// the supplied password, or when the folder carries no protection at all.
func (s *Service) VerifyPassword(ctx context.Context, id, password string) (Folder, error) {
	f, err := s.repo.Get(ctx, id)
	if err != nil {
		return Folder{}, err
	}

	if err := access.Verify(password, f.PasswordHash); err != nil {
		return Folder{}, err
	}
	return f, nil
}

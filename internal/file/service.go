package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"github.com/alazarbeyenenew2/fileshare/internal/access"
	"github.com/alazarbeyenenew2/fileshare/internal/folder"
	"github.com/google/uuid"
)

const defaultMaxFileSize = 50 * 1024 * 1024

// metadataStore abstracts file record persistence.
type metadataStore interface {
	List(ctx context.Context) ([]Metadata, error)
	Get(ctx context.Context, id string) (Metadata, error)
	Insert(ctx context.Context, meta Metadata) error
	Delete(ctx context.Context, id string) (Metadata, error)
	DeleteByFolders(ctx context.Context, folderIDs []string) ([]Metadata, error)
}

// folderDirectory resolves folder references on upload.
type folderDirectory interface {
	Get(ctx context.Context, id string) (folder.Folder, error)
}

// blobStore abstracts blob persistence.
type blobStore interface {
	Save(id string, r io.Reader) (string, int64, error)
	Open(path string) (io.ReadCloser, error)
	Read(path string) ([]byte, error)
	Remove(path string) error
}

// Service manages file lifecycle operations.
type Service struct {
	repo        metadataStore
	folders     folderDirectory
	blobs       blobStore
	maxFileSize int64
	nowFunc     func() time.Time
	newID       func() string
}

// NewService constructs a file service.
func NewService(repo metadataStore, folders folderDirectory, blobs blobStore, maxFileSize int64) *Service {
	if maxFileSize <= 0 {
		maxFileSize = defaultMaxFileSize
	}
	return &Service{
		repo:        repo,
		folders:     folders,
		blobs:       blobs,
		maxFileSize: maxFileSize,
		nowFunc:     time.Now,
		newID:       uuid.NewString,
	}
}

// UploadInput carries the upload payload. Password, when non-empty, gates
// standalone report access to the uploaded file.
type UploadInput struct {
	FileHeader *multipart.FileHeader
	FolderID   string
	Password   string
}

// Upload writes the blob and appends its metadata record, returning the new
// identifier. The blob is removed again if the metadata write fails, so a
// failed upload leaves nothing behind.
func (s *Service) Upload(ctx context.Context, input UploadInput) (string, error) {
	if input.FileHeader == nil || strings.TrimSpace(input.FolderID) == "" {
		return "", ErrMissingUpload
	}

	if _, err := s.folders.Get(ctx, input.FolderID); err != nil {
		return "", translateFolderError(err)
	}

	if input.FileHeader.Size > s.maxFileSize {
		return "", ErrFileTooLarge
	}

	src, err := input.FileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("open upload file: %w", err)
	}
	defer src.Close()

	id := s.newID()
	path, _, err := s.blobs.Save(id, src)
	if err != nil {
		return "", fmt.Errorf("store blob: %w", err)
	}

	meta := Metadata{
		ID:         id,
		Filename:   sanitizeFilename(input.FileHeader.Filename),
		Filepath:   path,
		FolderID:   input.FolderID,
		UploadedAt: s.nowFunc().UTC(),
	}
	if input.Password != "" {
		hash := access.HashPassword(input.Password)
		meta.PasswordHash = &hash
	}

	if err := s.repo.Insert(ctx, meta); err != nil {
		_ = s.blobs.Remove(path)
		return "", err
	}

	return id, nil
}

// List returns summaries of all file records.
func (s *Service) List(ctx context.Context) ([]Summary, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]Summary, 0, len(records))
	for _, m := range records {
		summaries = append(summaries, m.Summary())
	}
	return summaries, nil
}

// Get returns the file record with the given identifier.
func (s *Service) Get(ctx context.Context, id string) (Metadata, error) {
	return s.repo.Get(ctx, id)
}

// Download retrieves metadata and a reader over the blob. A record whose
// blob is gone is a detectable inconsistency and surfaces as an I/O error.
func (s *Service) Download(ctx context.Context, id string) (Metadata, io.ReadCloser, error) {
	meta, err := s.repo.Get(ctx, id)
	if err != nil {
		return Metadata{}, nil, err
	}

	blob, err := s.blobs.Open(meta.Filepath)
	if err != nil {
		return Metadata{}, nil, err
	}
	return meta, blob, nil
}

// Report verifies the file's own password gate and returns the full blob
// contents for base64 transport.
func (s *Service) Report(ctx context.Context, id, password string) (Metadata, []byte, error) {
	meta, err := s.repo.Get(ctx, id)
	if err != nil {
		return Metadata{}, nil, err
	}

	if err := access.Verify(password, meta.PasswordHash); err != nil {
		return Metadata{}, nil, err
	}

	data, err := s.blobs.Read(meta.Filepath)
	if err != nil {
		return Metadata{}, nil, err
	}
	return meta, data, nil
}

// Delete removes the file record and its blob.
func (s *Service) Delete(ctx context.Context, id string) error {
	meta, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	return s.blobs.Remove(meta.Filepath)
}

// RemoveByFolders deletes every record and blob owned by the given folders.
// Used by the folder cascade; blobs that fail to delete do not abort the
// sweep, the first failure is reported after all removals were attempted.
func (s *Service) RemoveByFolders(ctx context.Context, folderIDs []string) error {
	removed, err := s.repo.DeleteByFolders(ctx, folderIDs)
	if err != nil {
		return err
	}

	var firstErr error
	for _, m := range removed {
		if err := s.blobs.Remove(m.Filepath); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func sanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "upload"
	}
	return name
}

func translateFolderError(err error) error {
	if errors.Is(err, folder.ErrFolderNotFound) {
		return ErrFolderNotFound
	}
	return err
}

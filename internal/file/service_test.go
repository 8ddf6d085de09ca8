package file

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"testing"

	"github.com/alazarbeyenenew2/fileshare/internal/access"
	"github.com/alazarbeyenenew2/fileshare/internal/folder"
)

func TestUploadAndDownloadRoundTrip(t *testing.T) {
	repo := newFakeMetadata()
	folders := newFakeFolders("f1")
	blobs := newFakeBlobs()
	service := NewService(repo, folders, blobs, 0)

	content := []byte("quarter,revenue\nQ1,100\n")
	id, err := service.Upload(context.Background(), UploadInput{
		FileHeader: newFileHeader(t, "report.xlsx", content),
		FolderID:   "f1",
	})
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}

	meta, err := service.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if meta.FolderID != "f1" {
		t.Fatalf("expected folderId f1, got %s", meta.FolderID)
	}
	if meta.Filename != "report.xlsx" {
		t.Fatalf("expected original filename kept in metadata, got %s", meta.Filename)
	}
	if meta.PasswordHash != nil {
		t.Fatalf("expected no report gate without a password")
	}

	gotMeta, reader, err := service.Download(context.Background(), id)
	if err != nil {
		t.Fatalf("Download returned error: %v", err)
	}
	defer reader.Close()
	data, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("read download: %v", err)
	}
	if !bytes.Equal(data, content) {
		t.Fatalf("downloaded bytes differ from upload")
	}
	if gotMeta.ID != id {
		t.Fatalf("download metadata mismatch")
	}
}

func TestUploadValidation(t *testing.T) {
	service := NewService(newFakeMetadata(), newFakeFolders("f1"), newFakeBlobs(), 0)

	if _, err := service.Upload(context.Background(), UploadInput{FolderID: "f1"}); err != ErrMissingUpload {
		t.Fatalf("expected ErrMissingUpload without a blob, got %v", err)
	}

	header := newFileHeader(t, "report.xlsx", []byte("x"))
	if _, err := service.Upload(context.Background(), UploadInput{FileHeader: header}); err != ErrMissingUpload {
		t.Fatalf("expected ErrMissingUpload without a folder id, got %v", err)
	}

	if _, err := service.Upload(context.Background(), UploadInput{FileHeader: header, FolderID: "ghost"}); err != ErrFolderNotFound {
		t.Fatalf("expected ErrFolderNotFound, got %v", err)
	}
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	service := NewService(newFakeMetadata(), newFakeFolders("f1"), newFakeBlobs(), 4)

	header := newFileHeader(t, "big.xlsx", []byte("way too large"))
	if _, err := service.Upload(context.Background(), UploadInput{FileHeader: header, FolderID: "f1"}); err != ErrFileTooLarge {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
}

func TestUploadCleansUpBlobWhenMetadataFails(t *testing.T) {
	repo := newFakeMetadata()
	repo.insertErr = fmt.Errorf("disk full")
	blobs := newFakeBlobs()
	service := NewService(repo, newFakeFolders("f1"), blobs, 0)

	header := newFileHeader(t, "report.xlsx", []byte("x"))
	if _, err := service.Upload(context.Background(), UploadInput{FileHeader: header, FolderID: "f1"}); err == nil {
		t.Fatalf("expected upload to fail")
	}
	if len(blobs.blobs) != 0 {
		t.Fatalf("expected orphan blob removed, %d left", len(blobs.blobs))
	}
}

func TestListOmitsBlobPathAndDigest(t *testing.T) {
	repo := newFakeMetadata()
	service := NewService(repo, newFakeFolders("f1"), newFakeBlobs(), 0)

	pw := "secret"
	id, err := service.Upload(context.Background(), UploadInput{
		FileHeader: newFileHeader(t, "report.xlsx", []byte("x")),
		FolderID:   "f1",
		Password:   pw,
	})
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}

	summaries, err := service.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(summaries))
	}
	if summaries[0].ID != id || summaries[0].Filename != "report.xlsx" || summaries[0].FolderID != "f1" {
		t.Fatalf("unexpected summary: %+v", summaries[0])
	}
}

func TestReportGate(t *testing.T) {
	service := NewService(newFakeMetadata(), newFakeFolders("f1"), newFakeBlobs(), 0)

	content := []byte("protected report")
	id, err := service.Upload(context.Background(), UploadInput{
		FileHeader: newFileHeader(t, "report.xlsx", content),
		FolderID:   "f1",
		Password:   "secret",
	})
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}

	if _, _, err := service.Report(context.Background(), id, "wrong"); err != access.ErrInvalidPassword {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}

	meta, data, err := service.Report(context.Background(), id, "secret")
	if err != nil {
		t.Fatalf("Report returned error: %v", err)
	}
	if meta.Filename != "report.xlsx" {
		t.Fatalf("unexpected report filename %s", meta.Filename)
	}
	if !bytes.Equal(data, content) {
		t.Fatalf("report bytes differ from upload")
	}

	if _, _, err := service.Report(context.Background(), "missing", "secret"); err != ErrFileNotFound {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
}

func TestReportWithoutGateIsOpen(t *testing.T) {
	service := NewService(newFakeMetadata(), newFakeFolders("f1"), newFakeBlobs(), 0)

	id, err := service.Upload(context.Background(), UploadInput{
		FileHeader: newFileHeader(t, "open.xlsx", []byte("x")),
		FolderID:   "f1",
	})
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}

	if _, _, err := service.Report(context.Background(), id, ""); err != nil {
		t.Fatalf("ungated report should open without password, got %v", err)
	}
}

func TestDeleteRemovesMetadataAndBlob(t *testing.T) {
	blobs := newFakeBlobs()
	service := NewService(newFakeMetadata(), newFakeFolders("f1"), blobs, 0)

	id, err := service.Upload(context.Background(), UploadInput{
		FileHeader: newFileHeader(t, "report.xlsx", []byte("x")),
		FolderID:   "f1",
	})
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}

	if err := service.Delete(context.Background(), id); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := service.Get(context.Background(), id); err != ErrFileNotFound {
		t.Fatalf("expected record removed, got %v", err)
	}
	if len(blobs.blobs) != 0 {
		t.Fatalf("expected blob removed, %d left", len(blobs.blobs))
	}

	if err := service.Delete(context.Background(), id); err != ErrFileNotFound {
		t.Fatalf("expected ErrFileNotFound on second delete, got %v", err)
	}
}

func TestDownloadWithMissingBlobFails(t *testing.T) {
	blobs := newFakeBlobs()
	service := NewService(newFakeMetadata(), newFakeFolders("f1"), blobs, 0)

	id, err := service.Upload(context.Background(), UploadInput{
		FileHeader: newFileHeader(t, "report.xlsx", []byte("x")),
		FolderID:   "f1",
	})
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}

	// Metadata survives but the blob vanished out from under it.
	for path := range blobs.blobs {
		delete(blobs.blobs, path)
	}

	if _, _, err := service.Download(context.Background(), id); err == nil {
		t.Fatalf("expected error downloading a file whose blob is gone")
	}
}

func TestRemoveByFolders(t *testing.T) {
	blobs := newFakeBlobs()
	service := NewService(newFakeMetadata(), newFakeFolders("f1", "f2"), blobs, 0)

	in1, _ := service.Upload(context.Background(), UploadInput{
		FileHeader: newFileHeader(t, "a.xlsx", []byte("a")), FolderID: "f1",
	})
	in2, _ := service.Upload(context.Background(), UploadInput{
		FileHeader: newFileHeader(t, "b.xlsx", []byte("b")), FolderID: "f1",
	})
	keep, _ := service.Upload(context.Background(), UploadInput{
		FileHeader: newFileHeader(t, "c.xlsx", []byte("c")), FolderID: "f2",
	})

	if err := service.RemoveByFolders(context.Background(), []string{"f1"}); err != nil {
		t.Fatalf("RemoveByFolders returned error: %v", err)
	}

	for _, id := range []string{in1, in2} {
		if _, err := service.Get(context.Background(), id); err != ErrFileNotFound {
			t.Fatalf("expected file %s removed, got %v", id, err)
		}
	}
	if _, err := service.Get(context.Background(), keep); err != nil {
		t.Fatalf("expected unrelated file kept, got %v", err)
	}
	if len(blobs.blobs) != 1 {
		t.Fatalf("expected one blob left, got %d", len(blobs.blobs))
	}
}

// --- fakes ----

func newFileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", name)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(int64(buf.Len()) + 1024)
	if err != nil {
		t.Fatalf("parse multipart form: %v", err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}

type fakeMetadata struct {
	records   []Metadata
	insertErr error
}

func newFakeMetadata() *fakeMetadata {
	return &fakeMetadata{}
}

func (r *fakeMetadata) List(ctx context.Context) ([]Metadata, error) {
	out := make([]Metadata, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *fakeMetadata) Get(ctx context.Context, id string) (Metadata, error) {
	for _, m := range r.records {
		if m.ID == id {
			return m, nil
		}
	}
	return Metadata{}, ErrFileNotFound
}

func (r *fakeMetadata) Insert(ctx context.Context, meta Metadata) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.records = append(r.records, meta)
	return nil
}

func (r *fakeMetadata) Delete(ctx context.Context, id string) (Metadata, error) {
	for i, m := range r.records {
		if m.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return m, nil
		}
	}
	return Metadata{}, ErrFileNotFound
}

func (r *fakeMetadata) DeleteByFolders(ctx context.Context, folderIDs []string) ([]Metadata, error) {
	doomed := map[string]bool{}
	for _, id := range folderIDs {
		doomed[id] = true
	}

	var removed []Metadata
	kept := r.records[:0]
	for _, m := range r.records {
		if doomed[m.FolderID] {
			removed = append(removed, m)
			continue
		}
		kept = append(kept, m)
	}
	r.records = kept
	return removed, nil
}

type fakeFolders struct {
	ids map[string]bool
}

func newFakeFolders(ids ...string) *fakeFolders {
	known := map[string]bool{}
	for _, id := range ids {
		known[id] = true
	}
	return &fakeFolders{ids: known}
}

func (f *fakeFolders) Get(ctx context.Context, id string) (folder.Folder, error) {
	if !f.ids[id] {
		return folder.Folder{}, folder.ErrFolderNotFound
	}
	return folder.Folder{ID: id}, nil
}

type fakeBlobs struct {
	blobs map[string][]byte
}

func newFakeBlobs() *fakeBlobs {
	return &fakeBlobs{blobs: map[string][]byte{}}
}

func (b *fakeBlobs) Save(id string, r io.Reader) (string, int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", 0, err
	}
	path := "/blobs/" + id
	b.blobs[path] = data
	return path, int64(len(data)), nil
}

func (b *fakeBlobs) Open(path string) (io.ReadCloser, error) {
	data, ok := b.blobs[path]
	if !ok {
		return nil, fmt.Errorf("open blob: missing %s", path)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (b *fakeBlobs) Read(path string) ([]byte, error) {
	data, ok := b.blobs[path]
	if !ok {
		return nil, fmt.Errorf("read blob: missing %s", path)
	}
	return data, nil
}

func (b *fakeBlobs) Remove(path string) error {
	delete(b.blobs, path)
	return nil
}

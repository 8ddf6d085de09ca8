package file

import "time"

// Metadata describes one uploaded blob. Filepath is the absolute blob
// location on disk and is never exposed in listings. PasswordHash, when
// set, gates standalone report access to this file with the same digest
// scheme folders use.
type Metadata struct {
	ID           string    `json:"id"`
	Filename     string    `json:"filename"`
	Filepath     string    `json:"filepath"`
	FolderID     string    `json:"folderId"`
	PasswordHash *string   `json:"passwordHash,omitempty"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

// Summary is the listing view of a file record, with the blob path and the
// password digest stripped.
type Summary struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	FolderID   string    `json:"folderId"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Summary strips fields that must not leave the service.
func (m Metadata) Summary() Summary {
	return Summary{
		ID:         m.ID,
		Filename:   m.Filename,
		FolderID:   m.FolderID,
		UploadedAt: m.UploadedAt,
	}
}

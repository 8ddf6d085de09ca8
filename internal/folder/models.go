package folder

import "time"

// Folder is one node in the folder forest. ParentID is nil for root-level
// folders; PasswordHash is nil when the folder is unrestricted. QRCodePath
// is reserved: QR codes are rendered on demand and never persisted.
type Folder struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ParentID     *string   `json:"parentId"`
	PasswordHash *string   `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
	QRCodePath   *string   `json:"qrCodePath"`
}

// CreateInput carries data for folder creation.
type CreateInput struct {
	Name     string
	ParentID *string
	Password string
}

// UpdateInput carries data for folder updates. Name is applied only when
// non-empty. Password is distinguished by presence: nil leaves protection
// untouched, a pointer to the empty string clears it, anything else
// replaces it.
type UpdateInput struct {
	Name     string
	Password *string
}

package file

import "errors"

var (
	// ErrFileNotFound signals that the file record could not be located.
	ErrFileNotFound = errors.New("file not found")
	// ErrMissingUpload is returned when the upload lacks a blob or folder id.
	ErrMissingUpload = errors.New("missing file or folder id")
	// ErrFolderNotFound indicates the target folder does not exist.
	ErrFolderNotFound = errors.New("folder not found")
	// ErrFileTooLarge signals that the upload exceeds configured limits.
	ErrFileTooLarge = errors.New("file too large")
)

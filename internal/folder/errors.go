package folder

import "errors"

var (
	// ErrFolderNotFound signals that the folder could not be located.
	ErrFolderNotFound = errors.New("folder not found")
	// ErrParentNotFound indicates the referenced parent folder does not exist.
	ErrParentNotFound = errors.New("parent folder not found")
	// ErrNameRequired is returned when a folder is created without a name.
	ErrNameRequired = errors.New("folder name required")
)

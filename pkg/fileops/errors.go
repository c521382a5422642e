package fileops

import (
	"errors"
	"fmt"
)

// Kind classifies why a guarded file operation was refused or failed.
type Kind int

const (
	// KindPathResolution means the working directory could not be determined while sanitizing.
	KindPathResolution Kind = iota + 1
	// KindNotFound means the path does not exist or its metadata could not be read.
	KindNotFound
	// KindWrongFileType means the path is a directory, symlink or other non-regular entry.
	KindWrongFileType
	// KindExtensionMismatch means the path lacks the required extension.
	KindExtensionMismatch
	// KindAlreadyExists means the destination is already present.
	KindAlreadyExists
	// KindIO means an underlying read, write, remove or mkdir call failed.
	KindIO
)

// String returns a short stable name for the kind, suitable for log fields.
func (k Kind) String() string {
	switch k {
	case KindPathResolution:
		return "path_resolution"
	case KindNotFound:
		return "not_found"
	case KindWrongFileType:
		return "wrong_file_type"
	case KindExtensionMismatch:
		return "extension_mismatch"
	case KindAlreadyExists:
		return "already_exists"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// ErrSymlink is wrapped by errors that reject a path because it is a symbolic link.
var ErrSymlink = errors.New("path is a symbolic link")

// Error is returned by every function in this package that touches the filesystem.
type Error struct {
	Kind    Kind   // Failure classification
	Path    string // Path the failure refers to
	Message string // Human-readable description
	Err     error  // Underlying error, if any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Message, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Path)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new file operation error
func NewError(kind Kind, path, message string, err error) error {
	return &Error{
		Kind:    kind,
		Path:    path,
		Message: message,
		Err:     err,
	}
}

// KindOf returns the kind of the first *Error in err's chain, or 0 if there is none.
func KindOf(err error) Kind {
	var opErr *Error
	if errors.As(err, &opErr) {
		return opErr.Kind
	}
	return 0
}

// IsKind checks if an error is a file operation error with the specified kind
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

package profile

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by every *NotFoundError.
var ErrNotFound = errors.New("profile not found")

// ErrInvalidUTF8 is returned by Profile.Validate.
var ErrInvalidUTF8 = errors.New("profile field is not valid UTF-8")

// NotFoundError reports that no profile carries the requested name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("profile %q not found", e.Name)
}

// Is lets errors.Is(err, ErrNotFound) match any *NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Storage operations reported in StorageError.Op.
const (
	OpRead   = "read"
	OpWrite  = "write"
	OpDecode = "decode"
	OpEncode = "encode"
)

// StorageError wraps a failure to read, write or (de)serialize the profiles.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to %s profiles at %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err signals a missing profile.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsStorageError reports whether err carries a *StorageError.
func IsStorageError(err error) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr)
}

package images

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyResult means the resolution scan found no decodable image,
	// so no default shrink target exists.
	ErrEmptyResult = errors.New("no decodable images found")

	// ErrInvalidShrink is returned for a non-positive shrink target
	ErrInvalidShrink = errors.New("shrink target must be a positive integer")
)

// PathError reports a scan directory that is missing or unreadable
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("can't read path for scan %s: %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

// ImageDecodeError reports a file that failed to decode during the duplicate pass.
// Files are expected to stay unchanged between the resolution scan and matching.
type ImageDecodeError struct {
	Path string
	Err  error
}

func (e *ImageDecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Path, e.Err)
}

func (e *ImageDecodeError) Unwrap() error { return e.Err }

// ExportAccessError reports an export destination that can't be written or created
type ExportAccessError struct {
	Path string
	Err  error
}

func (e *ExportAccessError) Error() string {
	return fmt.Sprintf("can't access export path %s: %v", e.Path, e.Err)
}

func (e *ExportAccessError) Unwrap() error { return e.Err }

package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDataNotFound is matched by errors returned when no candidate path was readable
	ErrDataNotFound = errors.New("catalog data not found")

	// ErrMalformedData is matched by errors returned when the first readable file does not parse
	ErrMalformedData = errors.New("malformed catalog data")
)

// NotFoundError lists every candidate path that was probed
type NotFoundError struct {
	Tried []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find %s in any of these locations:\n- %s\n\nPlease ensure the data file exists in one of these paths",
		FileName, strings.Join(e.Tried, "\n- "))
}

// Is reports whether target is ErrDataNotFound
func (e *NotFoundError) Is(target error) bool {
	return target == ErrDataNotFound
}

// MalformedError carries the path that was read and the parse diagnostic
type MalformedError struct {
	Path string
	Err  error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *MalformedError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrMalformedData
func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformedData
}

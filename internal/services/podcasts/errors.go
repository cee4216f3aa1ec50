package podcasts

import "errors"

var (
	// ErrNotFound is returned by the repository when a record does not exist
	ErrNotFound = errors.New("record not found")
)

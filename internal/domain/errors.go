package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedDocument means the bytes could not be parsed as a document.
	ErrMalformedDocument = errors.New("malformed document")
	// ErrInvalidParameter means a caller passed an argument outside its domain.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// DocumentError ties an extraction failure to the document that caused it.
type DocumentError struct {
	Name string
	Err  error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("document %q: %v", e.Name, e.Err)
}

func (e *DocumentError) Unwrap() error { return e.Err }

package service

import (
	"errors"
	"fmt"
)

var (
	ErrIDRequired          = errors.New("id is required")
	ErrCertificateNotFound = errors.New("certificate not found")
	ErrDocumentNotFound    = errors.New("certificate document not found")
	ErrInvalidDocument     = errors.New("certificate document is not valid JSON")
	ErrInvalidIntroduction = errors.New("invalid introduction")
)

// Error is a failure the service recognises and reports to its caller, as opposed to
// infrastructure faults which are returned wrapped with fmt.Errorf.
type Error struct {
	Op  string
	ID  string
	Err error
}

func (e *Error) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

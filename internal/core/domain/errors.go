package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput covers empty uploads and unsupported media types.
	ErrInvalidInput = errors.New("invalid input")
	// ErrExtraction covers OCR and PDF library failures; the underlying
	// message is surfaced to the caller, never a partial result.
	ErrExtraction = errors.New("text extraction failed")
	// ErrTemporary marks failures worth retrying on a later request.
	ErrTemporary = errors.New("temporary failure")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}

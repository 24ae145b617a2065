// Package attrval implements the attribute-value model used to attach
// free-form, possibly nested annotations to phenotype records.
package attrval

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch indicates a payload read under the wrong kind
	ErrTypeMismatch = errors.New("attrval: type mismatch")

	// ErrMissingRequiredField indicates a nil structured payload
	ErrMissingRequiredField = errors.New("attrval: missing required field")

	// ErrIndexOutOfRange indicates a list access past either end
	ErrIndexOutOfRange = errors.New("attrval: index out of range")

	// ErrUnknownVariant indicates an unrecognized variant tag
	ErrUnknownVariant = errors.New("attrval: unknown variant")

	// ErrDepthExceeded indicates a tree deeper than the configured bound
	ErrDepthExceeded = errors.New("attrval: depth exceeded")

	// ErrSizeLimit indicates a collection count above the configured bound
	ErrSizeLimit = errors.New("attrval: size limit exceeded")

	// ErrMalformed indicates a truncated or invalid encoded buffer
	ErrMalformed = errors.New("attrval: malformed encoding")
)

// TypeMismatchError reports the kind a caller asked for against the
// kind actually populated. Unwraps to ErrTypeMismatch.
type TypeMismatchError struct {
	Expected Kind
	Actual   Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("attrval: type mismatch: expected %s, got %s", e.Expected, e.Actual)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// IndexError reports an out-of-range list access. Unwraps to
// ErrIndexOutOfRange.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("attrval: index %d out of range [0,%d)", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// UnknownVariantError reports a variant tag outside the known
// enumeration. Unwraps to ErrUnknownVariant.
type UnknownVariantError struct {
	Tag uint8
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("attrval: unknown variant tag %d", e.Tag)
}

func (e *UnknownVariantError) Unwrap() error { return ErrUnknownVariant }

package einvoice

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownDocument is returned when the source data is not a
	// document type the reader recognizes.
	ErrUnknownDocument = errors.New("unknown document type")

	// ErrStructure indicates the input could not be interpreted as a
	// document tree at all, or a lookup path was ill-formed.
	ErrStructure = errors.New("malformed document structure")

	// ErrMissingField indicates a field that is mandatory once its
	// containing subtree is present was absent.
	ErrMissingField = errors.New("required field missing")

	// ErrConversion indicates a text value could not be converted to
	// its expected type.
	ErrConversion = errors.New("invalid value")
)

// FieldError ties one of the sentinel errors above to the document path
// that triggered it, so malformed source documents can be diagnosed.
type FieldError struct {
	// Path is the qualified path of the offending element.
	Path string
	// Value holds the raw text content, when relevant.
	Value string
	// Err is one of the sentinel errors.
	Err error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %v (%q)", e.Path, e.Err, e.Value)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying sentinel for errors.Is checks.
func (e *FieldError) Unwrap() error {
	return e.Err
}

package textcodec

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrCannotReadSignature = errors.New("cannot read signature")
	ErrBadLayerSize        = errors.New("invalid layer size")
	ErrWrongValueCount     = errors.New("wrong number of values for layer")
	ErrNotANumber          = errors.New("value is not a number")
	ErrTruncated           = errors.New("unexpected end of document")
)

// FormatError reports a structural or lexical violation of the text grammar,
// naming the construct that failed and, where known, the layer boundary and
// row it belongs to.
type FormatError struct {
	Construct string // What was being parsed (e.g., "signature", "weight row", "bias row")
	Boundary  int    // Layer boundary index, or -1 if not layer-specific
	Row       int    // Row within the block, or -1 if not row-specific
	Err       error  // Underlying cause
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	switch {
	case e.Boundary >= 0 && e.Row >= 0:
		return fmt.Sprintf("wrong file format: %s %d of layer %d: %v", e.Construct, e.Row, e.Boundary, e.Err)
	case e.Boundary >= 0:
		return fmt.Sprintf("wrong file format: %s of layer %d: %v", e.Construct, e.Boundary, e.Err)
	default:
		return fmt.Sprintf("wrong file format: %s: %v", e.Construct, e.Err)
	}
}

// Unwrap returns the underlying cause, so errors.Is sees the sentinel.
func (e *FormatError) Unwrap() error {
	return e.Err
}

func formatErr(construct string, err error) error {
	return &FormatError{Construct: construct, Boundary: -1, Row: -1, Err: err}
}

func layerErr(construct string, boundary, row int, err error) error {
	return &FormatError{Construct: construct, Boundary: boundary, Row: row, Err: err}
}

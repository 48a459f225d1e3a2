package acctlayout

import (
	"errors"
	"fmt"

	"github.com/unkn0wn-root/acctlayout/internal/wire"
)

// Error kinds. Match with errors.Is; field failures arrive wrapped in *FieldError.
var (
	ErrBufferUnderflow = wire.ErrBufferUnderflow
	ErrOverflow        = wire.ErrOverflow
	ErrInvalidSign     = wire.ErrInvalidSign
	ErrSizeMismatch    = wire.ErrSizeMismatch
	ErrInvalidEncoding = wire.ErrInvalidEncoding

	ErrTypeMismatch  = errors.New("acctlayout: unsupported value type")
	ErrMissingField  = errors.New("acctlayout: missing field")
	ErrTrailingBytes = errors.New("acctlayout: trailing bytes")
	ErrTooLarge      = errors.New("acctlayout: payload too large")
)

// FieldError reports which field failed, where, and why.
// Layout is the enclosing struct layout; it is empty when a field is used on
// its own. Field is a dotted path for members of nested structs.
type FieldError struct {
	Layout string
	Field  string
	Op     string // "decode" or "encode"
	Offset int
	Err    error
}

func (e *FieldError) Error() string {
	name := e.Field
	switch {
	case e.Layout != "" && e.Field != "":
		name = e.Layout + "." + e.Field
	case e.Layout != "":
		name = e.Layout
	}
	return fmt.Sprintf("acctlayout: %s %s at offset %d: %v", e.Op, name, e.Offset, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

func decodeErr(field string, off int, err error) error {
	return &FieldError{Field: field, Op: "decode", Offset: off, Err: err}
}

func encodeErr(field string, off int, err error) error {
	return &FieldError{Field: field, Op: "encode", Offset: off, Err: err}
}

// within re-roots err, raised by member, under the struct layout named
// layout. Errors from nested structs keep their path below member. The
// offset of an existing *FieldError is kept; off is used otherwise.
func within(layout, member string, off int, op string, err error) *FieldError {
	fe, ok := err.(*FieldError)
	if !ok {
		return &FieldError{Layout: layout, Field: member, Op: op, Offset: off, Err: err}
	}
	path := member
	if fe.Layout != "" && fe.Field != "" {
		path = member + "." + fe.Field
	}
	return &FieldError{Layout: layout, Field: path, Op: fe.Op, Offset: fe.Offset, Err: fe.Err}
}

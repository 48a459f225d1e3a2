package acctlayout

// Layout is the untyped calling convention shared by every field and by
// struct layouts, so fields can be sequenced without knowing their Go types.
type Layout interface {
	// Property is the record key the field is decoded into.
	Property() string

	// Span returns the number of bytes the field occupies at off in b.
	Span(b []byte, off int) (int, error)

	// SizeOf returns the number of bytes EncodeAny would write for v.
	SizeOf(v any) (int, error)

	DecodeAny(b []byte, off int) (any, error)

	// EncodeAny writes v at off and returns the bytes written.
	EncodeAny(v any, b []byte, off int) (int, error)
}

// Field is a Layout with a typed decode/encode pair.
// Decode(buffer, offset) -> value; Encode(value, buffer, offset) -> bytes written.
type Field[V any] interface {
	Layout
	Decode(b []byte, off int) (V, error)
	Encode(v V, b []byte, off int) (int, error)
}

// Record is a decoded struct layout keyed by member property.
type Record map[string]any

var (
	_ Field[Record] = (*StructLayout)(nil)
	_ Layout        = PublicKeyField{}
	_ Layout        = UintField{}
	_ Layout        = IntField{}
	_ Layout        = StringField{}
)

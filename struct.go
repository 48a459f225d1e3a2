package acctlayout

import (
	"fmt"

	"github.com/unkn0wn-root/acctlayout/internal/wire"
)

// StructLayout sequences named fields at increasing offsets.
// It is immutable once built and safe for concurrent use. WithLogger and
// WithHooks return modified copies.
type StructLayout struct {
	name   string
	fields []Layout
	fixed  int // total width, or -1 when a member is variable-width
	log    Logger
	hooks  Hooks
}

// NewStruct builds a struct layout. Member properties must be non-empty and
// unique.
func NewStruct(name string, fields ...Layout) (*StructLayout, error) {
	seen := make(map[string]struct{}, len(fields))
	for i, f := range fields {
		if f == nil {
			return nil, fmt.Errorf("acctlayout: struct %q: field %d is nil", name, i)
		}
		p := f.Property()
		if p == "" {
			return nil, fmt.Errorf("acctlayout: struct %q: field %d has no name", name, i)
		}
		if _, dup := seen[p]; dup {
			return nil, fmt.Errorf("acctlayout: struct %q: duplicate field %q", name, p)
		}
		seen[p] = struct{}{}
	}

	s := &StructLayout{
		name:   name,
		fields: append([]Layout(nil), fields...),
		fixed:  fixedWidth(fields),
		log:    NopLogger{},
		hooks:  NopHooks{},
	}
	return s, nil
}

// Struct is like NewStruct but panics on an invalid member list.
func Struct(name string, fields ...Layout) *StructLayout {
	s, err := NewStruct(name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

func fixedWidth(fields []Layout) int {
	total := 0
	for _, f := range fields {
		var w int
		switch x := f.(type) {
		case PublicKeyField:
			w = wire.KeySize
		case UintField:
			w = x.width
		case IntField:
			w = x.width
		case *StructLayout:
			w = x.fixed
		default:
			w = -1
		}
		if w < 0 {
			return -1
		}
		total += w
	}
	return total
}

// WithLogger returns a copy of s that logs member failures to l.
// A nil l disables logging.
func (s *StructLayout) WithLogger(l Logger) *StructLayout {
	cp := *s
	cp.log = coalesce[Logger](l, NopLogger{})
	return &cp
}

// WithHooks returns a copy of s that reports member failures to h.
func (s *StructLayout) WithHooks(h Hooks) *StructLayout {
	cp := *s
	cp.hooks = coalesce[Hooks](h, NopHooks{})
	return &cp
}

func (s *StructLayout) Property() string { return s.name }

// Fields returns a copy of the member list in wire order.
func (s *StructLayout) Fields() []Layout { return append([]Layout(nil), s.fields...) }

// FixedSize returns the encoded width when every member is fixed-width.
func (s *StructLayout) FixedSize() (int, bool) { return s.fixed, s.fixed >= 0 }

// Offset returns the offset of member property within the struct as laid
// out in b, which is only needed when variable-width members precede it.
func (s *StructLayout) Offset(property string, b []byte) (int, error) {
	off := 0
	for _, f := range s.fields {
		if f.Property() == property {
			return off, nil
		}
		n, err := f.Span(b, off)
		if err != nil {
			return 0, within(s.name, f.Property(), off, "decode", err)
		}
		off += n
	}
	return 0, fmt.Errorf("%w: %q in %q", ErrMissingField, property, s.name)
}

func (s *StructLayout) Span(b []byte, off int) (int, error) {
	if s.fixed >= 0 {
		if err := wire.Check(b, off, s.fixed); err != nil {
			return 0, &FieldError{Layout: s.name, Op: "decode", Offset: off, Err: err}
		}
		return s.fixed, nil
	}
	total := 0
	for _, f := range s.fields {
		n, err := f.Span(b, off+total)
		if err != nil {
			return 0, within(s.name, f.Property(), off+total, "decode", err)
		}
		total += n
	}
	return total, nil
}

func (s *StructLayout) SizeOf(v any) (int, error) {
	rec, err := toRecord(v)
	if err != nil {
		return 0, &FieldError{Layout: s.name, Op: "encode", Err: err}
	}
	return s.size(rec)
}

// size reports error offsets relative to the start of the struct.
func (s *StructLayout) size(rec Record) (int, error) {
	total := 0
	for _, f := range s.fields {
		val, ok := rec[f.Property()]
		if !ok {
			return 0, within(s.name, f.Property(), total, "encode", ErrMissingField)
		}
		n, err := f.SizeOf(val)
		if err != nil {
			fe := within(s.name, f.Property(), 0, "encode", err)
			fe.Offset += total
			return 0, fe
		}
		total += n
	}
	return total, nil
}

// Decode reads every member in order starting at off.
func (s *StructLayout) Decode(b []byte, off int) (Record, error) {
	rec := make(Record, len(s.fields))
	pos := off
	for _, f := range s.fields {
		v, err := f.DecodeAny(b, pos)
		if err != nil {
			return nil, s.decodeFailed(f.Property(), pos, err)
		}
		n, err := f.Span(b, pos)
		if err != nil {
			return nil, s.decodeFailed(f.Property(), pos, err)
		}
		rec[f.Property()] = v
		pos += n
	}
	return rec, nil
}

// Encode writes every member of rec in order starting at off and returns
// the bytes written. Keys of rec that are not members are ignored. On error
// b is left untouched.
func (s *StructLayout) Encode(rec Record, b []byte, off int) (int, error) {
	total, err := s.size(rec)
	if err != nil {
		err.(*FieldError).Offset += off
		s.encodeFailed(err)
		return 0, err
	}
	if err := wire.Check(b, off, total); err != nil {
		return 0, &FieldError{Layout: s.name, Op: "encode", Offset: off, Err: err}
	}

	scratch := make([]byte, total)
	pos := 0
	for _, f := range s.fields {
		n, err := f.EncodeAny(rec[f.Property()], scratch, pos)
		if err != nil {
			// scratch offsets are relative to the struct start
			fe := within(s.name, f.Property(), pos, "encode", err)
			fe.Offset += off
			s.encodeFailed(fe)
			return 0, fe
		}
		pos += n
	}
	copy(b[off:off+total], scratch)
	return total, nil
}

func (s *StructLayout) decodeFailed(member string, pos int, err error) *FieldError {
	fe := within(s.name, member, pos, "decode", err)
	s.log.Debug("decode failed", Fields{"layout": s.name, "field": fe.Field, "offset": fe.Offset, "err": fe.Err})
	s.hooks.FieldDecodeFailed(s.name, fe.Field, fe.Offset, fe.Err)
	return fe
}

func (s *StructLayout) encodeFailed(err error) {
	fe, ok := err.(*FieldError)
	if !ok {
		return
	}
	s.log.Debug("encode failed", Fields{"layout": s.name, "field": fe.Field, "err": fe.Err})
	s.hooks.FieldEncodeFailed(s.name, fe.Field, fe.Err)
}

func (s *StructLayout) DecodeAny(b []byte, off int) (any, error) { return s.Decode(b, off) }

func (s *StructLayout) EncodeAny(v any, b []byte, off int) (int, error) {
	rec, err := toRecord(v)
	if err != nil {
		return 0, &FieldError{Layout: s.name, Op: "encode", Offset: off, Err: err}
	}
	return s.Encode(rec, b, off)
}

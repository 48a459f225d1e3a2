package acctlayout

// Hooks lightweight callbacks for high-signal codec events.
// Implementations MUST be cheap and non-blocking: layouts call them inline
// and may be shared across goroutines.
type Hooks interface {
	// A member of a struct layout failed to decode at offset.
	FieldDecodeFailed(layout, field string, offset int, err error)

	// A member of a struct layout rejected its value on encode.
	FieldEncodeFailed(layout, field string, err error)

	// A strict decode found extra bytes after the last member.
	TrailingBytes(layout string, extra int)

	// A payload was refused for exceeding a size limit.
	PayloadRejected(size, limit int)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) FieldDecodeFailed(string, string, int, error) {}
func (NopHooks) FieldEncodeFailed(string, string, error)      {}
func (NopHooks) TrailingBytes(string, int)                    {}
func (NopHooks) PayloadRejected(int, int)                     {}

package acctlayout

// Property names used when a constructor is given an empty name.
const (
	defaultKeyName     = "publicKey"
	defaultUint64Name  = "uint64"
	defaultUint128Name = "uint128"
	defaultInt64Name   = "int64"
	defaultInt128Name  = "int128"
	defaultStringName  = "string"
)

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

// Package acctlayout decodes and encodes the little-endian account layouts
// used by Solana-style ledgers: 32-byte public keys, 64/128-bit signed and
// unsigned integers and length-prefixed UTF-8 strings.
//
// Components:
//   - Fields: PublicKey, U64/U128 (Uint), I64/I128 (Int), String. Each has a
//     typed Decode(buffer, offset) / Encode(value, buffer, offset) pair and
//     satisfies the untyped Layout interface.
//   - Struct: sequences named fields at increasing offsets into a Record.
//     Structs are Layouts themselves and nest.
//   - Plain: a serializer-friendly view of a Record (see package codec).
//
// Wire formats:
//
//	pubkey  - 32 raw bytes
//	u64     - 8 bytes LE              u128 - 16 bytes LE
//	i64     - 8 bytes LE two's compl. i128 - 16 bytes LE two's compl.
//	string  - len(u32 LE) | pad(u32, zero) | utf-8 bytes(len)
//
// Integers decode to *big.Int. Encode never truncates: out-of-range values
// fail with ErrOverflow or ErrInvalidSign, and a failed encode writes nothing.
//
// Layouts hold no mutable state and are safe for concurrent use:
//
//	reserve := acctlayout.Struct("reserve",
//	    acctlayout.U64("version"),
//	    acctlayout.PublicKey("lendingMarket"),
//	    acctlayout.U128("cumulativeBorrowRate"),
//	    acctlayout.String("name"),
//	)
//	rec, err := reserve.Decode(data, 0)
package acctlayout

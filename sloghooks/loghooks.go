// Package sloghooks reports acctlayout hook events through log/slog.
package sloghooks

import (
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/acctlayout"
)

type Options struct {
	// Sampling to avoid floods when a feed of corrupt accounts arrives;
	// 0/1 = log all.
	DecodeFailEvery uint64
	EncodeFailEvery uint64
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	decodeCtr atomic.Uint64
	encodeCtr atomic.Uint64
}

var _ acctlayout.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) FieldDecodeFailed(layout, field string, offset int, err error) {
	if h.l == nil || !sample(h.opts.DecodeFailEvery, &h.decodeCtr) {
		return
	}
	h.l.Debug("acctlayout.field_decode_failed",
		"layout", layout,
		"field", field,
		"offset", offset,
		"err", err)
}

func (h *Hooks) FieldEncodeFailed(layout, field string, err error) {
	if h.l == nil || !sample(h.opts.EncodeFailEvery, &h.encodeCtr) {
		return
	}
	h.l.Debug("acctlayout.field_encode_failed",
		"layout", layout,
		"field", field,
		"err", err)
}

func (h *Hooks) TrailingBytes(layout string, extra int) {
	if h.l == nil {
		return
	}
	h.l.Info("acctlayout.trailing_bytes",
		"layout", layout,
		"extra", extra)
}

func (h *Hooks) PayloadRejected(size, limit int) {
	if h.l == nil {
		return
	}
	h.l.Warn("acctlayout.payload_rejected",
		"size", size,
		"limit", limit)
}

package sloghooks

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/unkn0wn-root/acctlayout"
)

func newBuf() (*bytes.Buffer, *slog.Logger) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return &buf, l
}

func TestDecodeFailuresAreSampled(t *testing.T) {
	buf, l := newBuf()
	s := acctlayout.Struct("vault", acctlayout.U64("amount")).
		WithHooks(New(l, Options{DecodeFailEvery: 3}))

	for i := 0; i < 9; i++ {
		_, _ = s.Decode(nil, 0)
	}
	if got := strings.Count(buf.String(), "acctlayout.field_decode_failed"); got != 3 {
		t.Fatalf("logged %d decode failures, want 3:\n%s", got, buf.String())
	}
	if !strings.Contains(buf.String(), "field=amount") {
		t.Fatalf("missing field attr:\n%s", buf.String())
	}
}

func TestUnsampledEvents(t *testing.T) {
	buf, l := newBuf()
	h := New(l, Options{})
	h.FieldEncodeFailed("vault", "amount", acctlayout.ErrOverflow)
	h.TrailingBytes("vault", 4)
	h.PayloadRejected(11, 10)

	out := buf.String()
	for _, want := range []string{
		"acctlayout.field_encode_failed",
		"acctlayout.trailing_bytes",
		"extra=4",
		"level=WARN msg=acctlayout.payload_rejected size=11 limit=10",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestNilLoggerIsSilent(t *testing.T) {
	h := New(nil, Options{})
	h.FieldDecodeFailed("a", "b", 0, nil)
	h.FieldEncodeFailed("a", "b", nil)
	h.TrailingBytes("a", 1)
	h.PayloadRejected(1, 0)
}

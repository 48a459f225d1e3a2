package zap

import (
	"testing"

	"github.com/unkn0wn-root/acctlayout"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStructFailuresReachZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := acctlayout.Struct("vault", acctlayout.U64("amount")).
		WithLogger(ZapLogger{L: zap.New(core)})

	if _, err := s.Decode([]byte{1, 2}, 0); err == nil {
		t.Fatalf("expected decode error")
	}

	entries := logs.FilterMessage("decode failed").All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["layout"] != "vault" || ctx["field"] != "amount" || ctx["offset"] != int64(0) {
		t.Fatalf("unexpected context %v", ctx)
	}
	if _, ok := ctx["err"]; !ok {
		t.Fatalf("missing err field: %v", ctx)
	}
}

func TestLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := ZapLogger{L: zap.New(core)}
	l.Debug("d", nil)
	l.Info("i", acctlayout.Fields{"k": 1})
	l.Warn("w", nil)
	l.Error("e", nil)

	want := []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}
	all := logs.All()
	if len(all) != len(want) {
		t.Fatalf("got %d entries", len(all))
	}
	for i, e := range all {
		if e.Level != want[i] {
			t.Fatalf("entry %d level %v want %v", i, e.Level, want[i])
		}
	}
}

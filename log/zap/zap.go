// Package zap adapts a *zap.Logger to acctlayout.Logger.
package zap

import (
	"sort"

	"github.com/unkn0wn-root/acctlayout"
	"go.uber.org/zap"
)

var _ acctlayout.Logger = ZapLogger{}

type ZapLogger struct{ L *zap.Logger }

func (z ZapLogger) Debug(msg string, f acctlayout.Fields) { z.L.Debug(msg, zf(f)...) }
func (z ZapLogger) Info(msg string, f acctlayout.Fields)  { z.L.Info(msg, zf(f)...) }
func (z ZapLogger) Warn(msg string, f acctlayout.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z ZapLogger) Error(msg string, f acctlayout.Fields) { z.L.Error(msg, zf(f)...) }

// zf orders fields by key so encoded lines are stable.
func zf(f acctlayout.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]zap.Field, 0, len(f))
	for _, k := range keys {
		if err, ok := f[k].(error); ok {
			out = append(out, zap.NamedError(k, err))
			continue
		}
		out = append(out, zap.Any(k, f[k]))
	}
	return out
}

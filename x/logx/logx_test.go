package logx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	tests := []struct {
		name  string
		debug bool
		log   func(Logger)
		want  string
	}{
		{"info", false, func(l Logger) { l.Info("boot %d", 1) }, "Info: boot 1\r\n"},
		{"warn", false, func(l Logger) { l.Warn("slow") }, "Warn: slow\r\n"},
		{"error", false, func(l Logger) { l.Error("bad %s", "range") }, "Error: bad range\r\n"},
		{"debug off", false, func(l Logger) { l.Debug("hidden") }, ""},
		{"debug on", true, func(l Logger) { l.Debug("tick %d", 7) }, "Debug: tick 7\r\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(New(&buf, tt.debug))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestNoop(t *testing.T) {
	l := Noop()
	assert.NotPanics(t, func() {
		l.Debug("x")
		l.Info("x")
		l.Warn("x")
		l.Error("x")
	})
}

package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("default level is info", func(t *testing.T) {
		l, err := New("", "production")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !l.Core().Enabled(zapcore.InfoLevel) || l.Core().Enabled(zapcore.DebugLevel) {
			t.Fatalf("expected info level logger")
		}
	})

	t.Run("debug level", func(t *testing.T) {
		l, err := New("DEBUG", "development")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !l.Core().Enabled(zapcore.DebugLevel) {
			t.Fatalf("expected debug enabled")
		}
	})

	t.Run("invalid level", func(t *testing.T) {
		if _, err := New("loud", ""); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Fatalf("expected nop logger")
	}
}

package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want zapcore.Level
	}{
		{raw: "", want: zapcore.InfoLevel},
		{raw: "DEBUG", want: zapcore.DebugLevel},
		{raw: " warn ", want: zapcore.WarnLevel},
		{raw: "error", want: zapcore.ErrorLevel},
	}

	for _, testCase := range tests {
		level, err := ParseLevel(testCase.raw)
		if err != nil {
			t.Fatalf("ParseLevel(%q) unexpected error: %v", testCase.raw, err)
		}
		if level.Level() != testCase.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", testCase.raw, level.Level(), testCase.want)
		}
	}

	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNewVerboseEnablesDebug(t *testing.T) {
	logger, err := New("error", false, true)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("expected debug level to be enabled")
	}
}

package log

import (
	"context"
	"log/slog"
	"testing"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		verbosity int
		expected  slog.Level
	}{
		{0, slog.LevelInfo},
		{1, slog.LevelDebug},
		{2, slog.LevelDebug},
	}
	for _, tc := range tests {
		if got := LevelFor(tc.verbosity); got != tc.expected {
			t.Errorf("LevelFor(%d) = %v, expected %v", tc.verbosity, got, tc.expected)
		}
	}
}

func TestInitReconfigures(t *testing.T) {
	ctx := context.Background()
	Init(0)
	if get().Enabled(ctx, slog.LevelDebug) {
		t.Error("debug enabled at verbosity 0")
	}
	Init(1)
	if !get().Enabled(ctx, slog.LevelDebug) {
		t.Error("debug not enabled at verbosity 1")
	}
}

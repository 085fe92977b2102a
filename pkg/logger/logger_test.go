package logger

import (
	"context"
	"log/slog"
	"testing"
)

func TestInitSetsGlobalLogger(t *testing.T) {
	Init()
	if Log == nil {
		t.Fatalf("expected Log to be non-nil after Init")
	}
}

func TestInitWithLevelDebug(t *testing.T) {
	InitWithLevel("debug")
	if !Log.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatalf("expected debug level to be enabled")
	}
}

func TestInitWithLevelError(t *testing.T) {
	InitWithLevel("error")
	if Log.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatalf("expected info level to be disabled at error level")
	}
}

func TestHelpersTolerateNilLogger(t *testing.T) {
	saved := Log
	defer func() { Log = saved }()
	Log = nil
	Debug("x")
	Info("x")
	Warn("x")
	Error("x")
}

package tui_test

import (
	"io"
	"testing"

	"go.trai.ch/sherpa/internal/adapters/tui"
)

func TestNewModel(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	m := tui.NewModel(io.Discard)

	if m.Status != tui.StatusWaiting {
		t.Errorf("Status = %q, want %q", m.Status, tui.StatusWaiting)
	}
	if m.HasResult {
		t.Error("HasResult = true, want false")
	}
	if m.Init() != nil {
		t.Error("Init() returned a command, want nil")
	}
}

func TestNewModel_NilWriter(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	m := tui.NewModel(nil)

	if m == nil {
		t.Fatal("NewModel(nil) = nil")
	}
}

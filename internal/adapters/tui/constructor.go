// Package tui provides the interactive watch dashboard.
package tui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/sherpa/internal/ui/output"
)

// NewModel creates a dashboard model with default settings. The writer is
// used for color capability detection and defaults to stderr.
func NewModel(w io.Writer) *Model {
	if w == nil {
		w = os.Stderr
	}

	out := output.New(w)
	lipgloss.SetColorProfile(out.Profile)

	return &Model{
		Status: StatusWaiting,
	}
}

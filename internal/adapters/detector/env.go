// Package detector selects the rendering mode for command output.
package detector

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// OutputMode represents how command progress is rendered.
type OutputMode int

const (
	// ModeAuto defers the choice to environment detection.
	ModeAuto OutputMode = iota
	// ModeTUI renders the interactive terminal dashboard.
	ModeTUI
	// ModeLinear renders plain line-by-line logs for CI and pipes.
	ModeLinear
)

// String returns the flag spelling of the mode.
func (m OutputMode) String() string {
	switch m {
	case ModeTUI:
		return "tui"
	case ModeLinear:
		return "linear"
	default:
		return "auto"
	}
}

// DetectEnvironment recommends an output mode for the current process.
// Non-TTY stdout, CI environments, and dumb terminals all get linear output.
func DetectEnvironment() OutputMode {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI || os.Getenv("TERM") == "dumb" {
		return ModeLinear
	}
	return ModeTUI
}

// ResolveMode applies the user's --output flag on top of auto-detection.
// Recognized values are "tui", "linear", "ci" (alias for linear), and
// "auto"; anything else falls back to the detected mode.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch strings.ToLower(strings.TrimSpace(userFlag)) {
	case "tui":
		return ModeTUI
	case "linear", "ci":
		return ModeLinear
	default:
		return autoDetected
	}
}

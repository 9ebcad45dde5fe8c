// Package output provides utilities for creating termenv.Output with consistent
// color profile and TTY handling across the CLI.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorProfile returns the color profile for interactive TUI environments:
// Ascii when NO_COLOR is set, the terminal's detected capabilities otherwise.
func ColorProfile() termenv.Profile {
	return profile(termenv.EnvColorProfile())
}

// ColorProfileANSI returns the color profile for CI and other
// non-interactive environments: Ascii when NO_COLOR is set, plain ANSI
// otherwise for broad compatibility.
func ColorProfileANSI() termenv.Profile {
	return profile(termenv.ANSI)
}

func profile(fallback termenv.Profile) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return fallback
}

// New creates a new termenv.Output using the interactive profile logic.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	return NewWithProfile(w, ColorProfile, opts...)
}

// NewWithProfile creates a new termenv.Output with a custom profile selector.
func NewWithProfile(w io.Writer, profileFn func() termenv.Profile, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(profileFn()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}

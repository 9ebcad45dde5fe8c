// Package domain contains the core model of the plugin pipeline compiler:
// build modes, plugin options, plugin descriptors, cache rules and the
// validation report.
package domain

import "go.trai.ch/zerr"

// BuildMode represents the behavior profile of a single compilation pass.
// Every mode-dependent decision (compiler target, analyzer inclusion,
// cache rules) branches on this one value instead of re-deriving it from
// raw flags.
type BuildMode string

const (
	// ModeDevelopment targets fast local iteration: latest language level,
	// no runtime caching, no bundle analysis.
	ModeDevelopment BuildMode = "development"
	// ModeProduction targets release builds: pinned language level, runtime
	// cache policy, optional bundle analysis.
	ModeProduction BuildMode = "production"
)

// ParseBuildMode converts a mode string to a BuildMode.
// The empty string resolves to ModeDevelopment.
func ParseBuildMode(s string) (BuildMode, error) {
	switch s {
	case "", string(ModeDevelopment):
		return ModeDevelopment, nil
	case string(ModeProduction):
		return ModeProduction, nil
	default:
		return ModeDevelopment, zerr.With(ErrInvalidBuildMode, "mode", s)
	}
}

// IsProduction reports whether the mode is a release build.
func (m BuildMode) IsProduction() bool {
	return m == ModeProduction
}

// CompilerTarget returns the language level the base compiler descriptor
// is configured with. Production pins a fixed level so emitted code does
// not drift with toolchain upgrades; development always uses the newest.
func (m BuildMode) CompilerTarget() string {
	if m.IsProduction() {
		return "es2015"
	}
	return "esnext"
}

func (m BuildMode) String() string {
	return string(m)
}

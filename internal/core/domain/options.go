package domain

import "slices"

// Plugin package names resolved when the configuration does not override
// them. Projects pinning forks or scoped mirrors set their own in
// sherpa.yaml.
const (
	DefaultCompilerPlugin = "@vitejs/plugin-react"
	DefaultPWAPlugin      = "vite-plugin-pwa"
	DefaultAnalyzerPlugin = "rollup-plugin-visualizer"
)

// DefaultSheetsOrigin is the HTTPS origin of the spreadsheet backend the
// runtime cache policy keys on.
const DefaultSheetsOrigin = "https://docs.google.com"

// DefaultIncludeAssets returns the static assets the PWA descriptor
// registers when the configuration does not name its own list.
func DefaultIncludeAssets() []string {
	return []string{"favicon.ico", "apple-touch-icon.png", "robots.txt"}
}

// RawOptions is the plugin configuration as decoded from the config file
// and environment, before any validation has run.
type RawOptions struct {
	// Production deliberately stays untyped: rejecting a malformed value
	// is the validator's job, not the decoder's.
	Production any

	// Nil means "not set" and resolves to the documented default.
	PWA            *bool
	BundleAnalyzer *bool
	DevTools       *bool

	CompilerPlugin string
	PWAPlugin      string
	AnalyzerPlugin string
	WebManifest    string
	SheetsOrigin   string
	OutDir         string
	IncludeAssets  []string
}

// PWAOrDefault resolves the PWA flag; unset means enabled.
func (r RawOptions) PWAOrDefault() bool {
	if r.PWA == nil {
		return true
	}
	return *r.PWA
}

// BundleAnalyzerOrDefault resolves the bundle analyzer flag; unset means
// enabled.
func (r RawOptions) BundleAnalyzerOrDefault() bool {
	if r.BundleAnalyzer == nil {
		return true
	}
	return *r.BundleAnalyzer
}

// DevToolsOrDefault resolves the dev tools flag; unset means disabled.
func (r RawOptions) DevToolsOrDefault() bool {
	if r.DevTools == nil {
		return false
	}
	return *r.DevTools
}

// CompilerPluginOrDefault resolves the compiler plugin package name.
func (r RawOptions) CompilerPluginOrDefault() string {
	if r.CompilerPlugin == "" {
		return DefaultCompilerPlugin
	}
	return r.CompilerPlugin
}

// PWAPluginOrDefault resolves the PWA plugin package name.
func (r RawOptions) PWAPluginOrDefault() string {
	if r.PWAPlugin == "" {
		return DefaultPWAPlugin
	}
	return r.PWAPlugin
}

// AnalyzerPluginOrDefault resolves the analyzer plugin package name.
func (r RawOptions) AnalyzerPluginOrDefault() string {
	if r.AnalyzerPlugin == "" {
		return DefaultAnalyzerPlugin
	}
	return r.AnalyzerPlugin
}

// WebManifestOrDefault resolves the web manifest asset path.
func (r RawOptions) WebManifestOrDefault() string {
	if r.WebManifest == "" {
		return DefaultWebManifestPath()
	}
	return r.WebManifest
}

// OutDirOrDefault resolves the artifact output directory.
func (r RawOptions) OutDirOrDefault() string {
	if r.OutDir == "" {
		return DefaultOutPath()
	}
	return r.OutDir
}

// IncludeAssetsOrDefault resolves the PWA asset include-list. The
// returned slice is always a fresh copy.
func (r RawOptions) IncludeAssetsOrDefault() []string {
	if len(r.IncludeAssets) == 0 {
		return DefaultIncludeAssets()
	}
	return slices.Clone(r.IncludeAssets)
}

// SheetsOriginOrDefault resolves the spreadsheet backend origin.
func (r RawOptions) SheetsOriginOrDefault() string {
	if r.SheetsOrigin == "" {
		return DefaultSheetsOrigin
	}
	return r.SheetsOrigin
}

// OptionValues carries the resolved field values for a PluginOptions.
// Only the validator should construct one.
type OptionValues struct {
	Mode           BuildMode
	PWA            bool
	BundleAnalyzer bool
	DevTools       bool
	CompilerPlugin string
	PWAPlugin      string
	AnalyzerPlugin string
	WebManifest    string
	SheetsOrigin   string
	IncludeAssets  []string
}

// PluginOptions is the validated build configuration. It is constructed
// once per build invocation, never mutated afterwards, and read through
// getters only.
type PluginOptions struct {
	v OptionValues
}

// NewPluginOptions seals the given values into an immutable PluginOptions.
// The include-list is copied so the caller's slice cannot reach in later.
func NewPluginOptions(v OptionValues) PluginOptions {
	v.IncludeAssets = slices.Clone(v.IncludeAssets)
	return PluginOptions{v: v}
}

// Mode returns the build mode.
func (o PluginOptions) Mode() BuildMode { return o.v.Mode }

// PWA reports whether the PWA plugin is enabled.
func (o PluginOptions) PWA() bool { return o.v.PWA }

// BundleAnalyzer reports whether the bundle analyzer plugin is requested.
func (o PluginOptions) BundleAnalyzer() bool { return o.v.BundleAnalyzer }

// DevTools reports whether development tooling is enabled.
func (o PluginOptions) DevTools() bool { return o.v.DevTools }

// CompilerPlugin returns the compiler plugin package name.
func (o PluginOptions) CompilerPlugin() string { return o.v.CompilerPlugin }

// PWAPlugin returns the PWA plugin package name.
func (o PluginOptions) PWAPlugin() string { return o.v.PWAPlugin }

// AnalyzerPlugin returns the analyzer plugin package name.
func (o PluginOptions) AnalyzerPlugin() string { return o.v.AnalyzerPlugin }

// WebManifest returns the web manifest asset path.
func (o PluginOptions) WebManifest() string { return o.v.WebManifest }

// SheetsOrigin returns the spreadsheet backend origin.
func (o PluginOptions) SheetsOrigin() string { return o.v.SheetsOrigin }

// IncludeAssets returns a copy of the PWA asset include-list.
func (o PluginOptions) IncludeAssets() []string { return slices.Clone(o.v.IncludeAssets) }

// Package policy implements the build-time policy engine: plugin
// configuration validation and conditional pipeline assembly.
package policy

import (
	"fmt"

	"go.trai.ch/sherpa/internal/core/domain"
	"go.trai.ch/sherpa/internal/core/ports"
)

// Validator composes availability checks, flag shape checks and asset
// presence checks into a single verdict over the raw configuration.
// Checks are independent and all of them run on every pass, so the
// report lists every finding in one iteration instead of failing fast.
type Validator struct {
	probe ports.CapabilityProbe
}

// NewValidator creates a Validator backed by the given capability probe.
func NewValidator(probe ports.CapabilityProbe) *Validator {
	return &Validator{probe: probe}
}

// Validate checks the raw options and returns the validated options
// together with the full report. The error is non-nil exactly when at
// least one check recorded an error, and carries every invalid item.
// The returned PluginOptions is only usable when the error is nil.
func (v *Validator) Validate(raw domain.RawOptions) (domain.PluginOptions, *domain.ValidationReport, error) {
	report := &domain.ValidationReport{}

	mode := v.checkProductionFlag(raw, report)
	v.checkCompilerPlugin(raw, report)
	v.checkPWAPlugin(raw, report)
	v.checkAnalyzerPlugin(raw, mode, report)
	v.checkWebManifest(raw, report)

	if err := report.Err(); err != nil {
		return domain.PluginOptions{}, report, err
	}

	opts := domain.NewPluginOptions(domain.OptionValues{
		Mode:           mode,
		PWA:            raw.PWAOrDefault(),
		BundleAnalyzer: raw.BundleAnalyzerOrDefault(),
		DevTools:       raw.DevToolsOrDefault(),
		CompilerPlugin: raw.CompilerPluginOrDefault(),
		PWAPlugin:      raw.PWAPluginOrDefault(),
		AnalyzerPlugin: raw.AnalyzerPluginOrDefault(),
		WebManifest:    raw.WebManifestOrDefault(),
		SheetsOrigin:   raw.SheetsOriginOrDefault(),
		IncludeAssets:  raw.IncludeAssetsOrDefault(),
	})
	return opts, report, nil
}

// checkProductionFlag type-checks the production flag and derives the
// build mode. Unset means development; anything but a bool is an error.
func (v *Validator) checkProductionFlag(raw domain.RawOptions, report *domain.ValidationReport) domain.BuildMode {
	switch p := raw.Production.(type) {
	case nil:
		return domain.ModeDevelopment
	case bool:
		if p {
			return domain.ModeProduction
		}
		return domain.ModeDevelopment
	default:
		report.AddError(fmt.Sprintf("production flag must be a boolean, got %T", p))
		return domain.ModeDevelopment
	}
}

// checkCompilerPlugin resolves the base compiler plugin. It is mandatory
// in every mode.
func (v *Validator) checkCompilerPlugin(raw domain.RawOptions, report *domain.ValidationReport) {
	name := raw.CompilerPluginOrDefault()
	if err := v.probe.ResolvePackage(name); err != nil {
		report.AddError(fmt.Sprintf("compiler plugin %q is not resolvable: %v", name, err))
	}
}

// checkPWAPlugin resolves the PWA plugin. Mandatory because the PWA
// flag defaults to enabled.
func (v *Validator) checkPWAPlugin(raw domain.RawOptions, report *domain.ValidationReport) {
	name := raw.PWAPluginOrDefault()
	if err := v.probe.ResolvePackage(name); err != nil {
		report.AddError(fmt.Sprintf("pwa plugin %q is not resolvable: %v", name, err))
	}
}

// checkAnalyzerPlugin resolves the bundle analyzer in production mode.
// Analysis is best effort: an unresolvable analyzer is a warning and
// must never block a release build.
func (v *Validator) checkAnalyzerPlugin(raw domain.RawOptions, mode domain.BuildMode, report *domain.ValidationReport) {
	if !mode.IsProduction() {
		return
	}
	name := raw.AnalyzerPluginOrDefault()
	if err := v.probe.ResolvePackage(name); err != nil {
		report.AddWarning(fmt.Sprintf("bundle analyzer %q is not resolvable, analysis will be skipped: %v", name, err))
	}
}

// checkWebManifest resolves the PWA web manifest asset. A missing
// manifest is a warning: registration proceeds with a generated
// fallback manifest.
func (v *Validator) checkWebManifest(raw domain.RawOptions, report *domain.ValidationReport) {
	path := raw.WebManifestOrDefault()
	if err := v.probe.ResolveAsset(path); err != nil {
		report.AddWarning(fmt.Sprintf("web manifest %q is missing, a fallback manifest will be generated", path))
	}
}

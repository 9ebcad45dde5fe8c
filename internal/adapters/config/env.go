package config

import (
	"strconv"

	"github.com/caarlos0/env/v11"
	"go.trai.ch/sherpa/internal/core/domain"
	"go.trai.ch/zerr"
)

// envOverlay holds raw SHERPA_* environment values that override
// sherpa.yaml. Pointer fields distinguish "unset" from an explicit
// false.
type envOverlay struct {
	Production     *string `env:"SHERPA_PRODUCTION"`
	PWA            *bool   `env:"SHERPA_PWA"`
	BundleAnalyzer *bool   `env:"SHERPA_BUNDLE_ANALYZER"`
	DevTools       *bool   `env:"SHERPA_DEV_TOOLS"`
	CompilerPlugin string  `env:"SHERPA_COMPILER_PLUGIN"`
	PWAPlugin      string  `env:"SHERPA_PWA_PLUGIN"`
	AnalyzerPlugin string  `env:"SHERPA_ANALYZER_PLUGIN"`
	WebManifest    string  `env:"SHERPA_WEB_MANIFEST"`
	SheetsOrigin   string  `env:"SHERPA_SHEETS_ORIGIN"`
	OutDir         string  `env:"SHERPA_OUT_DIR"`

	IncludeAssets []string `env:"SHERPA_INCLUDE_ASSETS" envSeparator:","`
}

// applyEnvOverlay overrides file-sourced options with SHERPA_* values.
// An unparseable SHERPA_PRODUCTION passes through as a raw string so
// validation reports the type mismatch instead of the loader failing.
func applyEnvOverlay(raw domain.RawOptions) (domain.RawOptions, error) {
	var overlay envOverlay
	if err := env.Parse(&overlay); err != nil {
		return domain.RawOptions{}, zerr.Wrap(err, domain.ErrEnvOverlayFailed.Error())
	}

	if overlay.Production != nil {
		if parsed, err := strconv.ParseBool(*overlay.Production); err == nil {
			raw.Production = parsed
		} else {
			raw.Production = *overlay.Production
		}
	}
	if overlay.PWA != nil {
		raw.PWA = overlay.PWA
	}
	if overlay.BundleAnalyzer != nil {
		raw.BundleAnalyzer = overlay.BundleAnalyzer
	}
	if overlay.DevTools != nil {
		raw.DevTools = overlay.DevTools
	}
	if overlay.CompilerPlugin != "" {
		raw.CompilerPlugin = overlay.CompilerPlugin
	}
	if overlay.PWAPlugin != "" {
		raw.PWAPlugin = overlay.PWAPlugin
	}
	if overlay.AnalyzerPlugin != "" {
		raw.AnalyzerPlugin = overlay.AnalyzerPlugin
	}
	if overlay.WebManifest != "" {
		raw.WebManifest = overlay.WebManifest
	}
	if overlay.SheetsOrigin != "" {
		raw.SheetsOrigin = overlay.SheetsOrigin
	}
	if overlay.OutDir != "" {
		raw.OutDir = overlay.OutDir
	}
	if len(overlay.IncludeAssets) > 0 {
		raw.IncludeAssets = overlay.IncludeAssets
	}

	return raw, nil
}

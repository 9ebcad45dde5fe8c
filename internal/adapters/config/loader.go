// Package config provides the configuration loader for sherpa.
package config

import (
	"errors"
	"io/fs"
	"path/filepath"

	"go.trai.ch/sherpa/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader against sherpa.yaml with
// environment overrides.
type Loader struct {
	fs FileSystem
}

// NewLoader creates a new Loader reading through the OS filesystem.
func NewLoader() *Loader {
	return &Loader{fs: NewOSFS()}
}

// NewLoaderWithFS creates a Loader with a custom filesystem (used for testing).
func NewLoaderWithFS(fsys FileSystem) *Loader {
	return &Loader{fs: fsys}
}

// ConfigPath returns the sherpa.yaml path for the given working directory.
func (l *Loader) ConfigPath(cwd string) string {
	return filepath.Join(cwd, domain.ConfigFileName)
}

// Load reads sherpa.yaml from cwd and overlays SHERPA_* environment
// variables on top. A missing file yields zero options, every knob
// then falls back to its documented default.
func (l *Loader) Load(cwd string) (domain.RawOptions, error) {
	raw := domain.RawOptions{}

	configPath := l.ConfigPath(cwd)
	_, statErr := l.fs.Stat(configPath)
	switch {
	case statErr == nil:
		var sherpafile Sherpafile
		if err := readAndUnmarshalYAML(l.fs, configPath, &sherpafile); err != nil {
			return domain.RawOptions{}, zerr.With(err, "path", configPath)
		}
		raw = optionsFromFile(&sherpafile)
	case errors.Is(statErr, fs.ErrNotExist):
		// No config file, defaults apply
	default:
		readErr := zerr.Wrap(statErr, domain.ErrConfigReadFailed.Error())
		return domain.RawOptions{}, zerr.With(readErr, "path", configPath)
	}

	return applyEnvOverlay(raw)
}

// optionsFromFile flattens the DTO sections into the domain options.
func optionsFromFile(sherpafile *Sherpafile) domain.RawOptions {
	return domain.RawOptions{
		Production:     sherpafile.Plugins.Production,
		PWA:            sherpafile.Plugins.PWA,
		BundleAnalyzer: sherpafile.Plugins.BundleAnalyzer,
		DevTools:       sherpafile.Plugins.DevTools,
		CompilerPlugin: sherpafile.Plugins.CompilerPlugin,
		PWAPlugin:      sherpafile.Plugins.PWAPlugin,
		AnalyzerPlugin: sherpafile.Plugins.AnalyzerPlugin,
		WebManifest:    sherpafile.Assets.WebManifest,
		SheetsOrigin:   sherpafile.Cache.SheetsOrigin,
		OutDir:         sherpafile.OutDir,
		IncludeAssets:  sherpafile.Assets.IncludeAssets,
	}
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](fsys FileSystem, configPath string, target *T) error {
	configFile, err := fsys.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}

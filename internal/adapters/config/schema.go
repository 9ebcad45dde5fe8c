package config

// Sherpafile represents the structure of the sherpa.yaml configuration file.
type Sherpafile struct {
	Version string     `yaml:"version"`
	OutDir  string     `yaml:"outDir"`
	Plugins PluginsDTO `yaml:"plugins"`
	Cache   CacheDTO   `yaml:"cache"`
	Assets  AssetsDTO  `yaml:"assets"`
}

// PluginsDTO holds the plugin section of sherpa.yaml. Production is
// deliberately untyped: validation reports non-boolean values instead
// of the parser rejecting them.
type PluginsDTO struct {
	Production     any    `yaml:"production"`
	PWA            *bool  `yaml:"pwa"`
	BundleAnalyzer *bool  `yaml:"bundleAnalyzer"`
	DevTools       *bool  `yaml:"devTools"`
	CompilerPlugin string `yaml:"compilerPlugin"`
	PWAPlugin      string `yaml:"pwaPlugin"`
	AnalyzerPlugin string `yaml:"analyzerPlugin"`
}

// CacheDTO holds the offline cache section of sherpa.yaml.
type CacheDTO struct {
	SheetsOrigin string `yaml:"sheetsOrigin"`
}

// AssetsDTO holds the static asset section of sherpa.yaml.
type AssetsDTO struct {
	WebManifest   string   `yaml:"webManifest"`
	IncludeAssets []string `yaml:"includeAssets"`
}

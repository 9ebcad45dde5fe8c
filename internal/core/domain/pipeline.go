package domain

// PluginKind classifies a descriptor's role in the pipeline.
type PluginKind string

const (
	// PluginCompiler is the mandatory base compiler plugin.
	PluginCompiler PluginKind = "compiler"
	// PluginPWA is the optional progressive web app plugin.
	PluginPWA PluginKind = "pwa"
	// PluginAnalyzer is the optional bundle analysis plugin.
	PluginAnalyzer PluginKind = "analyzer"
)

// PluginDescriptor is one configured plugin instance in the pipeline.
// The bundler consumes it opaquely: a package name to resolve and an
// options object to construct with.
type PluginDescriptor struct {
	Name    string         `json:"name"`
	Kind    PluginKind     `json:"kind"`
	Options map[string]any `json:"options"`
}

// Pipeline is the ordered plugin sequence of one compilation pass. The
// compiler descriptor is always first; optional descriptors keep a fixed
// relative order. Once assembled it is never mutated.
type Pipeline struct {
	Mode    BuildMode          `json:"mode"`
	Plugins []PluginDescriptor `json:"plugins"`
}

// Descriptor returns the first descriptor of the given kind and reports
// whether one is present.
func (p Pipeline) Descriptor(kind PluginKind) (PluginDescriptor, bool) {
	for _, plugin := range p.Plugins {
		if plugin.Kind == kind {
			return plugin, true
		}
	}
	return PluginDescriptor{}, false
}

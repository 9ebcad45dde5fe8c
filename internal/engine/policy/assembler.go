package policy

import (
	"go.trai.ch/sherpa/internal/core/domain"
)

// Assembler deterministically builds the ordered plugin pipeline from
// validated options. The compiler descriptor is always first; the PWA
// descriptor precedes the analyzer when both are present.
type Assembler struct {
	buildRules func(domain.BuildMode, string) []domain.CacheRule
}

// NewAssembler creates an Assembler.
func NewAssembler() *Assembler {
	return &Assembler{buildRules: domain.BuildCacheRules}
}

// Assemble builds the pipeline for the given validated options. It
// refuses to run on a report that still carries errors. An optional
// descriptor that fails to construct is omitted and recorded as a
// warning on the report; only the mandatory compiler descriptor can
// fail the build, and its construction is infallible once validation
// has passed.
func (a *Assembler) Assemble(opts domain.PluginOptions, report *domain.ValidationReport) (domain.Pipeline, error) {
	if report.HasErrors() {
		return domain.Pipeline{}, domain.ErrDirtyReport
	}

	mode := opts.Mode()
	plugins := []domain.PluginDescriptor{compilerDescriptor(opts)}

	if opts.PWA() {
		rules := a.buildRules(mode, opts.SheetsOrigin())
		ruleWarnings, err := domain.CheckRules(rules)
		for _, w := range ruleWarnings {
			report.AddWarning(w)
		}
		if err != nil {
			report.AddWarning("pwa plugin omitted: " + err.Error())
		} else {
			plugins = append(plugins, pwaDescriptor(opts, rules))
		}
	}

	// Analysis of a development bundle is not meaningful, so the mode
	// gates the analyzer regardless of the flag.
	if mode.IsProduction() && opts.BundleAnalyzer() {
		plugins = append(plugins, analyzerDescriptor(opts))
	}

	return domain.Pipeline{Mode: mode, Plugins: plugins}, nil
}

func compilerDescriptor(opts domain.PluginOptions) domain.PluginDescriptor {
	options := map[string]any{
		"target": opts.Mode().CompilerTarget(),
	}
	if opts.DevTools() {
		options["devTools"] = true
	}
	return domain.PluginDescriptor{
		Name:    opts.CompilerPlugin(),
		Kind:    domain.PluginCompiler,
		Options: options,
	}
}

func pwaDescriptor(opts domain.PluginOptions, rules []domain.CacheRule) domain.PluginDescriptor {
	if rules == nil {
		rules = []domain.CacheRule{}
	}
	includeAssets := opts.IncludeAssets()
	if includeAssets == nil {
		includeAssets = domain.DefaultIncludeAssets()
	}
	return domain.PluginDescriptor{
		Name: opts.PWAPlugin(),
		Kind: domain.PluginPWA,
		Options: map[string]any{
			"registerType":   "autoUpdate",
			"includeAssets":  includeAssets,
			"webManifest":    opts.WebManifest(),
			"runtimeCaching": rules,
		},
	}
}

func analyzerDescriptor(opts domain.PluginOptions) domain.PluginDescriptor {
	return domain.PluginDescriptor{
		Name: opts.AnalyzerPlugin(),
		Kind: domain.PluginAnalyzer,
		Options: map[string]any{
			"filename":   "stats.html",
			"gzipSize":   true,
			"brotliSize": true,
		},
	}
}

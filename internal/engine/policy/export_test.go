// export_test.go exports private fields for white-box testing.
package policy

import "go.trai.ch/sherpa/internal/core/domain"

// SetBuildRules swaps the cache table builder so tests can exercise the
// degradation path for a table that violates its own invariants.
func (a *Assembler) SetBuildRules(fn func(domain.BuildMode, string) []domain.CacheRule) {
	a.buildRules = fn
}

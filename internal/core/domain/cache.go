package domain

import (
	"regexp"

	"go.trai.ch/zerr"
)

// Strategy is the runtime caching behavior a rule declares.
type Strategy string

const (
	// StrategyNetworkFirst prefers a live fetch and falls back to the
	// cache only when the network fails.
	StrategyNetworkFirst Strategy = "NetworkFirst"
	// StrategyCacheFirst prefers a cached response and fetches only on a
	// cache miss.
	StrategyCacheFirst Strategy = "CacheFirst"
)

// Cache names of the built-in production rules.
const (
	SheetsCacheName = "google-sheets-cache"
	ImagesCacheName = "images-cache"
)

const (
	sheetsMaxEntries = 10
	sheetsMaxAgeSecs = 24 * 60 * 60
	imagesMaxEntries = 100
	imagesMaxAgeSecs = 30 * 24 * 60 * 60
)

// CacheRule binds a URL pattern to a caching strategy and its eviction
// policy. Eviction itself (LRU past MaxEntries, expiry past
// MaxAgeSeconds) is enforced by the service-worker runtime; the rule
// only declares it. The JSON shape is the contract consumed by the
// service-worker generator.
type CacheRule struct {
	URLPattern    string   `json:"urlPattern"`
	Strategy      Strategy `json:"strategy"`
	CacheName     string   `json:"cacheName"`
	MaxEntries    int      `json:"maxEntries"`
	MaxAgeSeconds int      `json:"maxAgeSeconds"`
}

// Matches reports whether the rule's pattern matches the request URL.
// A pattern that does not compile matches nothing.
func (r CacheRule) Matches(url string) bool {
	re, err := regexp.Compile(r.URLPattern)
	if err != nil {
		return false
	}
	return re.MatchString(url)
}

// BuildCacheRules returns the runtime cache policy for the given mode.
// Development returns no rules so local iteration is never served stale
// responses. Production returns the spreadsheet rule before the image
// rule; evaluation is first match wins in declaration order, so a
// spreadsheet-hosted image resolves to NetworkFirst.
func BuildCacheRules(mode BuildMode, sheetsOrigin string) []CacheRule {
	if !mode.IsProduction() {
		return nil
	}
	if sheetsOrigin == "" {
		sheetsOrigin = DefaultSheetsOrigin
	}
	return []CacheRule{
		{
			// The trailing slash keeps prefix matching anchored to the
			// origin's host, not to hosts that merely extend it.
			URLPattern:    "^" + regexp.QuoteMeta(sheetsOrigin) + "/",
			Strategy:      StrategyNetworkFirst,
			CacheName:     SheetsCacheName,
			MaxEntries:    sheetsMaxEntries,
			MaxAgeSeconds: sheetsMaxAgeSecs,
		},
		{
			URLPattern:    `\.(?:png|jpg|jpeg|svg|gif)$`,
			Strategy:      StrategyCacheFirst,
			CacheName:     ImagesCacheName,
			MaxEntries:    imagesMaxEntries,
			MaxAgeSeconds: imagesMaxAgeSecs,
		},
	}
}

// MatchRule returns the first rule in declaration order whose pattern
// matches the URL.
func MatchRule(rules []CacheRule, url string) (CacheRule, bool) {
	for _, r := range rules {
		if r.Matches(url) {
			return r, true
		}
	}
	return CacheRule{}, false
}

// CheckRules verifies the table invariants. Duplicate cache names are an
// error since concurrent rules must never target overlapping storage. A
// rule repeating an earlier rule's pattern can never be selected and is
// reported as a warning, not an error.
func CheckRules(rules []CacheRule) ([]string, error) {
	var warnings []string
	names := make(map[string]struct{}, len(rules))
	patterns := make(map[string]string, len(rules))
	for _, r := range rules {
		if _, ok := names[r.CacheName]; ok {
			return warnings, zerr.With(ErrDuplicateCacheName, "cache_name", r.CacheName)
		}
		names[r.CacheName] = struct{}{}
		if earlier, ok := patterns[r.URLPattern]; ok {
			warnings = append(warnings, "cache rule '"+r.CacheName+"' is unreachable: pattern already claimed by '"+earlier+"'")
			continue
		}
		patterns[r.URLPattern] = r.CacheName
	}
	return warnings, nil
}

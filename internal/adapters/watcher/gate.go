package watcher

import (
	"io"
	"os"
	"slices"
	"sync"
	"unique"

	"github.com/cespare/xxhash/v2"
)

// ChangeGate filters debounced path batches down to real content changes.
// Editors and build tools frequently rewrite files with identical bytes;
// the gate remembers a content digest per path so those events do not
// trigger a rebuild.
type ChangeGate struct {
	mu      sync.Mutex
	digests map[unique.Handle[string]]uint64
}

// NewChangeGate creates an empty change gate.
func NewChangeGate() *ChangeGate {
	return &ChangeGate{
		digests: make(map[unique.Handle[string]]uint64),
	}
}

// Changed returns the subset of paths whose content differs from the last
// time the gate saw them, in sorted order. First sightings, removals, and
// directories always count as changed; unreadable files are treated as
// changed rather than silently dropped.
func (g *ChangeGate) Changed(paths []string) []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	changed := make([]string, 0, len(paths))
	for _, path := range paths {
		if g.updateLocked(path) {
			changed = append(changed, path)
		}
	}
	slices.Sort(changed)
	return changed
}

// Reset forgets all remembered digests. The next batch passes the gate in
// full, which forces a rebuild.
func (g *ChangeGate) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.digests = make(map[unique.Handle[string]]uint64)
}

// updateLocked refreshes the digest for path and reports whether its
// content changed. Callers must hold g.mu.
func (g *ChangeGate) updateLocked(path string) bool {
	handle := unique.Make(path)

	info, err := os.Stat(path)
	if err != nil {
		// Removed or unreadable: drop any stale digest and report a change.
		delete(g.digests, handle)
		return true
	}
	if info.IsDir() {
		return true
	}

	digest, err := hashContent(path)
	if err != nil {
		delete(g.digests, handle)
		return true
	}

	previous, seen := g.digests[handle]
	g.digests[handle] = digest
	return !seen || previous != digest
}

// hashContent streams the file through xxhash and returns its digest.
func hashContent(path string) (uint64, error) {
	file, err := os.Open(path) // #nosec G304 -- path comes from the file watcher
	if err != nil {
		return 0, err
	}
	defer func() { _ = file.Close() }()

	h := xxhash.New()
	if _, err := io.Copy(h, file); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}

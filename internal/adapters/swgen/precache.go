package swgen

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/sherpa/internal/core/domain"
	"go.trai.ch/zerr"
)

// PrecacheEntry pairs a served URL with a content revision the service
// worker uses for cache busting.
type PrecacheEntry struct {
	URL      string `json:"url"`
	Revision string `json:"revision"`
}

// scanPrecache walks the public asset directory and computes one entry
// per file, sorted by URL. A project without a public directory gets an
// empty manifest.
func (e *Emitter) scanPrecache() ([]PrecacheEntry, error) {
	publicDir := filepath.Join(e.root, domain.PublicDirName)

	info, err := os.Stat(publicDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []PrecacheEntry{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPrecacheScanFailed.Error()), "dir", publicDir)
	}
	if !info.IsDir() {
		return []PrecacheEntry{}, nil
	}

	entries := []PrecacheEntry{}
	walkErr := filepath.WalkDir(publicDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, relErr := filepath.Rel(publicDir, path)
		if relErr != nil {
			return relErr
		}

		revision, hashErr := hashFile(path)
		if hashErr != nil {
			return hashErr
		}

		entries = append(entries, PrecacheEntry{
			URL:      "/" + filepath.ToSlash(rel),
			Revision: revision,
		})
		return nil
	})
	if walkErr != nil {
		return nil, zerr.With(zerr.Wrap(walkErr, domain.ErrPrecacheScanFailed.Error()), "dir", publicDir)
	}

	slices.SortFunc(entries, func(a, b PrecacheEntry) int {
		return strings.Compare(a.URL, b.URL)
	})

	return entries, nil
}

// hashFile computes the xxhash64 revision of a file's content as
// zero-padded hex.
func hashFile(path string) (string, error) {
	// #nosec G304 -- path comes from walking the public directory
	f, err := os.Open(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrAssetHashFailed.Error()), "asset", path)
	}
	defer func() { _ = f.Close() }()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrAssetHashFailed.Error()), "asset", path)
	}

	return fmt.Sprintf("%016x", h.Sum64()), nil
}

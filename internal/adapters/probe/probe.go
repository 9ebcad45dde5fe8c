// Package probe implements the CapabilityProbe port against the
// project's node_modules tree and static asset directories.
package probe

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/sherpa/internal/core/domain"
	"go.trai.ch/zerr"
)

// Probe resolves plugin packages and static assets on the local filesystem.
type Probe struct {
	root string
}

// New creates a CapabilityProbe rooted at the given project directory.
func New(root string) *Probe {
	if root == "" {
		root = "."
	}
	return &Probe{root: filepath.Clean(root)}
}

// packageManifest is the subset of package.json needed to verify an
// installed package.
type packageManifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ResolvePackage verifies that the named package is installed under
// node_modules and carries a readable manifest. Scoped names such as
// @vitejs/plugin-react resolve through their scope directory.
func (p *Probe) ResolvePackage(name string) error {
	manifestPath := filepath.Join(
		p.root,
		domain.NodeModulesDirName,
		filepath.FromSlash(name),
		domain.PackageManifestName,
	)

	//nolint:gosec // Path is constructed from the project root and a configured package name
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zerr.With(domain.ErrPackageNotInstalled, "package", name)
		}
		return zerr.With(zerr.Wrap(err, domain.ErrPackageNotInstalled.Error()), "package", name)
	}

	var manifest packageManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPackageManifestInvalid.Error()), "package", name)
	}

	if manifest.Name == "" {
		invalidErr := zerr.With(domain.ErrPackageManifestInvalid, "package", name)
		return zerr.With(invalidErr, "reason", "missing name field")
	}

	return nil
}

// ResolveAsset verifies that a static asset exists at the given path
// relative to the project root.
func (p *Probe) ResolveAsset(path string) error {
	info, err := os.Stat(filepath.Join(p.root, filepath.FromSlash(path)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zerr.With(domain.ErrAssetNotFound, "asset", path)
		}
		return zerr.With(zerr.Wrap(err, domain.ErrAssetNotFound.Error()), "asset", path)
	}

	if info.IsDir() {
		assetErr := zerr.With(domain.ErrAssetNotFound, "asset", path)
		return zerr.With(assetErr, "reason", "path is a directory")
	}

	return nil
}

package domain

import "path/filepath"

const (
	// SherpaDirName is the name of the internal workspace directory.
	SherpaDirName = ".sherpa"

	// OutDirName is the default directory for emitted build artifacts.
	OutDirName = "dist"

	// PublicDirName is the directory scanned for precacheable static assets.
	PublicDirName = "public"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "sherpa.yaml"

	// PipelineFileName is the emitted plugin pipeline artifact.
	PipelineFileName = "pipeline.json"

	// PolicyFileName is the emitted service-worker cache policy artifact.
	PolicyFileName = "sw-policy.json"

	// PrecacheFileName is the emitted precache manifest artifact.
	PrecacheFileName = "precache.json"

	// WebManifestFileName is the PWA web app manifest asset.
	WebManifestFileName = "manifest.webmanifest"

	// NodeModulesDirName is the package tree plugin dependencies resolve from.
	NodeModulesDirName = "node_modules"

	// PackageManifestName is the per-package manifest file.
	PackageManifestName = "package.json"

	// DebugLogFile is the name of the debug log file.
	DebugLogFile = "debug.log"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultSherpaPath returns the default root directory for sherpa metadata.
func DefaultSherpaPath() string {
	return SherpaDirName
}

// DefaultOutPath returns the default directory artifacts are written to.
func DefaultOutPath() string {
	return OutDirName
}

// DefaultWebManifestPath returns the default path of the PWA web manifest.
// It joins public and manifest.webmanifest.
func DefaultWebManifestPath() string {
	return filepath.Join(PublicDirName, WebManifestFileName)
}

// DefaultDebugLogPath returns the default path for the debug log.
// It joins .sherpa and debug.log.
func DefaultDebugLogPath() string {
	return filepath.Join(SherpaDirName, DebugLogFile)
}

package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidBuildMode is returned when a build mode string is neither 'production' nor 'development'.
	ErrInvalidBuildMode = zerr.New("invalid build mode, expected 'production' or 'development'")

	// ErrConfigInvalid is returned when validation finds at least one configuration error.
	ErrConfigInvalid = zerr.New("plugin configuration is invalid")

	// ErrDirtyReport is returned when pipeline assembly is attempted on a report that still carries errors.
	ErrDirtyReport = zerr.New("pipeline assembly requires a clean validation report")

	// ErrPackageNotInstalled is returned when a plugin package cannot be resolved from the package tree.
	ErrPackageNotInstalled = zerr.New("package not installed")

	// ErrPackageManifestInvalid is returned when a package manifest exists but cannot be parsed.
	ErrPackageManifestInvalid = zerr.New("package manifest is invalid")

	// ErrAssetNotFound is returned when a referenced static asset does not exist.
	ErrAssetNotFound = zerr.New("asset not found")

	// ErrDuplicateCacheName is returned when two cache rules share a cache name.
	ErrDuplicateCacheName = zerr.New("duplicate cache name")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrEnvOverlayFailed is returned when environment variable overrides cannot be parsed.
	ErrEnvOverlayFailed = zerr.New("failed to parse environment overrides")

	// ErrEnvContractInvalid is returned when the app environment contract has a malformed value.
	ErrEnvContractInvalid = zerr.New("invalid app environment contract")

	// ErrArtifactMarshalFailed is returned when a build artifact cannot be marshaled.
	ErrArtifactMarshalFailed = zerr.New("failed to marshal artifact")

	// ErrArtifactWriteFailed is returned when a build artifact cannot be written.
	ErrArtifactWriteFailed = zerr.New("failed to write artifact")

	// ErrOutDirCreateFailed is returned when the artifact output directory cannot be created.
	ErrOutDirCreateFailed = zerr.New("failed to create output directory")

	// ErrPrecacheScanFailed is returned when the precache asset scan fails.
	ErrPrecacheScanFailed = zerr.New("failed to scan precache assets")

	// ErrAssetHashFailed is returned when an asset revision hash cannot be computed.
	ErrAssetHashFailed = zerr.New("failed to hash asset")
)

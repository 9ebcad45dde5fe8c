package ports

// CapabilityProbe checks whether optional build capabilities are present
// before the pipeline is assembled. Implementations must be free of side
// effects so a probe can run repeatedly during watch mode.
//
//go:generate mockgen -source=probe.go -destination=mocks/mock_probe.go -package=mocks
type CapabilityProbe interface {
	// ResolvePackage verifies the named plugin package is installed and
	// resolvable. It returns nil when the package is available.
	ResolvePackage(name string) error
	// ResolveAsset verifies a static asset exists at the given path,
	// relative to the working directory.
	ResolveAsset(path string) error
}

package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sherpa/internal/core/domain"
	"go.trai.ch/sherpa/internal/core/ports/mocks"
	"go.trai.ch/sherpa/internal/engine/policy"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestValidate_CleanProduction(t *testing.T) {
	ctrl := gomock.NewController(t)
	probe := mocks.NewMockCapabilityProbe(ctrl)
	probe.EXPECT().ResolvePackage("@vitejs/plugin-react").Return(nil)
	probe.EXPECT().ResolvePackage("vite-plugin-pwa").Return(nil)
	probe.EXPECT().ResolvePackage("rollup-plugin-visualizer").Return(nil)
	probe.EXPECT().ResolveAsset("public/manifest.webmanifest").Return(nil)

	v := policy.NewValidator(probe)
	opts, report, err := v.Validate(domain.RawOptions{Production: true})

	require.NoError(t, err)
	assert.Empty(t, report.Errors())
	assert.Empty(t, report.Warnings())
	assert.Equal(t, domain.ModeProduction, opts.Mode())
	assert.True(t, opts.PWA())
	assert.True(t, opts.BundleAnalyzer())
	assert.False(t, opts.DevTools())
}

func TestValidate_CleanDevelopment(t *testing.T) {
	ctrl := gomock.NewController(t)
	probe := mocks.NewMockCapabilityProbe(ctrl)
	// The analyzer is never probed outside production.
	probe.EXPECT().ResolvePackage("@vitejs/plugin-react").Return(nil)
	probe.EXPECT().ResolvePackage("vite-plugin-pwa").Return(nil)
	probe.EXPECT().ResolveAsset("public/manifest.webmanifest").Return(nil)

	v := policy.NewValidator(probe)
	opts, report, err := v.Validate(domain.RawOptions{})

	require.NoError(t, err)
	assert.Empty(t, report.Errors())
	assert.Equal(t, domain.ModeDevelopment, opts.Mode())
}

func TestValidate_ProductionFlagNotBool(t *testing.T) {
	ctrl := gomock.NewController(t)
	probe := mocks.NewMockCapabilityProbe(ctrl)
	probe.EXPECT().ResolvePackage(gomock.Any()).Return(nil).Times(2)
	probe.EXPECT().ResolveAsset(gomock.Any()).Return(nil)

	v := policy.NewValidator(probe)
	_, report, err := v.Validate(domain.RawOptions{Production: "yes"})

	require.ErrorIs(t, err, domain.ErrConfigInvalid)
	require.Len(t, report.Errors(), 1)
	assert.Contains(t, report.Errors()[0], "production flag must be a boolean")
	assert.Contains(t, report.Errors()[0], "string")
}

func TestValidate_AllChecksRunDespiteFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	probe := mocks.NewMockCapabilityProbe(ctrl)
	probe.EXPECT().ResolvePackage("@vitejs/plugin-react").Return(domain.ErrPackageNotInstalled)
	probe.EXPECT().ResolvePackage("vite-plugin-pwa").Return(domain.ErrPackageNotInstalled)
	probe.EXPECT().ResolveAsset("public/manifest.webmanifest").Return(domain.ErrAssetNotFound)

	v := policy.NewValidator(probe)
	_, report, err := v.Validate(domain.RawOptions{Production: 42})

	require.ErrorIs(t, err, domain.ErrConfigInvalid)

	errs := report.Errors()
	require.Len(t, errs, 3, "every failing check must be reported, not just the first")
	assert.Contains(t, errs[0], "production flag")
	assert.Contains(t, errs[1], "compiler plugin")
	assert.Contains(t, errs[2], "pwa plugin")

	require.Len(t, report.Warnings(), 1)
	assert.Contains(t, report.Warnings()[0], "web manifest")
}

func TestValidate_ErrorCarriesEveryItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	probe := mocks.NewMockCapabilityProbe(ctrl)
	probe.EXPECT().ResolvePackage("@vitejs/plugin-react").Return(domain.ErrPackageNotInstalled)
	probe.EXPECT().ResolvePackage("vite-plugin-pwa").Return(domain.ErrPackageNotInstalled)
	probe.EXPECT().ResolveAsset(gomock.Any()).Return(nil)

	v := policy.NewValidator(probe)
	_, _, err := v.Validate(domain.RawOptions{})

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)

	meta := zErr.Metadata()
	assert.Equal(t, 2, meta["count"])
	items, ok := meta["items"].([]string)
	require.True(t, ok)
	assert.Len(t, items, 2)
}

func TestValidate_CompilerMissingManifestMissing(t *testing.T) {
	// Errors and warnings accumulate independently: one fatal finding
	// plus one advisory finding must never merge.
	ctrl := gomock.NewController(t)
	probe := mocks.NewMockCapabilityProbe(ctrl)
	probe.EXPECT().ResolvePackage("@vitejs/plugin-react").Return(domain.ErrPackageNotInstalled)
	probe.EXPECT().ResolvePackage("vite-plugin-pwa").Return(nil)
	probe.EXPECT().ResolveAsset("public/manifest.webmanifest").Return(domain.ErrAssetNotFound)

	v := policy.NewValidator(probe)
	_, report, err := v.Validate(domain.RawOptions{})

	require.ErrorIs(t, err, domain.ErrConfigInvalid)
	require.Len(t, report.Errors(), 1)
	assert.Contains(t, report.Errors()[0], "compiler plugin")
	require.Len(t, report.Warnings(), 1)
	assert.Contains(t, report.Warnings()[0], "web manifest")
}

func TestValidate_AnalyzerMissingIsWarningInProduction(t *testing.T) {
	ctrl := gomock.NewController(t)
	probe := mocks.NewMockCapabilityProbe(ctrl)
	probe.EXPECT().ResolvePackage("@vitejs/plugin-react").Return(nil)
	probe.EXPECT().ResolvePackage("vite-plugin-pwa").Return(nil)
	probe.EXPECT().ResolvePackage("rollup-plugin-visualizer").Return(domain.ErrPackageNotInstalled)
	probe.EXPECT().ResolveAsset(gomock.Any()).Return(nil)

	v := policy.NewValidator(probe)
	opts, report, err := v.Validate(domain.RawOptions{Production: true})

	require.NoError(t, err, "analysis is best effort and must never block a release build")
	assert.Empty(t, report.Errors())
	require.Len(t, report.Warnings(), 1)
	assert.Contains(t, report.Warnings()[0], "bundle analyzer")
	assert.Equal(t, domain.ModeProduction, opts.Mode())
}

func TestValidate_CustomPluginNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	probe := mocks.NewMockCapabilityProbe(ctrl)
	probe.EXPECT().ResolvePackage("@custom/compiler").Return(nil)
	probe.EXPECT().ResolvePackage("@custom/pwa").Return(nil)
	probe.EXPECT().ResolveAsset("assets/manifest.webmanifest").Return(nil)

	v := policy.NewValidator(probe)
	opts, _, err := v.Validate(domain.RawOptions{
		CompilerPlugin: "@custom/compiler",
		PWAPlugin:      "@custom/pwa",
		WebManifest:    "assets/manifest.webmanifest",
	})

	require.NoError(t, err)
	assert.Equal(t, "@custom/compiler", opts.CompilerPlugin())
	assert.Equal(t, "@custom/pwa", opts.PWAPlugin())
	assert.Equal(t, "assets/manifest.webmanifest", opts.WebManifest())
}

func TestValidate_PWAPluginProbedEvenWhenDisabled(t *testing.T) {
	// Disabling the PWA flag does not lift the dependency requirement;
	// the flag defaults to enabled and re-enabling it must not surface
	// a new install error.
	disabled := false

	ctrl := gomock.NewController(t)
	probe := mocks.NewMockCapabilityProbe(ctrl)
	probe.EXPECT().ResolvePackage("@vitejs/plugin-react").Return(nil)
	probe.EXPECT().ResolvePackage("vite-plugin-pwa").Return(domain.ErrPackageNotInstalled)
	probe.EXPECT().ResolveAsset(gomock.Any()).Return(nil)

	v := policy.NewValidator(probe)
	_, report, err := v.Validate(domain.RawOptions{PWA: &disabled})

	require.ErrorIs(t, err, domain.ErrConfigInvalid)
	require.Len(t, report.Errors(), 1)
	assert.Contains(t, report.Errors()[0], "pwa plugin")
}

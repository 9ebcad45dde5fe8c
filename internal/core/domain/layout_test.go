package domain_test

import (
	"path/filepath"
	"testing"

	"go.trai.ch/sherpa/internal/core/domain"
)

func TestLayoutPaths(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "DefaultSherpaPath",
			got:      domain.DefaultSherpaPath(),
			expected: ".sherpa",
		},
		{
			name:     "DefaultOutPath",
			got:      domain.DefaultOutPath(),
			expected: "dist",
		},
		{
			name:     "DefaultWebManifestPath",
			got:      domain.DefaultWebManifestPath(),
			expected: filepath.Join("public", "manifest.webmanifest"),
		},
		{
			name:     "DefaultDebugLogPath",
			got:      domain.DefaultDebugLogPath(),
			expected: filepath.Join(".sherpa", "debug.log"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s() = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}
}

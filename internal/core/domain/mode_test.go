package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sherpa/internal/core/domain"
)

func TestParseBuildMode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.BuildMode
		wantErr bool
	}{
		{name: "production", input: "production", want: domain.ModeProduction},
		{name: "development", input: "development", want: domain.ModeDevelopment},
		{name: "empty defaults to development", input: "", want: domain.ModeDevelopment},
		{name: "unknown mode", input: "staging", wantErr: true},
		{name: "case sensitive", input: "Production", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseBuildMode(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidBuildMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildMode_CompilerTarget(t *testing.T) {
	assert.Equal(t, "es2015", domain.ModeProduction.CompilerTarget())
	assert.Equal(t, "esnext", domain.ModeDevelopment.CompilerTarget())
}

func TestBuildMode_IsProduction(t *testing.T) {
	assert.True(t, domain.ModeProduction.IsProduction())
	assert.False(t, domain.ModeDevelopment.IsProduction())
}

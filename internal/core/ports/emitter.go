package ports

import (
	"context"

	"go.trai.ch/sherpa/internal/core/domain"
)

// ArtifactEmitter writes the compiled pipeline and cache policy to disk
// in the shape the external bundler and service-worker generator consume.
//
//go:generate mockgen -source=emitter.go -destination=mocks/mock_emitter.go -package=mocks
type ArtifactEmitter interface {
	// Emit writes every artifact for the pipeline into outDir and
	// returns the written artifacts in a stable order.
	Emit(ctx context.Context, pipeline domain.Pipeline, opts domain.PluginOptions, outDir string) ([]domain.Artifact, error)
}

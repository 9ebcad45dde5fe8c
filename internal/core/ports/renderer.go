package ports

import (
	"context"

	"go.trai.ch/sherpa/internal/core/domain"
)

// Renderer receives compile lifecycle events during watch mode. One
// implementation drives the interactive TUI, another prints linear
// output for CI and dumb terminals.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start brings up the renderer. It must not block.
	Start(ctx context.Context) error
	// Stop signals the renderer to shut down.
	Stop() error
	// Wait blocks until the renderer has terminated.
	Wait() error

	// OnCompileStart signals that a compile pass began; trigger names the
	// file change (or "initial") that caused it.
	OnCompileStart(trigger string)
	// OnCompileResult delivers the outcome of a compile pass.
	OnCompileResult(res domain.CompileResult)
}

// Package linear provides a synchronous line renderer for CI environments.
package linear

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/sherpa/internal/core/domain"
	"go.trai.ch/sherpa/internal/core/ports"
	"go.trai.ch/sherpa/internal/ui/output"
	"go.trai.ch/sherpa/internal/ui/style"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer for CI and non-interactive runs.
// It prints chronological compile events: status lines go to stderr,
// artifact payload goes to stdout so it survives piping.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output

	mu       sync.Mutex
	done     chan struct{}
	stopOnce sync.Once
}

// NewRenderer creates a linear renderer. Nil writers default to the
// process streams.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stdout: stdout,
		stderr: stderr,
		output: output.NewWithProfile(stderr, output.ColorProfileANSI),
		done:   make(chan struct{}),
	}
}

// Start is a no-op; the linear renderer writes synchronously.
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop terminates the renderer. Nothing is buffered, so it only
// releases Wait.
func (r *Renderer) Stop() error {
	r.stopOnce.Do(func() {
		close(r.done)
	})
	return nil
}

// Wait blocks until Stop is called.
func (r *Renderer) Wait() error {
	<-r.done
	return nil
}

// OnCompileStart prints the compile trigger.
func (r *Renderer) OnCompileStart(trigger string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	header := r.output.String(fmt.Sprintf("Compiling (%s)", trigger)).Faint()
	_, _ = fmt.Fprintf(r.stderr, "%s\n", header)
}

// OnCompileResult prints the outcome of a compile pass.
func (r *Renderer) OnCompileResult(res domain.CompileResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	duration := res.Duration.Round(time.Millisecond)

	if res.Err != nil {
		symbol := r.symbol(style.Cross, style.Red)
		_, _ = fmt.Fprintf(r.stderr, "%s Compile failed after %v: %v\n", symbol, duration, res.Err)
		return
	}

	for _, artifact := range res.Artifacts {
		_, _ = fmt.Fprintf(r.stdout, "  %s (%d B)\n", artifact.Path, artifact.Size)
	}

	for _, warning := range res.Warnings {
		symbol := r.symbol(style.Warning, style.Yellow)
		_, _ = fmt.Fprintf(r.stderr, "%s %s\n", symbol, warning)
	}

	symbol := r.symbol(style.Check, style.Green)
	_, _ = fmt.Fprintf(r.stderr, "%s Compiled %d artifact(s) in %v\n", symbol, len(res.Artifacts), duration)
}

// symbol renders a status glyph in a brand color, degraded to the active
// profile.
func (r *Renderer) symbol(glyph string, color lipgloss.Color) string {
	return r.output.String(glyph).Foreground(r.output.Color(string(color))).String()
}

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/sherpa/internal/core/domain"
	"go.trai.ch/sherpa/internal/core/ports"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer wraps the dashboard Bubble Tea model as a ports.Renderer.
type Renderer struct {
	program *tea.Program
	errCh   chan error
}

// NewRenderer creates a TUI renderer around model.
func NewRenderer(model *Model, opts ...tea.ProgramOption) *Renderer {
	return &Renderer{
		program: tea.NewProgram(model, opts...),
		errCh:   make(chan error, 1),
	}
}

// Start launches the dashboard in a background goroutine.
func (r *Renderer) Start(_ context.Context) error {
	go func() {
		_, err := r.program.Run()
		r.errCh <- err
	}()
	return nil
}

// Stop signals the dashboard to quit.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the dashboard has terminated.
func (r *Renderer) Wait() error {
	return <-r.errCh
}

// OnCompileStart forwards the compile trigger to the dashboard.
func (r *Renderer) OnCompileStart(trigger string) {
	r.program.Send(MsgCompileStart{Trigger: trigger})
}

// OnCompileResult forwards a finished pass to the dashboard.
func (r *Renderer) OnCompileResult(res domain.CompileResult) {
	r.program.Send(MsgCompileResult{Result: res})
}

// Program returns the underlying tea.Program for testing.
func (r *Renderer) Program() *tea.Program {
	return r.program
}

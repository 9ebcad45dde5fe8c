package tui

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/zerr"
)

// BoundaryState tracks a deferred subtree through its load lifecycle.
type BoundaryState int

const (
	// StateIdle means the boundary is placed but loading has not begun.
	StateIdle BoundaryState = iota
	// StateLoading means the factory is resolving; the fallback is visible.
	StateLoading
	// StateReady means the resolved content is rendered.
	StateReady
	// StateFailed means resolution failed; the fallback slot shows the
	// reason until the host remounts the boundary.
	StateFailed
)

// Factory resolves the deferred content. It runs off the event loop and
// may block; the surrounding UI stays responsive while it does.
type Factory func() (tea.Model, error)

// ErrNilFactory is returned when a boundary is mounted without a factory.
var ErrNilFactory = zerr.New("boundary has no content factory")

// boundarySeq issues instance identities so a resolution result can never
// be applied to a boundary other than the one that requested it.
var boundarySeq atomic.Int64

type boundaryStartedMsg struct {
	id int64
}

type boundaryResolvedMsg struct {
	id      int64
	content tea.Model
}

type boundaryFailedMsg struct {
	id  int64
	err error
}

// Boundary defers a heavy view subtree until first use. The fallback is
// guaranteed at least one paint before resolution can land, even when the
// factory returns instantly: mounting only emits the start transition, and
// the resolve command is issued when that transition is processed. A
// failed load never retries on its own.
type Boundary struct {
	id       int64
	state    BoundaryState
	reason   string
	factory  Factory
	fallback string
	content  tea.Model
}

// NewBoundary creates an idle boundary around factory. fallback is shown
// while the content is pending.
func NewBoundary(factory Factory, fallback string) Boundary {
	return Boundary{
		id:       boundarySeq.Add(1),
		state:    StateIdle,
		factory:  factory,
		fallback: fallback,
	}
}

// State returns the current lifecycle state.
func (b Boundary) State() BoundaryState {
	return b.state
}

// FailureReason returns the error text of a failed load, or empty.
func (b Boundary) FailureReason() string {
	return b.reason
}

// Mount begins loading an idle boundary.
func (b Boundary) Mount() (Boundary, tea.Cmd) {
	if b.state != StateIdle {
		return b, nil
	}
	id := b.id
	return b, func() tea.Msg { return boundaryStartedMsg{id: id} }
}

// Remount resets the boundary to a fresh instance and mounts it. Results
// still in flight for the previous instance are discarded on arrival.
func (b Boundary) Remount() (Boundary, tea.Cmd) {
	b.id = boundarySeq.Add(1)
	b.state = StateIdle
	b.reason = ""
	b.content = nil
	return b.Mount()
}

// Update advances the boundary state machine. Messages addressed to other
// instances are dropped; unrelated messages are forwarded to ready content.
func (b Boundary) Update(msg tea.Msg) (Boundary, tea.Cmd) {
	switch msg := msg.(type) {
	case boundaryStartedMsg:
		if msg.id != b.id || b.state != StateIdle {
			return b, nil
		}
		b.state = StateLoading
		return b, resolve(b.id, b.factory)

	case boundaryResolvedMsg:
		if msg.id != b.id || b.state != StateLoading {
			return b, nil
		}
		b.state = StateReady
		b.content = msg.content
		if b.content == nil {
			return b, nil
		}
		return b, b.content.Init()

	case boundaryFailedMsg:
		if msg.id != b.id || b.state != StateLoading {
			return b, nil
		}
		b.state = StateFailed
		b.reason = msg.err.Error()
		return b, nil
	}

	if b.state == StateReady && b.content != nil {
		content, cmd := b.content.Update(msg)
		b.content = content
		return b, cmd
	}
	return b, nil
}

// View renders the content, or the fallback slot while it is pending. A
// failure repurposes the fallback slot as the error display.
func (b Boundary) View() string {
	switch b.state {
	case StateReady:
		if b.content == nil {
			return ""
		}
		return b.content.View()
	case StateFailed:
		return boundaryErrorStyle.Render("✗ load failed: " + b.reason)
	default:
		return boundaryFallbackStyle.Render(b.fallback)
	}
}

// resolve runs the factory and reports the outcome to this instance.
func resolve(id int64, factory Factory) tea.Cmd {
	return func() tea.Msg {
		if factory == nil {
			return boundaryFailedMsg{id: id, err: ErrNilFactory}
		}
		content, err := factory()
		if err != nil {
			return boundaryFailedMsg{id: id, err: err}
		}
		return boundaryResolvedMsg{id: id, content: content}
	}
}

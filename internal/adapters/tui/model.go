package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/sherpa/internal/core/domain"
)

// CompileStatus represents the dashboard's view of the compile loop.
type CompileStatus string

const (
	// StatusWaiting indicates no compile has run yet.
	StatusWaiting CompileStatus = "Waiting"
	// StatusCompiling indicates a pass is in flight.
	StatusCompiling CompileStatus = "Compiling"
	// StatusSucceeded indicates the last pass emitted its artifacts.
	StatusSucceeded CompileStatus = "Succeeded"
	// StatusFailed indicates the last pass was rejected.
	StatusFailed CompileStatus = "Failed"
)

// MsgCompileStart reports that a compile pass began.
type MsgCompileStart struct {
	Trigger string
}

// MsgCompileResult reports the outcome of a compile pass.
type MsgCompileResult struct {
	Result domain.CompileResult
}

const detailFallback = "loading pipeline details..."

// Model is the watch dashboard state.
type Model struct {
	Mode      domain.BuildMode
	Status    CompileStatus
	Trigger   string
	Result    domain.CompileResult
	HasResult bool
	Passes    int

	ShowDetail bool
	Detail     Boundary

	Width  int
	Height int
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the dashboard state.
//
//nolint:cyclop // the message switch is flat dispatch
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "d":
			return m, m.toggleDetail()
		case "esc":
			m.ShowDetail = false
		case "r":
			if m.ShowDetail && m.Detail.State() == StateFailed {
				return m, m.remountDetail()
			}
		default:
			// Remaining keys belong to the open detail subtree.
			if m.ShowDetail {
				return m, m.updateDetail(msg)
			}
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case MsgCompileStart:
		m.Status = StatusCompiling
		m.Trigger = msg.Trigger

	case MsgCompileResult:
		return m, m.applyResult(msg.Result)

	default:
		// Boundary transitions arrive here; the boundary drops anything
		// addressed to an unmounted instance.
		if m.ShowDetail {
			return m, m.updateDetail(msg)
		}
	}

	return m, nil
}

// applyResult folds a finished pass into the dashboard.
func (m *Model) applyResult(res domain.CompileResult) tea.Cmd {
	m.Result = res
	m.HasResult = true
	m.Passes++
	if res.Mode != "" {
		m.Mode = res.Mode
	}

	if res.Err != nil {
		m.Status = StatusFailed
		// The error pane takes over; a detail pane for a rejected pass
		// has nothing to show.
		m.ShowDetail = false
		return nil
	}

	m.Status = StatusSucceeded
	if m.ShowDetail {
		// Content went stale with the new pipeline; load it fresh.
		boundary, cmd := NewBoundary(detailFactory(res), detailFallback).Mount()
		m.Detail = boundary
		return cmd
	}
	return nil
}

// toggleDetail opens or closes the deferred detail pane.
func (m *Model) toggleDetail() tea.Cmd {
	if m.ShowDetail {
		m.ShowDetail = false
		return nil
	}
	if !m.HasResult || m.Result.Err != nil {
		return nil
	}
	m.ShowDetail = true
	boundary, cmd := NewBoundary(detailFactory(m.Result), detailFallback).Mount()
	m.Detail = boundary
	return cmd
}

func (m *Model) remountDetail() tea.Cmd {
	boundary, cmd := m.Detail.Remount()
	m.Detail = boundary
	return cmd
}

func (m *Model) updateDetail(msg tea.Msg) tea.Cmd {
	boundary, cmd := m.Detail.Update(msg)
	m.Detail = boundary
	return cmd
}

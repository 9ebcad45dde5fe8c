package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/sherpa/internal/ui/style"
)

// View renders the dashboard.
func (m *Model) View() string {
	if m.Width == 0 {
		return "Initializing..."
	}

	sections := []string{
		m.header(),
		m.statusLine(),
	}

	switch {
	case m.Status == StatusFailed:
		sections = append(sections, m.errorPane())
	case m.HasResult:
		if list := m.artifactList(); list != "" {
			sections = append(sections, list)
		}
	}

	if warnings := m.warningList(); warnings != "" {
		sections = append(sections, warnings)
	}

	if m.ShowDetail {
		sections = append(sections, detailFrameStyle.Render(m.Detail.View()))
	}

	sections = append(sections, m.helpLine())

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m *Model) header() string {
	header := titleStyle.Render("SHERPA WATCH")
	if m.Mode != "" {
		header += " " + modeBadgeStyle.Render(m.Mode.String())
	}
	return header
}

func (m *Model) statusLine() string {
	switch m.Status {
	case StatusCompiling:
		return statusCompilingStyle.Render(style.Dot + " Compiling (" + m.Trigger + ")")
	case StatusSucceeded:
		line := fmt.Sprintf("%s Compiled %d artifact(s) in %v",
			style.Check, len(m.Result.Artifacts), m.Result.Duration.Round(time.Millisecond))
		return statusOKStyle.Render(line) + helpStyle.Render(fmt.Sprintf("  pass %d", m.Passes))
	case StatusFailed:
		line := fmt.Sprintf("%s Compile failed after %v",
			style.Cross, m.Result.Duration.Round(time.Millisecond))
		return statusFailStyle.Render(line)
	default:
		return statusWaitingStyle.Render(style.Circle + " Waiting for changes")
	}
}

func (m *Model) errorPane() string {
	if m.Result.Err == nil {
		return ""
	}
	return failureTitleStyle.Render("COMPILE FAILED") + "\n" +
		statusFailStyle.Render(m.Result.Err.Error())
}

func (m *Model) artifactList() string {
	if len(m.Result.Artifacts) == 0 {
		return ""
	}
	lines := make([]string, 0, len(m.Result.Artifacts))
	for _, artifact := range m.Result.Artifacts {
		lines = append(lines,
			artifactStyle.Render("  "+artifact.Path)+
				artifactSizeStyle.Render(fmt.Sprintf(" %d B", artifact.Size)))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) warningList() string {
	if len(m.Result.Warnings) == 0 {
		return ""
	}
	lines := make([]string, 0, len(m.Result.Warnings))
	for _, warning := range m.Result.Warnings {
		lines = append(lines, warningStyle.Render(style.Warning+" "+warning))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) helpLine() string {
	parts := []string{"d details"}
	if m.ShowDetail {
		if m.Detail.State() == StateFailed {
			parts = append(parts, "r retry")
		}
		parts = append(parts, "esc close")
	}
	parts = append(parts, "q quit")
	return helpStyle.Render(strings.Join(parts, " • "))
}

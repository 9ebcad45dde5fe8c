package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/sherpa/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Glacier).
			Foreground(style.White)

	failureTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				Background(style.Red).
				Foreground(style.White)

	modeBadgeStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Background(style.Ink).
			Foreground(style.Snow)

	statusWaitingStyle = lipgloss.NewStyle().
				Foreground(style.Slate)

	statusCompilingStyle = lipgloss.NewStyle().
				Foreground(style.Glacier).
				Bold(true)

	statusOKStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	statusFailStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	warningStyle = lipgloss.NewStyle().
			Foreground(style.Yellow)

	artifactStyle = lipgloss.NewStyle().
			Foreground(style.Snow)

	artifactSizeStyle = lipgloss.NewStyle().
				Foreground(style.Slate)

	helpStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)

	detailFrameStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(style.Slate).
				Padding(0, 1)

	detailTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(style.Glacier)

	detailKindStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	detailDimStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	boundaryFallbackStyle = lipgloss.NewStyle().
				Foreground(style.Slate).
				Italic(true)

	boundaryErrorStyle = lipgloss.NewStyle().
				Foreground(style.Red)
)

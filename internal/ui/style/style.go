// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Glacier = lipgloss.Color("#2E90FA")
	Slate   = lipgloss.Color("#667085")
	White   = lipgloss.Color("#FFFFFF")
	Ink     = lipgloss.Color("#101828")
	Snow    = lipgloss.Color("#F8FAFC")
	Green   = lipgloss.Color("#22A06B")
	Red     = lipgloss.Color("#D92D20")
	Yellow  = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Dot     = "●"
	Circle  = "○"
)

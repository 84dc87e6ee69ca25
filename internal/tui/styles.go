// package tui provides the terminal user interface for passgate.
// This file defines the shared lipgloss styles used across the views to
// ensure a consistent look and feel.
package tui // import "github.com/toeirei/passgate/internal/tui"

import "github.com/charmbracelet/lipgloss"

// colorPalette defines the core colors used in the TUI.
const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // A nice teal/cyan
	colorError     = lipgloss.Color("196") // A bright red
	colorSuccess   = lipgloss.Color("40")  // A nice green
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	// Help text
	helpStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	// Titles
	titleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			Padding(1, 2)

	// Error messages
	errorStyle = lipgloss.NewStyle().Foreground(colorError)

	// Success messages
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)

	// Neutral checklist entries (criterion not evaluated yet)
	neutralStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	// Focused text inputs
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))

	// Form buttons
	formItemStyle         = lipgloss.NewStyle()
	formSelectedItemStyle = lipgloss.NewStyle().Foreground(colorHighlight)
)

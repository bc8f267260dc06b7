package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/guestsheet/internal/urls"
	"github.com/muurk/guestsheet/internal/version"
)

// Application branding
const AppName = "GUESTSHEET"

// GitHubURL is the repository link shown in the header
var GitHubURL = urls.Display(urls.Repository)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 60 // Minimum supported terminal width
	LabelWidth       = 22 // Width of the label column in field rows
	chromeHeight     = 6  // Outer border + header + footer rows around the viewport
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	ErrorColor     = lipgloss.Color("#FF5555") // Red

	TextColor       = lipgloss.Color("#FFFFFF") // White
	SubtleColor     = lipgloss.Color("#626262") // Gray
	BorderColor     = lipgloss.Color("#7D56F4") // Purple (same as primary)
	HighlightColor  = lipgloss.Color("#43BF6D") // Green (same as secondary)
	BackgroundColor = lipgloss.Color("#1A1A1A") // Dark gray
)

// Common styles
var (
	// Title style - sheet heading
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			MarginBottom(1)

	// Section title style ("House Information", ...)
	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true).
				Underline(true)

	// Field label (unfocused)
	LabelStyle = lipgloss.NewStyle().
			Width(LabelWidth).
			Foreground(SubtleColor)

	// Field label (focused)
	FocusedLabelStyle = lipgloss.NewStyle().
				Width(LabelWidth).
				Foreground(HighlightColor).
				Bold(true)

	// Read-only value in the guest view
	ValueStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// Inline validation message beneath an input
	FieldErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			PaddingLeft(LabelWidth + 2)

	// Placeholder for empty lists in the guest view
	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				Italic(true)

	// Entry card for a pet or note
	EntryStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SubtleColor).
			Padding(0, 1)

	// Entry heading ("Rex (Dog)")
	EntryTitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// Entry body line
	EntryBodyStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Button (enabled, unfocused)
	ButtonStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// Button (focused)
	FocusedButtonStyle = lipgloss.NewStyle().
				Background(PrimaryColor).
				Foreground(BackgroundColor).
				Bold(true)

	// Button (disabled)
	DisabledButtonStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				Faint(true)

	// Status line under the toggle button
	StatusStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)
)

// BuildHeaderContent creates header content with app name and GitHub URL
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " " + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(GitHubURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// RenderApplicationContainer wraps screen content with the application
// header, a help footer and an outer border filling the terminal.
//
// Pattern:
//
//	func (m Model) View() string {
//	    return RenderApplicationContainer(m.viewport.View(), m.help.View(m.keys), m.Width, m.Height)
//	}
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	if terminalWidth < MinTerminalWidth {
		terminalWidth = MinTerminalWidth
	}

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth-4).
		Padding(0, 1)

	inner := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(BuildHeaderContent()),
		contentStyle.Render(content),
		footerStyle.Render(lipgloss.NewStyle().Foreground(SubtleColor).Render(footerText)),
	)

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		AlignVertical(lipgloss.Top)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		borderStyle.Render(inner),
	)
}

// contentWidth returns the usable width inside the container
func contentWidth(terminalWidth int) int {
	if terminalWidth < MinTerminalWidth {
		terminalWidth = MinTerminalWidth
	}
	return terminalWidth - 6
}

// viewportHeight returns the number of content rows available inside the container
func viewportHeight(terminalHeight int) int {
	h := terminalHeight - chromeHeight
	if h < 3 {
		return 3
	}
	return h
}

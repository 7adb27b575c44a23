// Copyright (c) 2026 Affine Team
// Affine - affine cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import "github.com/charmbracelet/lipgloss"

// colorPalette defines the core colors used in the TUI.
const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // A nice teal/cyan
	colorSpecial   = lipgloss.Color("208") // An orange for warnings
	colorError     = lipgloss.Color("196") // A bright red
	colorSuccess   = lipgloss.Color("40")  // A nice green
	colorWhite     = lipgloss.Color("231")
	colorDark      = lipgloss.Color("237")
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	helpStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	mainTitleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)

	focusedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))
	selectedStyle = lipgloss.NewStyle().Foreground(colorHighlight).Bold(true)

	outputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(0, 1)

	buttonStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(colorDark).
			Padding(0, 2).
			MarginRight(1)

	activeButtonStyle = buttonStyle.
				Background(colorHighlight).
				Underline(true)

	statusBaseStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(colorWhite).
			Background(colorSubtle)

	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Italic(true)
)

// statusStyle picks the status bar colors for a status kind.
func statusStyle(k statusKind) lipgloss.Style {
	switch k {
	case statusSuccess:
		return statusBaseStyle.Background(colorSuccess)
	case statusWarn:
		return statusBaseStyle.Background(colorSpecial)
	case statusError:
		return statusBaseStyle.Background(colorError)
	}
	return statusBaseStyle
}

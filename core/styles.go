package core

import "github.com/charmbracelet/lipgloss"

var appStyle = lipgloss.NewStyle().Foreground(colorInk)

// header
var (
	headerAppStyle = lipgloss.NewStyle().Foreground(colorGold).Bold(true).Background(colorNight)
	headerBarStyle = lipgloss.NewStyle().Background(colorNight).Foreground(colorInk)
	tabSepStyle    = lipgloss.NewStyle().Foreground(colorRule).Background(colorNight)
	// active section: gold on dusk, underlined like the site's nav
	activeTabStyle   = lipgloss.NewStyle().Background(colorDusk).Foreground(colorGold).Bold(true).Underline(true).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Background(colorNight).Foreground(colorDim).Padding(0, 1)
)

// status and footer
var (
	statusBarStyle    = lipgloss.NewStyle().Foreground(colorOk)
	statusErrBarStyle = lipgloss.NewStyle().Foreground(colorAlert).Bold(true)
	footerStyle       = lipgloss.NewStyle().Foreground(colorFaded)
)

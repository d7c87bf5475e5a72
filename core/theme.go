package core

import "github.com/charmbracelet/lipgloss"

// Night palette with a gold accent, matching the Aure Nox print material.
var (
	colorInk   lipgloss.Color = "#e8e3d9"
	colorFaded lipgloss.Color = "#9c9488"
	colorDim   lipgloss.Color = "#6f6878"
	colorRule  lipgloss.Color = "#4a4453"
	colorGold  lipgloss.Color = "#d4a857"
	colorOk    lipgloss.Color = "#8fbf7f"
	colorAlert lipgloss.Color = "#e07a6e"
	colorNight lipgloss.Color = "#17131d"
	colorDusk  lipgloss.Color = "#241f2c"
)

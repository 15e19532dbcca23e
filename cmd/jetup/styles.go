package main

import (
	"github.com/charmbracelet/lipgloss"
)

// Output styles, shared by the run summary and the steps listing.
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#1e66f5", Dark: "#89b4fa"})

	styleIndex = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#6c6f85", Dark: "#6c7086"})

	styleSuccess = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#40a02b", Dark: "#a6e3a1"})

	styleWarning = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#df8e1d", Dark: "#f9e2af"})

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#d20f39", Dark: "#f38ba8"})

	styleMuted = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#9ca0b0", Dark: "#a6adc8"})
)

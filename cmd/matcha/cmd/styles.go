package cmd

import "github.com/charmbracelet/lipgloss"

// styles groups the CLI's output styling. With color disabled every style is
// a passthrough.
type styles struct {
	value  lipgloss.Style
	err    lipgloss.Style
	banner lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{value: plain, err: plain, banner: plain}
	}
	return styles{
		value:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		err:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		banner: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	}
}

package tui

import "github.com/charmbracelet/lipgloss"

type theme struct {
	cell      lipgloss.Style
	cursor    lipgloss.Style
	correct   lipgloss.Style
	incorrect lipgloss.Style
	key       lipgloss.Style
	keyActive lipgloss.Style
	title     lipgloss.Style
	status    lipgloss.Style
	muted     lipgloss.Style
	err       lipgloss.Style
	border    lipgloss.Color
}

func newTheme(dark bool) theme {
	fg, muted, accent, border := lipgloss.Color("#1F1F1F"), lipgloss.Color("#7A7A7A"), lipgloss.Color("#A86F00"), lipgloss.Color("#BDBDBD")
	good, bad := lipgloss.Color("#2E7D32"), lipgloss.Color("#C62828")
	if dark {
		fg, muted, accent, border = lipgloss.Color("#F0F0F0"), lipgloss.Color("#8C8C8C"), lipgloss.Color("#C89A3A"), lipgloss.Color("#4A4A4A")
		good, bad = lipgloss.Color("#73D13D"), lipgloss.Color("#FF4D4F")
	}
	return theme{
		cell:      lipgloss.NewStyle().Foreground(fg),
		cursor:    lipgloss.NewStyle().Foreground(accent).Bold(true).Underline(true),
		correct:   lipgloss.NewStyle().Foreground(good),
		incorrect: lipgloss.NewStyle().Foreground(bad),
		key:       lipgloss.NewStyle().Foreground(fg).Padding(0, 1).Border(lipgloss.RoundedBorder(), true).BorderForeground(border),
		keyActive: lipgloss.NewStyle().Foreground(accent).Bold(true).Padding(0, 1).Border(lipgloss.RoundedBorder(), true).BorderForeground(accent),
		title:     lipgloss.NewStyle().Foreground(accent).Bold(true),
		status:    lipgloss.NewStyle().Foreground(fg),
		muted:     lipgloss.NewStyle().Foreground(muted),
		err:       lipgloss.NewStyle().Foreground(bad),
		border:    border,
	}
}

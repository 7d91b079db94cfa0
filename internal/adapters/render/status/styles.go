package status

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title        lipgloss.Style
	header       lipgloss.Style
	connected    lipgloss.Style
	disconnected lipgloss.Style
	demoBadge    lipgloss.Style
	adminBadge   lipgloss.Style
	key          lipgloss.Style
	value        lipgloss.Style
	address      lipgloss.Style
	balance      lipgloss.Style
	section      lipgloss.Style
	empty        lipgloss.Style
	pending      lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:        lipgloss.NewStyle().Bold(true),
		header:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		connected:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		disconnected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245")),
		demoBadge:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		adminBadge:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		key:          lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		value:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		address:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		balance:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
		section:      lipgloss.NewStyle().MarginTop(1),
		empty:        lipgloss.NewStyle().Faint(true),
		pending:      lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),
	}
}

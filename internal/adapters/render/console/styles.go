package console

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	index      lipgloss.Style
	pattern    lipgloss.Style
	intent     lipgloss.Style
	app        lipgloss.Style
	wildcard   lipgloss.Style
	warning    lipgloss.Style
	empty      lipgloss.Style
	transcript lipgloss.Style
	interim    lipgloss.Style
	response   lipgloss.Style
	speaker    lipgloss.Style
	faint      lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	return styles{
		title:      r.NewStyle().Bold(true),
		header:     r.NewStyle().Foreground(lipgloss.Color("241")),
		index:      r.NewStyle().Foreground(lipgloss.Color("245")).Width(4).Align(lipgloss.Right),
		pattern:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		intent:     r.NewStyle().Foreground(lipgloss.Color("252")),
		app:        r.NewStyle().Foreground(lipgloss.Color("159")),
		wildcard:   r.NewStyle().Foreground(lipgloss.Color("214")),
		warning:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		empty:      r.NewStyle().Faint(true),
		transcript: r.NewStyle().Foreground(lipgloss.Color("252")),
		interim:    r.NewStyle().Faint(true).Italic(true),
		response:   r.NewStyle().Foreground(lipgloss.Color("255")),
		speaker:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		faint:      r.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

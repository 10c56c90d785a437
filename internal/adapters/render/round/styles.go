package round

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	prompt    lipgloss.Style
	subject   lipgloss.Style
	flag      lipgloss.Style
	optionKey lipgloss.Style
	option    lipgloss.Style
	heartFull lipgloss.Style
	heartLost lipgloss.Style
	correct   lipgloss.Style
	wrong     lipgloss.Style
	retry     lipgloss.Style
	answer    lipgloss.Style
	section   lipgloss.Style
	empty     lipgloss.Style
	column    lipgloss.Style
	hint      lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		prompt:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		subject:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		flag:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Underline(true),
		optionKey: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
		option:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		heartFull: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		heartLost: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		correct:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		wrong:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		retry:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		answer:    lipgloss.NewStyle().Bold(true),
		section:   lipgloss.NewStyle().MarginTop(1),
		empty:     lipgloss.NewStyle().Faint(true),
		column:    lipgloss.NewStyle().PaddingRight(2),
		hint:      lipgloss.NewStyle().Faint(true),
	}
}

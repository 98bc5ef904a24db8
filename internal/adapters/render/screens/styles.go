package screens

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	customer lipgloss.Style
	persona  lipgloss.Style
	hint     lipgloss.Style
	section  lipgloss.Style
	venue    lipgloss.Style
	cursor   lipgloss.Style
	venueID  lipgloss.Style
	meta     lipgloss.Style
	detail   lipgloss.Style
	rainOK   lipgloss.Style
	slot     lipgloss.Style
	empty    lipgloss.Style
	correct  lipgloss.Style
	wrong    lipgloss.Style
	score    lipgloss.Style
	status   lipgloss.Style
	help     lipgloss.Style
}

func newStyles(plain bool) styles {
	if plain {
		s := lipgloss.NewStyle()
		return styles{
			title: s, header: s, customer: s, persona: s, hint: s,
			section: s.MarginTop(1), venue: s, cursor: s, venueID: s, meta: s,
			detail: s, rainOK: s, slot: s, empty: s, correct: s, wrong: s, score: s,
			status: s, help: s,
		}
	}

	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		customer: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		persona:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		hint:     lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("111")),
		section:  lipgloss.NewStyle().MarginTop(1),
		venue:    lipgloss.NewStyle().Bold(true),
		cursor:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		venueID:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		meta:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		detail:   lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("150")),
		rainOK:   lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		slot:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		empty:    lipgloss.NewStyle().Faint(true),
		correct:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		wrong:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		score:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		status:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		help:     lipgloss.NewStyle().Faint(true),
	}
}

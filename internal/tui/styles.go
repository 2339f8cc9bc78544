package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	recordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)

	completedDayStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42")).
				Bold(true)

	missedDayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	ineligibleDayStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))

	todayDayStyle = lipgloss.NewStyle().
			Underline(true)

	docStyle = lipgloss.NewStyle().Padding(1, 2)
)

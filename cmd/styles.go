package cmd

import "github.com/charmbracelet/lipgloss"

var (
	normalModeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("39"))

	searchModeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("251"))

	statusBackground = lipgloss.Color("238")

	headerStyle = lipgloss.NewStyle().
			BorderForeground(lipgloss.Color("240")).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("63"))

	inactiveSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("103"))
)

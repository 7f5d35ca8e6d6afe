package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorLightGray = lipgloss.Color("#CCCCCC")
	colorGray      = lipgloss.Color("#888888")
	colorDarkGray  = lipgloss.Color("#444444")
	colorSaffron   = lipgloss.Color("#F4A300")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSaffron).
			Align(lipgloss.Center).
			MarginTop(1).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			Align(lipgloss.Center).
			MarginBottom(2)

	commandStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	commandDescStyle = lipgloss.NewStyle().
				Foreground(colorGray).
				PaddingLeft(1)

	inputStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(colorLightGray)

	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(colorGray).
			Padding(0)

	infoStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true)

	userLabelStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			Bold(true)

	botLabelStyle = lipgloss.NewStyle().
			Foreground(colorSaffron).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDarkGray).
			Italic(true).
			MarginTop(1)
)

const logo = `
  ╔╦╗╔═╗╦ ╦╔═╗╔╗ ╦ ╦╔═╗╦═╗╔═╗╔╦╗╔═╗
  ║║║╠═╣╠═╣╠═╣╠╩╗╠═╣╠═╣╠╦╝╠═╣ ║ ╠═╣
  ╩ ╩╩ ╩╩ ╩╩ ╩╚═╝╩ ╩╩ ╩╩╚═╩ ╩ ╩ ╩ ╩
`

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// returns a new welcome screen
func NewWelcome(mode string) *Welcome {
	commands := []Command{
		{Name: "chat", Description: "ask questions about the epic", Available: true},
		{Name: "as <name>", Description: "chat with a character, e.g. \"as karna\"", Available: true},
		{Name: "start", Description: "start the API server", Available: true},
		{Name: "ingest", Description: "index ./data/mahabharata.pdf", Available: mode == "development"},
		{Name: "quit", Description: "exit", Available: true},
	}

	return &Welcome{
		mode:     mode,
		commands: commands,
	}
}

func (m *Welcome) Update(msg tea.Msg) (*Welcome, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			cmd := m.executeCommand()
			m.input = ""

			return m, cmd
		case "backspace":
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		case " ":
			m.input += " "
		default:
			if len(msg.Runes) == 1 {
				m.input += string(msg.Runes)
			}
		}

	case CharactersLoadedMsg:
		m.characters = msg.characters

	case ServerStartedMsg, IngesterCompleteMsg:
		m.input = ""
	}

	return m, nil
}

func (m *Welcome) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(logo))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("conversations with the great epic"))
	b.WriteString("\n\n")

	b.WriteString(infoStyle.Render(fmt.Sprintf("mode: %s", strings.ToUpper(m.mode))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Render("commands:"))
	b.WriteString("\n\n")

	for _, cmd := range m.commands {
		if !cmd.Available {
			continue
		}

		line := fmt.Sprintf("  %s %s",
			commandStyle.Render(cmd.Name),
			commandDescStyle.Render("- "+cmd.Description),
		)
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(m.characters) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Render("characters:"))
		b.WriteString("\n\n")

		for _, c := range m.characters {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				commandStyle.Render(c.Name),
				commandDescStyle.Render("- "+c.Description),
			))
		}
	}

	b.WriteString("\n")

	prompt := promptStyle.Render("> ")
	input := inputStyle.Render(m.input + "_")
	b.WriteString(prompt + input)
	b.WriteString("\n\n")

	b.WriteString(helpStyle.Render("type a command and press enter. press ctrl+c to quit."))

	return b.String()
}

func (m *Welcome) executeCommand() tea.Cmd {
	cmd := strings.TrimSpace(m.input)
	name, arg, _ := strings.Cut(cmd, " ")

	switch strings.ToLower(name) {
	case "quit":
		return tea.Quit

	case "start":
		return startServer

	case "ingest":
		if m.mode == "development" {
			return runIngester
		}

		return errorCmd(fmt.Errorf("ingester not available in production mode"))

	case "chat":
		return func() tea.Msg {
			return EnterChatMsg{}
		}

	case "as":
		character, err := m.resolveCharacter(strings.TrimSpace(arg))
		if err != nil {
			return errorCmd(err)
		}

		return func() tea.Msg {
			return EnterChatMsg{character: character}
		}

	default:
		if cmd != "" {
			return errorCmd(fmt.Errorf("unknown command: %s", cmd))
		}

		return nil
	}
}

// matches name against the loaded characters; without a list the server decides
func (m *Welcome) resolveCharacter(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("usage: as <character>")
	}

	if len(m.characters) == 0 {
		return name, nil
	}

	for _, c := range m.characters {
		if strings.EqualFold(c.Name, name) {
			return c.Name, nil
		}
	}

	return "", fmt.Errorf("unknown character: %s", name)
}

func errorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{err: err}
	}
}

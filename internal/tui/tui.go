package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func NewApp(mode string, client *ChatClient) *Model {
	return &Model{
		state:   StateWelcome,
		mode:    mode,
		client:  client,
		welcome: NewWelcome(mode),
	}
}

func (m *Model) Init() tea.Cmd {
	return m.client.CharactersCmd()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			// errors are dismissed first, then the chat, then the program
			if m.err != nil {
				m.err = nil
				return m, nil
			}

			if m.state == StateChat {
				m.state = StateWelcome
				return m, nil
			}

			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case ErrorMsg:
		m.err = msg.err
		return m, nil

	case EnterChatMsg:
		m.state = StateChat
		m.chat = NewChatModel(m.client, msg.character)

		// the chat screen has not seen the window size yet
		m.chat, _ = m.chat.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})

		return m, m.chat.Init()
	}

	switch m.state {
	case StateWelcome:
		return m.updateWelcome(msg)

	case StateChat:
		return m.updateChat(msg)

	default:
		return m, nil
	}
}

func (m *Model) View() string {
	if m.err != nil {
		return errorView(m.err)
	}

	switch m.state {
	case StateWelcome:
		return m.welcome.View()

	case StateChat:
		return m.chat.View()

	default:
		return "Unknown state"
	}
}

func (m *Model) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.welcome, cmd = m.welcome.Update(msg)

	return m, cmd
}

func (m *Model) updateChat(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)

	return m, cmd
}

func errorView(err error) string {
	return fmt.Sprintf("\n  Error: %v\n\n  Press Ctrl+C to go back\n", err)
}

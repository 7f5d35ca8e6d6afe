package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

const (
	roleUser = "user"
	roleBot  = "bot"

	// rows taken by the header, input box and status line
	chatChromeHeight = 7
)

// returns a chat screen talking to client; character may be empty
func NewChatModel(client *ChatClient, character string) *ChatModel {
	ti := textinput.New()
	ti.Placeholder = "ask about the Mahabharata..."
	if character != "" {
		ti.Placeholder = fmt.Sprintf("ask %s anything...", character)
	}

	ti.Focus()
	ti.CharLimit = 0
	ti.Width = 80
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(colorLightGray)
	ti.TextStyle = lipgloss.NewStyle().Foreground(colorWhite)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorSaffron)

	return &ChatModel{
		client:    client,
		input:     ti,
		spinner:   sp,
		sessionID: uuid.NewString(),
		character: character,
	}
}

func (m *ChatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ChatModel) Update(msg tea.Msg) (*ChatModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			message := strings.TrimSpace(m.input.Value())
			if message == "" || m.isFetching {
				return m, nil
			}

			m.isFetching = true
			m.input.SetValue("")
			m.transcript = append(m.transcript, TranscriptEntry{Role: roleUser, Content: message})
			m.refresh()

			return m, tea.Batch(m.client.ChatCmd(message, m.character, m.sessionID), m.spinner.Tick)

		case "ctrl+l":
			// a new session id starts a fresh server-side history
			m.transcript = nil
			m.sessionID = uuid.NewString()
			m.input.SetValue("")
			m.refresh()

			return m, nil
		}

	case ChatResponseMsg:
		m.isFetching = false
		m.transcript = append(m.transcript, TranscriptEntry{
			Role:     roleBot,
			Content:  msg.reply.Response,
			Metadata: formatReplyMetadata(msg.reply),
		})
		m.refresh()
		m.input.Focus()

		return m, nil

	case ChatErrorMsg:
		m.isFetching = false
		m.transcript = append(m.transcript, TranscriptEntry{
			Role:    roleBot,
			Content: fmt.Sprintf("Error: %v", msg.err),
		})
		m.refresh()
		m.input.Focus()

		return m, nil

	case spinner.TickMsg:
		if !m.isFetching {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *ChatModel) resize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = max(width-10, 10)

	vpHeight := max(height-chatChromeHeight, 3)

	if !m.ready {
		m.viewport = viewport.New(width-4, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = width - 4
		m.viewport.Height = vpHeight
	}

	// word wrap depends on the width, so the renderer is rebuilt with it
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(max(width-8, 20)),
	)
	if err == nil {
		m.renderer = renderer
	}

	m.refresh()
}

// re-renders the transcript into the viewport and scrolls to the end
func (m *ChatModel) refresh() {
	if !m.ready {
		return
	}

	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

func (m *ChatModel) renderTranscript() string {
	if len(m.transcript) == 0 {
		return infoStyle.Render("ready! type a question below and press enter.")
	}

	var b strings.Builder

	for _, e := range m.transcript {
		switch e.Role {
		case roleUser:
			b.WriteString(userLabelStyle.Render("you"))
			b.WriteString("\n")
			b.WriteString(e.Content)
			b.WriteString("\n\n")

		default:
			b.WriteString(botLabelStyle.Render(m.speaker()))
			b.WriteString("\n")
			b.WriteString(m.renderMarkdown(e.Content))

			if e.Metadata != "" {
				b.WriteString(infoStyle.Render(e.Metadata))
				b.WriteString("\n")
			}

			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m *ChatModel) renderMarkdown(text string) string {
	if m.renderer == nil {
		return text + "\n"
	}

	out, err := m.renderer.Render(text)
	if err != nil {
		return text + "\n"
	}

	return out
}

func (m *ChatModel) speaker() string {
	if m.character != "" {
		return strings.ToLower(m.character)
	}

	return "sage"
}

func (m *ChatModel) View() string {
	var b strings.Builder

	title := "CHAT"
	if m.character != "" {
		title = "CHAT WITH " + strings.ToUpper(m.character)
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorWhite).
		Render(title)

	help := lipgloss.NewStyle().
		Foreground(colorGray).
		Render("[Enter: Send] [Ctrl+L: New session] [Ctrl+C: Back]")

	headerLine := lipgloss.JoinHorizontal(lipgloss.Left,
		header,
		strings.Repeat(" ", max(0, m.width-lipgloss.Width(header)-lipgloss.Width(help)-2)),
		help,
	)

	b.WriteString(headerLine)
	b.WriteString("\n\n")

	if m.ready {
		b.WriteString(m.viewport.View())
	} else {
		b.WriteString(m.renderTranscript())
	}

	b.WriteString("\n")

	inputBox := borderStyle.
		Width(max(m.width-4, 10)).
		Padding(0, 1).
		Render(m.input.View())

	b.WriteString(inputBox)
	b.WriteString("\n")

	if m.isFetching {
		b.WriteString(m.spinner.View())
		b.WriteString(infoStyle.Render(" consulting the epic..."))
	}

	return b.String()
}

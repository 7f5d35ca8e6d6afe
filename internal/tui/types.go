package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
)

// represents the current state of the TUI
type AppState int

const (
	StateWelcome AppState = iota
	StateChat
)

// main TUI application model
type Model struct {
	state   AppState
	mode    string
	width   int
	height  int
	err     error
	client  *ChatClient
	welcome *Welcome
	chat    *ChatModel
}

// sent when an error occurs
type ErrorMsg struct {
	err error
}

// sent to open the chat screen; an empty character means plain ai mode
type EnterChatMsg struct {
	character string
}

// one entry in the on-screen transcript
type TranscriptEntry struct {
	Role     string
	Content  string
	Metadata string
}

// chat screen
type ChatModel struct {
	client     *ChatClient
	input      textinput.Model
	viewport   viewport.Model
	spinner    spinner.Model
	renderer   *glamour.TermRenderer
	width      int
	height     int
	ready      bool
	isFetching bool

	sessionID  string
	character  string
	transcript []TranscriptEntry
}

// sent when the server answers a chat message
type ChatResponseMsg struct {
	message string
	reply   ChatReply
}

// sent when a chat request fails
type ChatErrorMsg struct {
	message string
	err     error
}

// welcome screen model
type Welcome struct {
	mode       string
	input      string
	commands   []Command
	characters []Character
}

// represents an available TUI command
type Command struct {
	Name        string
	Description string
	Available   bool
}

// sent when the character list arrives
type CharactersLoadedMsg struct {
	characters []Character
}

// sent when the server starts
type ServerStartedMsg struct{}

// sent when the ingester completes
type IngesterCompleteMsg struct{}

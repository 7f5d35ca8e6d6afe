package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"

	"codeberg.org/mahabharata/server/internal/tui"
)

func main() {
	if !term.IsTerminal(os.Stdout.Fd()) {
		fmt.Println("mahabharata tui needs an interactive terminal")
		os.Exit(1)
	}

	env := os.Getenv("ENVIRONMENT")

	if env == "" {
		env = "development"
	}

	app := tui.NewApp(env, tui.NewChatClient(""))
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		fmt.Printf("error running mahabharata: %v\n", err)
		os.Exit(1)
	}
}

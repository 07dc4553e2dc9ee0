package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"dualpane/internal/config"
	"dualpane/internal/logger"
)

func main() {
	if err := logger.Init(); err != nil {
		// Logging is best-effort; the browser works without it.
		log.Printf("logger init: %v", err)
	}
	defer logger.Close()

	cfg := config.Load()

	p := tea.NewProgram(initialModel(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rmendoza/pluma/internal/config"
	"github.com/rmendoza/pluma/internal/logging"
	"github.com/rmendoza/pluma/internal/submit"
	"github.com/rmendoza/pluma/internal/tui"
)

func main() {
	// Route logs (including emitted submission events) to a file so
	// they stay off the alternate screen
	if err := logging.Init(); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Default collaborator: structured log events, retried on failure
	submitter := submit.WithRetry(submit.NewLogSubmitter(nil), 3)

	model := tui.InitialModel(cfg, tui.WithSubmitter(submitter))

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		log.Fatal(err)
	}
}

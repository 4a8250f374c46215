package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"matchscout/internal/config"
	"matchscout/internal/eventbus"
	"matchscout/internal/matchsvc"
	"matchscout/internal/ui"
)

func main() {
	// Parse command line arguments
	var endpoint string
	var configPath string
	flag.StringVar(&endpoint, "endpoint", "", "Base URL of the matching service (overrides config)")
	flag.StringVar(&endpoint, "e", "", "Base URL of the matching service (shorthand)")
	flag.StringVar(&configPath, "config", "", "Path to a config file")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("matchscout.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	var cfg *config.Config
	if configPath != "" {
		cfg, err = configSvc.LoadFromPath(configPath)
		if err != nil {
			fmt.Printf("Error loading config from %s: %v\n", configPath, err)
			os.Exit(1)
		}
	} else {
		cfg, err = configSvc.Load()
		if err != nil {
			log.Printf("Error loading config: %v", err)
			cfg = config.DefaultConfig()
		}
	}

	if endpoint != "" {
		cfg.Endpoint = endpoint
	}

	// Create the matching service client
	client := matchsvc.NewClient(matchsvc.Config{
		BaseURL:       cfg.Endpoint,
		SearchPath:    cfg.SearchPath,
		Timeout:       cfg.Timeout(),
		SnippetLength: cfg.UISettings.SnippetLength,
	})

	// Create UI model
	log.Printf("Creating UI model...")
	uiModel := ui.NewModel(cfg, bus, client)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Forward bus events to the UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forwardEvent := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}

	// Subscribe to search lifecycle events for the log and the UI
	bus.Subscribe(eventbus.EventSearchStarted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchStartedEvent); ok {
			log.Printf("Search %d started: %q", event.Seq, event.Query)
		}
		forwardEvent(e)
	})
	bus.Subscribe(eventbus.EventSearchSucceeded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchSucceededEvent); ok {
			log.Printf("Search %d succeeded: %d matches for %q", event.Seq, event.MatchCount, event.Query)
		}
		forwardEvent(e)
	})
	bus.Subscribe(eventbus.EventSearchFailed, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchFailedEvent); ok {
			log.Printf("Search %d failed: %s", event.Seq, event.Message)
		}
		forwardEvent(e)
	})
	bus.Subscribe(eventbus.EventSearchRejected, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchRejectedEvent); ok {
			log.Printf("Search rejected: %s", event.Reason)
		}
		forwardEvent(e)
	})

	// Start forwarding events to the UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Run the UI
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}

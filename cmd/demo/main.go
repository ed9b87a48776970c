package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"summarize/demo/client"
	"summarize/demo/feeds"
	"summarize/demo/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment
	_ = godotenv.Load()

	serviceURL := flag.String("url", "http://localhost:8080", "Summary service URL")
	feed := flag.String("feed", feeds.DefaultPreset, "Feed preset (cna, st, hn, tr) or RSS URL")
	count := flag.Int("count", 10, "Max articles to list from the feed")
	flag.Parse()

	m := tui.NewModel(client.NewClient(*serviceURL), feeds.ResolveURL(*feed), *count)

	program := tea.NewProgram(m)

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

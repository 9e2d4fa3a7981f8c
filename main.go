package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lbatteau/gazette/internal/app"
	"github.com/lbatteau/gazette/internal/config"
	"github.com/lbatteau/gazette/internal/feed"
	"github.com/lbatteau/gazette/internal/icons"
	"github.com/lbatteau/gazette/internal/logging"
	"github.com/lbatteau/gazette/internal/stderr"
	"github.com/lbatteau/gazette/internal/ui/styles"
)

func run() error {
	postFlag := flag.String("post", "", "post slug to scroll to on startup")
	flag.Parse()

	if err := stderr.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "stderr capture unavailable: %v\n", err)
	}
	defer stderr.Stop()

	closeLog, err := logging.Setup()
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer closeLog()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	icons.Init(cfg.Icons)
	if cfg.Accent != "" {
		styles.SetAccent(lipgloss.Color(cfg.Accent))
	}

	posts, err := feed.Load(cfg.FeedDir)
	if err != nil {
		return fmt.Errorf("load feed from %s: %w", cfg.FeedDir, err)
	}
	log.Info("feed loaded", "dir", cfg.FeedDir, "posts", len(posts))

	m := app.New(cfg, posts, *postFlag)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		stderr.WriteOriginal(fmt.Sprintf("gazette: %v\n", err))
		os.Exit(1)
	}
}

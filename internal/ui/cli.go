// Package ui implements the cobra command surface.
package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucasvidela/jornada/internal/config"
	"github.com/lucasvidela/jornada/internal/event"
	"github.com/lucasvidela/jornada/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo   event.Repository
	config *config.Config
	root   *cobra.Command
}

// NewApp creates a new CLI application with the given repository and config.
func NewApp(repo event.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg}

	a.root = &cobra.Command{
		Use:   "jornada",
		Short: "A CLI day planner",
		Long: `Jornada plans your day around your calendar.

It computes the free windows between committed events, carves prioritized
task chunks into them with transition buffers, and fits habits into what
is left.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.Run(a.repo, a.config)
		},
	}

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.planCmd())
	a.root.AddCommand(a.suggestCmd())
	a.root.AddCommand(a.analyzeCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("jornada %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

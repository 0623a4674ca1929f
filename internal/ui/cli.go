// Package ui implements the command line interface.
package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmoreras/ganttboard/internal/config"
	"github.com/nmoreras/ganttboard/internal/feature"
	"github.com/nmoreras/ganttboard/internal/store"
	"github.com/nmoreras/ganttboard/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo    feature.Repository
	config  *config.Config
	root    *cobra.Command
	project string
	debug   bool
}

// NewApp creates a new CLI application with the given config. The repository
// is opened lazily so commands like version work without a database.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg, project: cfg.Board.DefaultProject}

	a.root = &cobra.Command{
		Use:   "ganttboard",
		Short: "An interactive gantt timeline for feature planning",
		Long: `Ganttboard is a terminal gantt chart for planning features across roles.

Bars snap to working days (weekends and holidays are skipped), rows can be
grouped by feature or by role, and the board saves itself as you edit.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			return tui.Run(a.repo, a.config, a.project, a.debug)
		},
	}

	a.root.PersistentFlags().StringVarP(&a.project, "project", "p", a.project, "Project to open")
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (writes ganttboard-debug.log)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.statsCmd())
	a.root.AddCommand(a.deleteCmd())
	a.root.AddCommand(a.importCmd())
	a.root.AddCommand(a.shareCmd())
	a.root.AddCommand(a.viewCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("ganttboard %s (commit: %s)\n", Version, Commit)
		},
	}
}

// ensureRepo opens the SQLite repository on first use.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}
	repo, err := store.New(a.config.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	a.repo = repo
	return nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	defer func() {
		if a.repo != nil {
			_ = a.repo.Close()
		}
	}()
	return a.root.Execute()
}

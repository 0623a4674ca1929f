package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nmoreras/ganttboard/internal/snapshot"
	"github.com/nmoreras/ganttboard/internal/tui"
)

func (a *App) viewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [snapshot]",
		Short: "Open a shared snapshot read-only",
		Long: `Open a snapshot link (or the bare snapshot string) in a read-only board.

Bars can be inspected but not moved; nothing is written to the database.`,
		Example: `  ganttboard view "ganttboard://snapshot/eyJ2IjoxL..."`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			encoded := strings.TrimPrefix(args[0], a.config.Share.BaseURL)

			features, ok := snapshot.Decode(encoded)
			if !ok {
				return fmt.Errorf("not a valid snapshot")
			}

			return tui.RunSnapshot(features, a.config, a.debug)
		},
	}
}

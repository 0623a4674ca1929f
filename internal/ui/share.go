package ui

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/nmoreras/ganttboard/internal/snapshot"
)

func (a *App) shareCmd() *cobra.Command {
	var noClipboard bool

	cmd := &cobra.Command{
		Use:   "share",
		Short: "Encode the project as a shareable snapshot link",
		Long: `Encode the project's feature collection into a compact snapshot string
and copy the resulting link to the clipboard.

Anyone with the link can open a read-only view of the board with
"ganttboard view".`,
		Example: `  ganttboard share
  ganttboard share --project roadmap --no-clipboard`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			features, err := a.repo.LoadTasks(context.Background(), a.project)
			if err != nil {
				return fmt.Errorf("loading project %q: %w", a.project, err)
			}
			if len(features) == 0 {
				return fmt.Errorf("project %q has nothing to share", a.project)
			}

			link := a.config.Share.BaseURL + snapshot.Encode(features)
			fmt.Println(link)

			if !noClipboard {
				if err := clipboard.WriteAll(link); err != nil {
					fmt.Println(formatMuted("(could not copy to clipboard: " + err.Error() + ")"))
				} else {
					fmt.Println(formatMuted("Copied to clipboard."))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noClipboard, "no-clipboard", false, "Print the link without copying it")

	return cmd
}

package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmoreras/ganttboard/internal/dateutil"
	"github.com/nmoreras/ganttboard/internal/summary"
)

func (a *App) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show per-role workload for a project",
		Long: `Aggregate the selected project into per-role workload: how many bars each
role owns and how many working days they add up to.`,
		Example: `  ganttboard stats
  ganttboard stats --project roadmap`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			s, err := summary.Build(context.Background(), a.repo, a.project)
			if err != nil {
				return err
			}

			if s.Assignments == 0 {
				fmt.Printf("Project %q is empty.\n", a.project)
				return nil
			}

			fmt.Println(formatHeader(a.project))
			fmt.Printf("  %s features, %s assignments, %s..%s\n",
				formatStats(fmt.Sprintf("%d", s.Features)),
				formatStats(fmt.Sprintf("%d", s.Assignments)),
				dateutil.FormatDate(s.Start),
				dateutil.FormatDate(s.End),
			)
			fmt.Println()
			for _, r := range s.Roles {
				fmt.Printf("  %-10s %s  %s\n",
					formatRole(r.Role),
					formatStats(fmt.Sprintf("%3d working days", r.WorkingDays)),
					formatMuted(fmt.Sprintf("%d bars", r.Bars)),
				)
			}
			return nil
		},
	}
}

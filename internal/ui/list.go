package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmoreras/ganttboard/internal/dateutil"
	"github.com/nmoreras/ganttboard/internal/feature"
)

func (a *App) listCmd() *cobra.Command {
	var showFeatures bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored projects",
		Long: `List all stored projects with their feature counts.

With --features, also prints each feature of the selected project with its
assignments and date ranges.`,
		Example: `  ganttboard list
  ganttboard list --features
  ganttboard list --features --project roadmap`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			if showFeatures {
				return a.printFeatures(context.Background())
			}
			return a.printProjects(context.Background())
		},
	}

	cmd.Flags().BoolVar(&showFeatures, "features", false, "Show the features of the selected project")

	return cmd
}

func (a *App) printProjects(ctx context.Context) error {
	projects, err := a.repo.ListProjects(ctx)
	if err != nil {
		return fmt.Errorf("listing projects: %w", err)
	}

	if len(projects) == 0 {
		fmt.Println("No projects stored yet.")
		return nil
	}

	fmt.Println(formatHeader("Projects"))
	for _, p := range projects {
		marker := " "
		if p.ID == a.project {
			marker = "*"
		}
		fmt.Printf("  %s %-24s %s\n", marker, p.ID,
			formatStats(fmt.Sprintf("%d features", p.FeatureCount)))
	}
	return nil
}

func (a *App) printFeatures(ctx context.Context) error {
	features, err := a.repo.LoadTasks(ctx, a.project)
	if err != nil {
		return fmt.Errorf("loading project %q: %w", a.project, err)
	}

	if len(features) == 0 {
		fmt.Printf("Project %q is empty.\n", a.project)
		return nil
	}

	for i, f := range features {
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(formatHeader(f.Name))
		for _, asg := range f.Assignments {
			printAssignmentRow(asg)
		}
	}
	return nil
}

func printAssignmentRow(a feature.Assignment) {
	role := a.Role
	if role == "" {
		role = feature.RoleUnassigned
	}

	label := ""
	if a.Label != "" {
		// Role, dates and progress take the first ~44 columns.
		label = "  " + formatMuted(clip(a.Label, termWidth()-44))
	}

	fmt.Printf("  %-10s %s..%s  %s%s\n",
		formatRole(role),
		dateutil.FormatDate(a.Start),
		dateutil.FormatDate(a.End),
		formatStats(fmt.Sprintf("%3d%%", a.Progress)),
		label,
	)
}

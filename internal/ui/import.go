package ui

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nmoreras/ganttboard/internal/feature"
	"github.com/nmoreras/ganttboard/internal/llm"
)

func (a *App) importCmd() *cobra.Command {
	var (
		fromFile string
		replace  bool
	)

	cmd := &cobra.Command{
		Use:   "import [description...]",
		Short: "Generate features from a freeform description",
		Long: `Generate features from a freeform plan using the configured LLM.

The description can be given as arguments or read from a text file with
--file. Imported features are appended to the project unless --replace is
set.`,
		Example: `  ganttboard import "登入功能 前端兩天 後端三天"
  ganttboard import --file plan.md
  ganttboard import --file plan.md --replace`,
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			client, err := llm.NewClient(a.config.LLM.Provider, a.config.LLM.Model, a.config.LLM.BaseURL)
			if err != nil {
				return fmt.Errorf("creating LLM client: %w", err)
			}
			importer := llm.NewImporter(client)
			ctx := context.Background()

			features, err := a.parseImportInput(ctx, importer, args, fromFile)
			if err != nil {
				return err
			}

			if !replace {
				existing, err := a.repo.LoadTasks(ctx, a.project)
				if err == nil {
					features = append(existing, features...)
				}
			}

			if err := a.repo.SaveTasks(ctx, a.project, features); err != nil {
				return fmt.Errorf("saving project: %w", err)
			}

			fmt.Printf("Imported into %q; project now has %d features.\n", a.project, len(features))
			return nil
		},
	}

	cmd.Flags().StringVarP(&fromFile, "file", "f", "", "Read the description from a text file")
	cmd.Flags().BoolVar(&replace, "replace", false, "Replace the project instead of appending")

	return cmd
}

func (a *App) parseImportInput(ctx context.Context, importer *llm.Importer, args []string, fromFile string) ([]feature.Feature, error) {
	if fromFile != "" {
		data, err := os.ReadFile(fromFile)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", fromFile, err)
		}
		mimeType := mime.TypeByExtension(filepath.Ext(fromFile))
		return importer.ParseFile(ctx, data, mimeType)
	}

	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return nil, fmt.Errorf("nothing to import: give a description or --file")
	}
	return importer.ParseText(ctx, text)
}

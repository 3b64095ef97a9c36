package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/doseplan/internal/cli/formatter"
	"github.com/alexanderramin/doseplan/internal/config"
)

func newGenerateCmd(app *App) *cobra.Command {
	var f planFlags
	var outputPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a binary-crossover treatment plan and write it to a file",
		Long: "Generate a binary-crossover treatment plan: alternating placebo/treatment\n" +
			"intervals of randomized length covering the requested duration. The output\n" +
			"file contains a month-by-month pill-organizer grid followed by the full\n" +
			"dated list.",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, cfg, err := buildRequest(cmd.Flags(), f)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("output_file_path") {
				cfg.OutputFilePath = outputPath
			}

			result, err := app.Plans.Generate(context.Background(), req)
			if err != nil {
				return err
			}

			if err := os.WriteFile(cfg.OutputFilePath, []byte(result.Document), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", cfg.OutputFilePath, err)
			}

			fmt.Printf("Wrote %d-day plan %s to %s\n", result.Stats.Duration, formatter.TruncID(result.PlanID), cfg.OutputFilePath)
			fmt.Printf("%s\n", formatter.FormatPlanStats(result.Stats))
			if app.interactive() {
				fmt.Printf("\n%s\n", result.GridText)
			}
			return nil
		},
	}

	addPlanFlags(cmd, &f)
	cmd.Flags().StringVar(&outputPath, "output_file_path", config.Default().OutputFilePath, "Path to output file")

	return cmd
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/doseplan/internal/cli/formatter"
	"github.com/alexanderramin/doseplan/internal/domain"
)

func newStatsCmd(app *App) *cobra.Command {
	var f planFlags
	var design string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Generate a plan in memory and print its block statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, _, err := buildRequest(cmd.Flags(), f)
			if err != nil {
				return err
			}
			switch design {
			case "crossover":
				req.Design = domain.DesignBinaryCrossover
			case "randomized":
				req.Design = domain.DesignRandomized
			default:
				return fmt.Errorf("invalid design %q (expected crossover or randomized)", design)
			}

			result, err := app.Plans.Generate(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatPlanStats(result.Stats))
			return nil
		},
	}

	addPlanFlags(cmd, &f)
	cmd.Flags().StringVar(&design, "design", "crossover", "Trial design (crossover|randomized)")

	return cmd
}

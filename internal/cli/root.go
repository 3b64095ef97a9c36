package cli

import (
	"github.com/alexanderramin/doseplan/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the service interfaces used by CLI commands.
type App struct {
	Plans service.PlanService

	// IsInteractive reports whether stdout is a terminal. Extra output such
	// as the grid preview is only printed when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "doseplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "doseplan",
		Short: "Blinded treatment schedule generator for self-experiment trials",
	}

	root.AddCommand(
		newGenerateCmd(app),
		newStatsCmd(app),
	)

	return root
}

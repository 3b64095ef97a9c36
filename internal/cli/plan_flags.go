package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/doseplan/internal/config"
	"github.com/alexanderramin/doseplan/internal/contract"
)

// planFlags are the generation parameters shared by the generate and stats
// commands.
type planFlags struct {
	duration    int
	intervalMin int
	intervalMax int
	startDate   string
	seed        int64
	configPath  string
}

func addPlanFlags(cmd *cobra.Command, f *planFlags) {
	d := config.Default()
	cmd.Flags().IntVar(&f.duration, "duration", d.Duration, "Duration of treatment plan in days")
	cmd.Flags().IntVar(&f.intervalMin, "interval_min", d.IntervalMin, "Minimum length of treatment/placebo interval")
	cmd.Flags().IntVar(&f.intervalMax, "interval_max", d.IntervalMax, "Maximum length of treatment/placebo interval")
	cmd.Flags().StringVar(&f.startDate, "start_date", d.StartDate, "Start date of treatment plan in ISO 8601, e.g. 2025-01-01")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "Random seed for a reproducible plan (omit for a fresh plan each run)")
	cmd.Flags().StringVar(&f.configPath, "config", "", "Path to a YAML or JSON defaults file")
}

// buildRequest merges built-in defaults, the optional defaults file, and any
// flags the user set explicitly, in that order of precedence.
func buildRequest(flags *pflag.FlagSet, f planFlags) (contract.GenerateRequest, config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return contract.GenerateRequest{}, config.Config{}, err
		}
		cfg = loaded
	}

	if flags.Changed("duration") {
		cfg.Duration = f.duration
	}
	if flags.Changed("interval_min") {
		cfg.IntervalMin = f.intervalMin
	}
	if flags.Changed("interval_max") {
		cfg.IntervalMax = f.intervalMax
	}
	if flags.Changed("start_date") {
		cfg.StartDate = f.startDate
	}

	req := contract.NewGenerateRequest()
	req.Duration = cfg.Duration
	req.IntervalMin = cfg.IntervalMin
	req.IntervalMax = cfg.IntervalMax
	req.StartDate = cfg.StartDate
	if flags.Changed("seed") {
		seed := f.seed
		req.Seed = &seed
	}
	return req, cfg, nil
}

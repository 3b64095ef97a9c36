package contract

import (
	"fmt"

	"github.com/alexanderramin/doseplan/internal/domain"
)

// Default generation parameters, shared by the CLI flags and the config
// layer.
const (
	DefaultDuration    = 120
	DefaultIntervalMin = 4
	DefaultIntervalMax = 5
	DefaultStartDate   = "2025-01-01"
)

// GenerateRequest carries the parameters for one plan-generation run.
type GenerateRequest struct {
	// Design selects the generator; the zero value means binary crossover.
	Design      domain.TrialDesign
	Duration    int
	IntervalMin int
	IntervalMax int
	// StartDate is the first plan day in YYYY-MM-DD form.
	StartDate string
	// Treatments overrides the default two-arm set when non-nil.
	Treatments []string
	// Seed, when set, makes the run reproducible.
	Seed *int64
}

// NewGenerateRequest returns a binary-crossover request with the standard
// defaults.
func NewGenerateRequest() GenerateRequest {
	return GenerateRequest{
		Design:      domain.DesignBinaryCrossover,
		Duration:    DefaultDuration,
		IntervalMin: DefaultIntervalMin,
		IntervalMax: DefaultIntervalMax,
		StartDate:   DefaultStartDate,
	}
}

// Validate checks the request preconditions shared by both generators.
// Generator-specific constraints (treatment-set arity) are enforced by the
// generators themselves.
func (r GenerateRequest) Validate() error {
	switch r.Design {
	case "", domain.DesignBinaryCrossover, domain.DesignRandomized:
	default:
		return fmt.Errorf("design: unknown trial design %q", r.Design)
	}
	if r.Duration < 0 {
		return fmt.Errorf("duration: must be >= 0, got %d", r.Duration)
	}
	if r.IntervalMax < r.IntervalMin {
		return fmt.Errorf("interval bounds: max (%d) must be >= min (%d)", r.IntervalMax, r.IntervalMin)
	}
	if r.StartDate == "" {
		return fmt.Errorf("start date: required")
	}
	return nil
}

// PlanStats summarizes the block structure of a generated plan.
type PlanStats struct {
	Duration         int
	BlockCount       int
	MeanBlockDays    float64
	StdDevBlockDays  float64
	DaysPerTreatment map[string]int
}

// PlanResult is the assembled output of one generation run.
type PlanResult struct {
	PlanID    string
	Design    domain.TrialDesign
	StartDate string
	Plan      domain.Plan

	// DatedText is the "YYYY-MM-DD: <label>" rendering of the plan.
	DatedText string
	// GridText is the month-by-month pill-organizer rendering.
	GridText string
	// Document is the printable file content: grid, one blank line, then
	// the full dated list.
	Document string

	Stats PlanStats
}

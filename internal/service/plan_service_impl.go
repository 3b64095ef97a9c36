package service

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"github.com/alexanderramin/doseplan/internal/contract"
	"github.com/alexanderramin/doseplan/internal/domain"
	"github.com/alexanderramin/doseplan/internal/generation"
	"github.com/alexanderramin/doseplan/internal/schedule"
)

type planService struct {
	rng *rand.Rand
}

// NewPlanService returns a PlanService drawing randomness from rng.
// A nil rng falls back to a time-seeded source; a request carrying a seed
// always uses its own source so runs are reproducible.
func NewPlanService(rng *rand.Rand) PlanService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &planService{rng: rng}
}

func (s *planService) Generate(ctx context.Context, req contract.GenerateRequest) (*contract.PlanResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rng := s.rng
	if req.Seed != nil {
		rng = rand.New(rand.NewSource(*req.Seed))
	}

	design := req.Design
	if design == "" {
		design = domain.DesignBinaryCrossover
	}

	var (
		plan domain.Plan
		err  error
	)
	switch design {
	case domain.DesignRandomized:
		plan, err = generation.Randomized(rng, req.Duration, req.IntervalMin, req.IntervalMax, req.Treatments)
	default:
		plan, err = generation.BinaryCrossover(rng, req.Duration, req.IntervalMin, req.IntervalMax, req.Treatments)
	}
	if err != nil {
		return nil, fmt.Errorf("generating %s plan: %w", design, err)
	}

	dated, err := schedule.EnumerateDated(plan, req.StartDate)
	if err != nil {
		return nil, err
	}
	grid, err := schedule.Grid(dated)
	if err != nil {
		return nil, fmt.Errorf("rendering grid: %w", err)
	}

	return &contract.PlanResult{
		PlanID:    uuid.New().String(),
		Design:    design,
		StartDate: req.StartDate,
		Plan:      plan,
		DatedText: dated,
		GridText:  grid,
		Document:  grid + "\n\n" + dated,
		Stats:     buildStats(plan),
	}, nil
}

// buildStats summarizes the block structure of a plan: block count, mean
// and population standard deviation of block lengths, and total days per
// treatment.
func buildStats(plan domain.Plan) contract.PlanStats {
	blocks := plan.Blocks()

	lengths := make([]float64, len(blocks))
	perTreatment := make(map[string]int, 2)
	for i, b := range blocks {
		lengths[i] = float64(b.Length)
		perTreatment[b.Treatment] += b.Length
	}

	stats := contract.PlanStats{
		Duration:         len(plan),
		BlockCount:       len(blocks),
		DaysPerTreatment: perTreatment,
	}
	if len(blocks) > 0 {
		stats.MeanBlockDays = stat.Mean(lengths, nil)
		stats.StdDevBlockDays = math.Sqrt(stat.PopVariance(lengths, nil))
	}
	return stats
}

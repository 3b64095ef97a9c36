package generation

import (
	"fmt"
	"math/rand"

	"github.com/alexanderramin/doseplan/internal/domain"
)

// Randomized generates a plan of exactly duration entries. Each block draws
// an interval length uniformly from [intervalMin, intervalMax] and a
// treatment uniformly (with replacement) from treatments, so the same
// treatment may occupy adjacent blocks. A nil treatments slice selects the
// default two-arm set. The final block is truncated so the plan length
// matches duration exactly.
func Randomized(rng *rand.Rand, duration, intervalMin, intervalMax int, treatments []string) (domain.Plan, error) {
	if err := checkIntervalBounds(intervalMin, intervalMax); err != nil {
		return nil, err
	}
	if treatments == nil {
		treatments = domain.DefaultTreatments()
	}
	if len(treatments) == 0 {
		return nil, fmt.Errorf("treatments: at least one treatment is required")
	}
	if duration <= 0 {
		return domain.Plan{}, nil
	}

	plan := make(domain.Plan, 0, duration)
	for len(plan) < duration {
		interval := drawInterval(rng, intervalMin, intervalMax)
		treatment := treatments[rng.Intn(len(treatments))]
		for i := 0; i < interval; i++ {
			plan = append(plan, treatment)
		}
	}
	return plan[:duration], nil
}

// BinaryCrossover generates a plan of exactly duration entries alternating
// strictly between two treatments block by block. The initial active index
// is drawn at random and toggled before the first block is appended, so the
// first emitted treatment is the opposite of the initial draw. A nil
// treatments slice selects the default two-arm set; anything other than two
// distinct treatments is rejected.
func BinaryCrossover(rng *rand.Rand, duration, intervalMin, intervalMax int, treatments []string) (domain.Plan, error) {
	if err := checkIntervalBounds(intervalMin, intervalMax); err != nil {
		return nil, err
	}
	if treatments == nil {
		treatments = domain.DefaultTreatments()
	}
	if len(treatments) != 2 {
		return nil, fmt.Errorf("treatments: binary crossover requires exactly 2 treatments, got %d", len(treatments))
	}
	if treatments[0] == treatments[1] {
		return nil, fmt.Errorf("treatments: binary crossover requires 2 distinct treatments, got %q twice", treatments[0])
	}
	if duration <= 0 {
		return domain.Plan{}, nil
	}

	plan := make(domain.Plan, 0, duration)
	active := rng.Intn(2)
	for len(plan) < duration {
		interval := drawInterval(rng, intervalMin, intervalMax)
		active = 1 - active
		for i := 0; i < interval; i++ {
			plan = append(plan, treatments[active])
		}
	}
	return plan[:duration], nil
}

func checkIntervalBounds(intervalMin, intervalMax int) error {
	if intervalMax < intervalMin {
		return fmt.Errorf("interval bounds: max (%d) must be >= min (%d)", intervalMax, intervalMin)
	}
	if intervalMax < 1 {
		// An all-zero interval range would never grow the plan.
		return fmt.Errorf("interval bounds: max (%d) must be >= 1", intervalMax)
	}
	return nil
}

// drawInterval draws a block length uniformly from [min, max] inclusive.
// Equal bounds degenerate to a fixed length without consuming randomness.
func drawInterval(rng *rand.Rand, min, max int) int {
	if min == max {
		return min
	}
	return min + rng.Intn(max-min+1)
}

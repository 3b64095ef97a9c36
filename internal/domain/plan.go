package domain

import "time"

// TrialDesign identifies the interval-randomization strategy used to
// build a plan.
type TrialDesign string

const (
	// DesignRandomized draws both interval length and treatment
	// independently for every block, so treatments may repeat.
	DesignRandomized TrialDesign = "randomized"
	// DesignBinaryCrossover alternates strictly between two treatments
	// block by block.
	DesignBinaryCrossover TrialDesign = "binary_crossover"
)

// Plan is the full treatment sequence for a trial, one label per day.
type Plan []string

// Block is a contiguous run of the same treatment within a plan.
type Block struct {
	Treatment string
	Length    int
}

// Blocks splits the plan into its contiguous same-treatment runs, in order.
func (p Plan) Blocks() []Block {
	var blocks []Block
	for _, treatment := range p {
		if n := len(blocks); n > 0 && blocks[n-1].Treatment == treatment {
			blocks[n-1].Length++
			continue
		}
		blocks = append(blocks, Block{Treatment: treatment, Length: 1})
	}
	return blocks
}

// DatedItem pairs one calendar day with the treatment scheduled for it.
type DatedItem struct {
	Date      time.Time
	Treatment string
}

// DefaultTreatments returns the conventional two-arm treatment set used
// when a caller supplies none.
func DefaultTreatments() []string {
	return []string{"placebo", "treatment"}
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanBlocks(t *testing.T) {
	tests := []struct {
		name string
		plan Plan
		want []Block
	}{
		{
			name: "empty plan",
			plan: nil,
			want: nil,
		},
		{
			name: "single run",
			plan: Plan{"placebo", "placebo", "placebo"},
			want: []Block{{Treatment: "placebo", Length: 3}},
		},
		{
			name: "alternating runs",
			plan: Plan{"placebo", "treatment", "treatment", "placebo"},
			want: []Block{
				{Treatment: "placebo", Length: 1},
				{Treatment: "treatment", Length: 2},
				{Treatment: "placebo", Length: 1},
			},
		},
		{
			name: "repeated label across blocks collapses into one run",
			plan: Plan{"a", "a", "a", "a"},
			want: []Block{{Treatment: "a", Length: 4}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.plan.Blocks())
		})
	}
}

func TestDefaultTreatments(t *testing.T) {
	assert.Equal(t, []string{"placebo", "treatment"}, DefaultTreatments())
}

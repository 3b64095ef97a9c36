package formatter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/doseplan/internal/contract"
)

// ansiPattern matches ANSI escape sequences so assertions are
// terminal-independent.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestFormatPlanStats(t *testing.T) {
	stats := contract.PlanStats{
		Duration:        10,
		BlockCount:      3,
		MeanBlockDays:   3.3333,
		StdDevBlockDays: 0.4714,
		DaysPerTreatment: map[string]int{
			"treatment": 4,
			"placebo":   6,
		},
	}

	out := stripANSI(FormatPlanStats(stats))

	assert.Contains(t, out, "PLAN SUMMARY")
	assert.Contains(t, out, "10 days in 3 blocks")
	assert.Contains(t, out, "3.3 days")
	assert.Contains(t, out, "Treatment")

	// Treatments are listed alphabetically.
	placeboAt := strings.Index(out, "placebo")
	treatmentAt := strings.LastIndex(out, "treatment")
	require.GreaterOrEqual(t, placeboAt, 0)
	require.GreaterOrEqual(t, treatmentAt, 0)
	assert.Less(t, placeboAt, treatmentAt)
}

func TestFormatPlanStats_EmptyPlan(t *testing.T) {
	out := stripANSI(FormatPlanStats(contract.PlanStats{}))

	assert.Contains(t, out, "0 days in 0 blocks")
	assert.NotContains(t, out, "Block length")
}

func TestRenderTable(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"Treatment", "Days"},
		[][]string{
			{"placebo", "62"},
			{"treatment", "58"},
		},
	))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "Treatment"))
	assert.True(t, strings.HasPrefix(lines[2], "placebo"))
	assert.True(t, strings.HasPrefix(lines[3], "treatment"))
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, [][]string{{"x"}}))
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "01234567", stripANSI(TruncID("0123456789abcdef")))
	assert.Equal(t, "ab", stripANSI(TruncID("ab")))
}

package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/doseplan/internal/contract"
)

// FormatPlanStats renders the block-structure summary of a generated plan.
func FormatPlanStats(stats contract.PlanStats) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render("PLAN SUMMARY") + "\n")
	b.WriteString(fmt.Sprintf("%s %d days in %d blocks\n",
		StyleBold.Render("Length:"), stats.Duration, stats.BlockCount))
	if stats.BlockCount > 0 {
		b.WriteString(fmt.Sprintf("%s %.1f days %s\n",
			StyleBold.Render("Block length:"), stats.MeanBlockDays,
			Dim(fmt.Sprintf("(σ %.1f)", stats.StdDevBlockDays))))
	}

	if len(stats.DaysPerTreatment) > 0 {
		treatments := make([]string, 0, len(stats.DaysPerTreatment))
		for treatment := range stats.DaysPerTreatment {
			treatments = append(treatments, treatment)
		}
		sort.Strings(treatments)

		rows := make([][]string, 0, len(treatments))
		for _, treatment := range treatments {
			rows = append(rows, []string{
				StyleGreen.Render(treatment),
				fmt.Sprintf("%d", stats.DaysPerTreatment[treatment]),
			})
		}
		b.WriteString("\n")
		b.WriteString(RenderTable([]string{"Treatment", "Days"}, rows))
	}

	return strings.TrimRight(b.String(), "\n")
}

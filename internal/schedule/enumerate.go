package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/doseplan/internal/domain"
)

const dateLayout = "2006-01-02"

// ParseStartDate parses a required YYYY-MM-DD start date.
func ParseStartDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("start date: invalid date format %q (expected YYYY-MM-DD)", value)
	}
	return t, nil
}

// Enumerate renders the plan one entry per line: dated lines when useDate is
// true, 1-based ordinal lines otherwise. startDate is validated either way.
func Enumerate(plan domain.Plan, useDate bool, startDate string) (string, error) {
	start, err := ParseStartDate(startDate)
	if err != nil {
		return "", err
	}
	if !useDate {
		return EnumerateOrdinals(plan), nil
	}
	return enumerateFrom(plan, start), nil
}

// EnumerateOrdinals renders the plan as "<n>. <label>" lines, ordinals
// starting at 1.
func EnumerateOrdinals(plan domain.Plan) string {
	lines := make([]string, len(plan))
	for i, treatment := range plan {
		lines[i] = fmt.Sprintf("%d. %s", i+1, treatment)
	}
	return strings.Join(lines, "\n")
}

// EnumerateDated renders the plan as "YYYY-MM-DD: <label>" lines, assigning
// one consecutive day per entry starting at startDate. No trailing newline
// is appended.
func EnumerateDated(plan domain.Plan, startDate string) (string, error) {
	start, err := ParseStartDate(startDate)
	if err != nil {
		return "", err
	}
	return enumerateFrom(plan, start), nil
}

func enumerateFrom(plan domain.Plan, start time.Time) string {
	lines := make([]string, len(plan))
	for i, treatment := range plan {
		lines[i] = fmt.Sprintf("%s: %s", start.AddDate(0, 0, i).Format(dateLayout), treatment)
	}
	return strings.Join(lines, "\n")
}

package testutil

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// NewRNG returns a deterministic random source for tests.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// DatedText builds "YYYY-MM-DD: <label>" lines for consecutive days
// starting at startDate. It panics on a malformed start date since it is
// only used with literal test inputs.
func DatedText(startDate string, labels ...string) string {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		panic(fmt.Sprintf("testutil: bad start date %q: %v", startDate, err))
	}
	lines := make([]string, len(labels))
	for i, label := range labels {
		lines[i] = fmt.Sprintf("%s: %s", start.AddDate(0, 0, i).Format("2006-01-02"), label)
	}
	return strings.Join(lines, "\n")
}

package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/doseplan/internal/domain"
)

const (
	dayCellWidth   = 2
	valueCellWidth = 10
	daysPerRow     = 8
)

// gridRows are the fixed day-of-month spans of the pill-organizer layout.
// The last span is closed by the actual number of days in the month.
var gridRows = [4][2]int{{1, 8}, {9, 16}, {17, 24}, {25, 31}}

// ParseDatedLine splits a "YYYY-MM-DD: <label>" line on its first ": "
// separator into a dated item.
func ParseDatedLine(line string) (domain.DatedItem, error) {
	sep := strings.Index(line, ": ")
	if sep < 0 {
		return domain.DatedItem{}, fmt.Errorf("dated line %q: missing %q separator", line, ": ")
	}
	date, err := time.Parse(dateLayout, line[:sep])
	if err != nil {
		return domain.DatedItem{}, fmt.Errorf("dated line %q: invalid date %q (expected YYYY-MM-DD)", line, line[:sep])
	}
	return domain.DatedItem{Date: date, Treatment: line[sep+2:]}, nil
}

// ParseDatedText parses newline-separated dated lines. A single trailing
// newline is tolerated; any other malformed line is an input-contract
// violation.
func ParseDatedText(text string) ([]domain.DatedItem, error) {
	if text == "" {
		return nil, nil
	}
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	items := make([]domain.DatedItem, 0, len(lines))
	for _, line := range lines {
		item, err := ParseDatedLine(line)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// GroupByMonth splits items into runs sharing a calendar year-month key.
// Grouping is streaming, not a sort: a group breaks whenever the key
// changes, so a month appearing twice non-contiguously yields two groups.
func GroupByMonth(items []domain.DatedItem) [][]domain.DatedItem {
	var groups [][]domain.DatedItem
	for _, item := range items {
		key := item.Date.Format("2006-01")
		if n := len(groups); n > 0 && groups[n-1][0].Date.Format("2006-01") == key {
			groups[n-1] = append(groups[n-1], item)
			continue
		}
		groups = append(groups, []domain.DatedItem{item})
	}
	return groups
}

// Grid renders dated text ("YYYY-MM-DD: <label>" per line) as a
// month-by-month pill-organizer grid. Each month block is headed by its
// display name and laid out in 4 rows of up to 8 days; the last row is
// padded with blank cells so every month renders an equal-width block.
// Month blocks are joined by one blank line.
func Grid(datedText string) (string, error) {
	items, err := ParseDatedText(datedText)
	if err != nil {
		return "", err
	}
	groups := GroupByMonth(items)
	blocks := make([]string, 0, len(groups))
	for _, group := range groups {
		blocks = append(blocks, formatMonth(group))
	}
	return strings.Join(blocks, "\n\n"), nil
}

func formatMonth(group []domain.DatedItem) string {
	first := group[0].Date
	nDays := daysInMonth(first.Year(), first.Month())

	// Last write wins when a day appears more than once within a group.
	byDay := make(map[int]string, len(group))
	for _, item := range group {
		byDay[item.Date.Day()] = item.Treatment
	}

	rows := make([]string, 0, len(gridRows))
	for r, span := range gridRows {
		var dayCells, valueCells []string
		for day := span[0]; day <= span[1] && day <= nDays; day++ {
			dayCells = append(dayCells, fmt.Sprintf("%*d", dayCellWidth, day))
			valueCells = append(valueCells, fmt.Sprintf("%-*s", valueCellWidth, byDay[day]))
		}
		dates := strings.Join(dayCells, " ")
		values := strings.Join(valueCells, " ")

		if r == len(gridRows)-1 {
			missing := daysPerRow - len(dayCells)
			datePad := blankCells(dayCellWidth, missing)
			valuePad := blankCells(valueCellWidth, missing)
			rows = append(rows, fmt.Sprintf("%s %s  %s %s", dates, datePad, values, valuePad))
		} else {
			rows = append(rows, dates+"  "+values)
		}
	}

	return first.Format("January 2006") + "\n" + strings.Join(rows, "\n")
}

// blankCells returns n space-joined placeholder cells of the given width.
func blankCells(width, n int) string {
	cells := make([]string, n)
	for i := range cells {
		cells[i] = strings.Repeat(" ", width)
	}
	return strings.Join(cells, " ")
}

// daysInMonth returns the number of days in the given calendar month.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

package arrangement

import (
	"sort"
	"strings"
)

// sortLast is the sort key for slots with no parsed day or period.
const sortLast = 99

// SplitLines splits a raw arrangement text blob into trimmed, non-empty lines.
func SplitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// Merge combines the raw arrangement text blocks of all teachers on a
// teaching class into one canonical schedule. Co-teachers usually share the
// same blob, so lines are deduplicated as raw strings before parsing; feeding
// the same line twice yields the same output as feeding it once. The result
// is sorted by (day, first period), entries without a day or period last.
func Merge(blocks []string) []Slot {
	seen := map[string]bool{}
	var lines []string
	for _, block := range blocks {
		for _, line := range SplitLines(block) {
			if !seen[line] {
				seen[line] = true
				lines = append(lines, line)
			}
		}
	}

	slots := make([]Slot, 0, len(lines))
	for _, line := range lines {
		slots = append(slots, ParseLine(line))
	}

	sort.SliceStable(slots, func(i, j int) bool {
		di, dj := sortLast, sortLast
		if slots[i].Day != nil {
			di = *slots[i].Day
		}
		if slots[j].Day != nil {
			dj = *slots[j].Day
		}
		if di != dj {
			return di < dj
		}
		pi, pj := sortLast, sortLast
		if len(slots[i].Periods) > 0 {
			pi = slots[i].Periods[0]
		}
		if len(slots[j].Periods) > 0 {
			pj = slots[j].Periods[0]
		}
		return pi < pj
	})

	return slots
}

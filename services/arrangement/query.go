package arrangement

import "fmt"

// SlotQueryPatterns returns the SQL LIKE patterns matching arrangement text
// for one of the six timetable row groups the frontend uses. Sections 1-4
// cover the regular two-period pairs, section 5 the 9th-period evening start
// and section 6 the long evening block. Unknown day or section yields nil.
func SlotQueryPatterns(day, section int) []string {
	var dayText string
	for text, d := range dayMap {
		if d == day {
			dayText = text
			break
		}
	}
	if dayText == "" {
		return nil
	}

	switch section {
	case 1, 2, 3, 4:
		return []string{fmt.Sprintf("%%%s%d-%d%%", dayText, 2*section-1, 2*section)}
	case 5:
		return []string{fmt.Sprintf("%%%s9-%%", dayText)}
	case 6:
		return []string{
			fmt.Sprintf("%%%s10-11%%", dayText),
			fmt.Sprintf("%%%s10-12%%", dayText),
		}
	}
	return nil
}

package arrangement

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Slot represents one parsed arrangement line: when and where a teaching
// class meets, plus the raw instructor fragment that preceded the day marker.
// Every field besides Text is independently optional — upstream arrangement
// text is free-form and partially malformed lines are expected, so a failed
// match produces a nil field, never an error.
type Slot struct {
	Text           string  `json:"arrangementText"`
	Day            *int    `json:"occupyDay"`
	Periods        []int   `json:"occupyTime"`
	Weeks          []int   `json:"occupyWeek"`
	Room           *string `json:"occupyRoom"`
	TeacherAndCode *string `json:"teacherAndCode"`
}

// dayMap maps the Chinese weekday token to 1..7, Monday first.
var dayMap = map[string]int{
	"星期一": 1,
	"星期二": 2,
	"星期三": 3,
	"星期四": 4,
	"星期五": 5,
	"星期六": 6,
	"星期日": 7,
}

var (
	dayRegex    = regexp.MustCompile(`^(星期[一二三四五六日])`)
	periodRegex = regexp.MustCompile(`^星期[一二三四五六日]([0-9]{1,2}-[0-9]{1,2}节)`)
	weekRegex   = regexp.MustCompile(`\[([^\]]+)\]`)
)

// ParseLine parses a single arrangement line such as
//
//	"张三(12345) 星期一3-4节 [1-16周] 北楼101"
//
// into a Slot. Empty or whitespace-only input yields a zero Slot with all
// optional fields nil. The function is pure: no I/O, deterministic.
func ParseLine(text string) Slot {
	if strings.TrimSpace(text) == "" {
		return Slot{}
	}

	// Everything before the first " 星期" is the teacher-and-code fragment.
	var teacherAndCode *string
	rest := strings.TrimSpace(text)
	if idx := strings.Index(text, " 星期"); idx >= 0 {
		if tc := strings.TrimSpace(text[:idx]); tc != "" {
			teacherAndCode = &tc
		}
		rest = strings.TrimSpace(text[idx+1:])
	}

	var day *int
	if m := dayRegex.FindStringSubmatch(rest); m != nil {
		if d, ok := dayMap[m[1]]; ok {
			day = &d
		}
	}

	var periods []int
	if m := periodRegex.FindStringSubmatch(rest); m != nil {
		periods = periodTextToRange(m[1])
	}

	var weeks []int
	if m := weekRegex.FindStringSubmatch(rest); m != nil {
		weeks = weekTextToList(m[1])
	}

	// Room is whatever follows the first "] ".
	var room *string
	if idx := strings.Index(rest, "] "); idx >= 0 {
		if r := strings.TrimSpace(rest[idx+2:]); r != "" {
			room = &r
		}
	}

	return Slot{
		Text:           rest,
		Day:            day,
		Periods:        periods,
		Weeks:          weeks,
		Room:           room,
		TeacherAndCode: teacherAndCode,
	}
}

// periodTextToRange expands "3-4节" into [3 4]. Out-of-order or non-numeric
// bounds yield nil.
func periodTextToRange(text string) []int {
	raw := strings.TrimSuffix(text, "节")
	bounds := strings.SplitN(raw, "-", 2)
	if len(bounds) != 2 {
		return nil
	}
	start, err1 := strconv.Atoi(bounds[0])
	end, err2 := strconv.Atoi(bounds[1])
	if err1 != nil || err2 != nil || start <= 0 || end < start {
		return nil
	}
	out := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		out = append(out, i)
	}
	return out
}

// weekTextToList expands the bracketed week clause into a sorted, deduplicated
// week list. Clauses are space separated and may carry a 单 (odd) or 双 (even)
// parity marker, e.g. "1-15周(单) 16" or "2-14周(双) 15-16".
func weekTextToList(text string) []int {
	seen := map[int]bool{}
	var out []int
	push := func(n int) {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}

	for _, part := range strings.Fields(text) {
		part = strings.ReplaceAll(part, "周", "")

		parity := 0 // 1 odd, 2 even
		if strings.Contains(part, "单") {
			parity = 1
		} else if strings.Contains(part, "双") {
			parity = 2
		}

		cleaned := strings.NewReplacer("(", "", ")", "", "（", "", "）", "", "单", "", "双", "").Replace(part)
		cleaned = strings.TrimSpace(cleaned)
		if cleaned == "" {
			continue
		}

		if !strings.Contains(cleaned, "-") {
			if n, err := strconv.Atoi(cleaned); err == nil {
				push(n)
			}
			continue
		}

		bounds := strings.SplitN(cleaned, "-", 2)
		a, err1 := strconv.Atoi(bounds[0])
		b, err2 := strconv.Atoi(bounds[1])
		if err1 != nil || err2 != nil || a <= 0 || b < a {
			continue
		}

		step := 1
		if parity != 0 {
			step = 2
			// Bump the start onto the requested parity.
			if parity == 1 && a%2 == 0 {
				a++
			}
			if parity == 2 && a%2 == 1 {
				a++
			}
		}
		for i := a; i <= b; i += step {
			push(i)
		}
	}

	if out == nil {
		return nil
	}
	sort.Ints(out)
	return out
}

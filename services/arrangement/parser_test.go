package arrangement

import (
	"reflect"
	"testing"
)

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func TestParseLineFull(t *testing.T) {
	slot := ParseLine("张三(12345) 星期一3-4节 [1-16周] 北楼101")

	if slot.TeacherAndCode == nil || *slot.TeacherAndCode != "张三(12345)" {
		t.Errorf("TeacherAndCode = %v, want 张三(12345)", slot.TeacherAndCode)
	}
	if slot.Day == nil || *slot.Day != 1 {
		t.Errorf("Day = %v, want 1", slot.Day)
	}
	if !reflect.DeepEqual(slot.Periods, []int{3, 4}) {
		t.Errorf("Periods = %v, want [3 4]", slot.Periods)
	}
	wantWeeks := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	if !reflect.DeepEqual(slot.Weeks, wantWeeks) {
		t.Errorf("Weeks = %v, want %v", slot.Weeks, wantWeeks)
	}
	if slot.Room == nil || *slot.Room != "北楼101" {
		t.Errorf("Room = %v, want 北楼101", slot.Room)
	}
	if slot.Text != "星期一3-4节 [1-16周] 北楼101" {
		t.Errorf("Text = %q", slot.Text)
	}
}

func TestParseLineTable(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		day     *int
		periods []int
		weeks   []int
		room    *string
		teacher *string
	}{
		{
			name:  "empty input",
			input: "",
		},
		{
			name:  "whitespace only",
			input: "   \t ",
		},
		{
			name:    "no day marker keeps whole text as rest",
			input:   "some free text",
			day:     nil,
			periods: nil,
		},
		{
			name:    "sunday maps to 7",
			input:   "李四(999) 星期日1-2节 [1-8周] 南楼202",
			day:     intPtr(7),
			periods: []int{1, 2},
			weeks:   []int{1, 2, 3, 4, 5, 6, 7, 8},
			room:    strPtr("南楼202"),
			teacher: strPtr("李四(999)"),
		},
		{
			name:    "odd parity weeks",
			input:   "王五(1) 星期三5-6节 [1-15周(单)] A201",
			day:     intPtr(3),
			periods: []int{5, 6},
			weeks:   []int{1, 3, 5, 7, 9, 11, 13, 15},
			room:    strPtr("A201"),
			teacher: strPtr("王五(1)"),
		},
		{
			name:    "even parity adjusts odd start",
			input:   "王五(1) 星期三5-6节 [1-14周(双)] A201",
			day:     intPtr(3),
			periods: []int{5, 6},
			weeks:   []int{2, 4, 6, 8, 10, 12, 14},
			room:    strPtr("A201"),
			teacher: strPtr("王五(1)"),
		},
		{
			name:    "mixed clauses union dedup sorted",
			input:   "张三(2) 星期五9-11节 [2-14周(双) 15-16] B404",
			day:     intPtr(5),
			periods: []int{9, 10, 11},
			weeks:   []int{2, 4, 6, 8, 10, 12, 14, 15, 16},
			room:    strPtr("B404"),
			teacher: strPtr("张三(2)"),
		},
		{
			name:    "single week number clause",
			input:   "张三(2) 星期二7-8节 [3周] C1",
			day:     intPtr(2),
			periods: []int{7, 8},
			weeks:   []int{3},
			room:    strPtr("C1"),
			teacher: strPtr("张三(2)"),
		},
		{
			name:    "reversed period bounds yield nil periods",
			input:   "张三(2) 星期二8-7节 [1-2周] C1",
			day:     intPtr(2),
			periods: nil,
			weeks:   []int{1, 2},
			room:    strPtr("C1"),
			teacher: strPtr("张三(2)"),
		},
		{
			name:    "missing room after bracket",
			input:   "张三(2) 星期二7-8节 [1-2周]",
			day:     intPtr(2),
			periods: []int{7, 8},
			weeks:   []int{1, 2},
			room:    nil,
			teacher: strPtr("张三(2)"),
		},
		{
			name:    "no teacher fragment",
			input:   " 星期四1-2节 [1-4周] D5",
			day:     intPtr(4),
			periods: []int{1, 2},
			weeks:   []int{1, 2, 3, 4},
			room:    strPtr("D5"),
			teacher: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := ParseLine(tt.input)
			if !equalIntPtr(slot.Day, tt.day) {
				t.Errorf("Day = %v, want %v", fmtIntPtr(slot.Day), fmtIntPtr(tt.day))
			}
			if !reflect.DeepEqual(slot.Periods, tt.periods) {
				t.Errorf("Periods = %v, want %v", slot.Periods, tt.periods)
			}
			if !reflect.DeepEqual(slot.Weeks, tt.weeks) {
				t.Errorf("Weeks = %v, want %v", slot.Weeks, tt.weeks)
			}
			if !equalStrPtr(slot.Room, tt.room) {
				t.Errorf("Room = %v, want %v", fmtStrPtr(slot.Room), fmtStrPtr(tt.room))
			}
			if !equalStrPtr(slot.TeacherAndCode, tt.teacher) {
				t.Errorf("TeacherAndCode = %v, want %v", fmtStrPtr(slot.TeacherAndCode), fmtStrPtr(tt.teacher))
			}
		})
	}
}

// Period ranges of well-formed lines are contiguous and strictly increasing.
func TestParseLinePeriodRangeProperties(t *testing.T) {
	inputs := []struct {
		text string
		want int
	}{
		{"星期一1-2节 [1周]", 2},
		{"星期二3-6节 [1周]", 4},
		{"星期三9-12节 [1周]", 4},
		{"星期四5-5节 [1周]", 1},
	}
	for _, in := range inputs {
		slot := ParseLine(in.text)
		if len(slot.Periods) != in.want {
			t.Errorf("%q: len(Periods) = %d, want %d", in.text, len(slot.Periods), in.want)
			continue
		}
		for i := 1; i < len(slot.Periods); i++ {
			if slot.Periods[i] != slot.Periods[i-1]+1 {
				t.Errorf("%q: Periods not contiguous: %v", in.text, slot.Periods)
			}
		}
	}
}

// Parity-marked week clauses only produce weeks of the stated parity,
// sorted and deduplicated.
func TestParseLineWeekParityProperties(t *testing.T) {
	odd := ParseLine("星期一1-2节 [3-16周(单)]")
	for _, w := range odd.Weeks {
		if w%2 != 1 {
			t.Errorf("odd clause produced even week %d in %v", w, odd.Weeks)
		}
	}

	even := ParseLine("星期一1-2节 [3-16周(双)]")
	for _, w := range even.Weeks {
		if w%2 != 0 {
			t.Errorf("even clause produced odd week %d in %v", w, even.Weeks)
		}
	}

	for _, weeks := range [][]int{odd.Weeks, even.Weeks} {
		for i := 1; i < len(weeks); i++ {
			if weeks[i] <= weeks[i-1] {
				t.Errorf("weeks not strictly increasing: %v", weeks)
			}
		}
	}
}

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalStrPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func fmtIntPtr(p *int) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func fmtStrPtr(p *string) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

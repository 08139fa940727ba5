package arrangement

import (
	"reflect"
	"testing"
)

func TestSplitLines(t *testing.T) {
	got := SplitLines("  line one \n\n\tline two\n \n")
	want := []string{"line one", "line two"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitLines = %v, want %v", got, want)
	}
	if SplitLines("") != nil {
		t.Errorf("SplitLines(\"\") should be nil")
	}
}

func TestMergeDeduplicatesSharedLines(t *testing.T) {
	line := "张三(1) 星期一3-4节 [1-16周] 北楼101"

	// Two co-teachers carrying the identical blob must not double-count.
	once := Merge([]string{line})
	twice := Merge([]string{line, line})
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Merge not idempotent under duplication:\nonce  = %+v\ntwice = %+v", once, twice)
	}
	if len(once) != 1 {
		t.Fatalf("len = %d, want 1", len(once))
	}

	// Duplication within one block behaves the same.
	within := Merge([]string{line + "\n" + line})
	if !reflect.DeepEqual(once, within) {
		t.Errorf("Merge dedup differs for intra-block duplicates")
	}
}

func TestMergeSortsByDayThenPeriod(t *testing.T) {
	blocks := []string{
		"a 星期三1-2节 [1周] R1\n" +
			"b 星期一5-6节 [1周] R2\n" +
			"c 星期一3-4节 [1周] R3",
		"d 星期二9-11节 [1周] R4",
	}
	slots := Merge(blocks)
	if len(slots) != 4 {
		t.Fatalf("len = %d, want 4", len(slots))
	}

	type key struct{ day, period int }
	var got []key
	for _, s := range slots {
		got = append(got, key{*s.Day, s.Periods[0]})
	}
	want := []key{{1, 3}, {1, 5}, {2, 9}, {3, 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sort order = %v, want %v", got, want)
	}
}

func TestMergeUnparsedLinesSortLast(t *testing.T) {
	slots := Merge([]string{
		"备注：具体安排另行通知\n" +
			"张三(1) 星期五1-2节 [1-4周] 北108",
	})
	if len(slots) != 2 {
		t.Fatalf("len = %d, want 2", len(slots))
	}
	if slots[0].Day == nil || *slots[0].Day != 5 {
		t.Errorf("parsed slot should sort first, got %+v", slots[0])
	}
	if slots[1].Day != nil {
		t.Errorf("day-less slot should sort last, got %+v", slots[1])
	}
}

func TestSlotQueryPatterns(t *testing.T) {
	tests := []struct {
		day, section int
		want         []string
	}{
		{1, 1, []string{"%星期一1-2%"}},
		{2, 3, []string{"%星期二5-6%"}},
		{3, 4, []string{"%星期三7-8%"}},
		{7, 5, []string{"%星期日9-%"}},
		{5, 6, []string{"%星期五10-11%", "%星期五10-12%"}},
		{0, 1, nil},
		{8, 1, nil},
		{1, 0, nil},
		{1, 7, nil},
	}
	for _, tt := range tests {
		got := SlotQueryPatterns(tt.day, tt.section)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SlotQueryPatterns(%d, %d) = %v, want %v", tt.day, tt.section, got, tt.want)
		}
	}
}

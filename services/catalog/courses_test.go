package catalog

import (
	"testing"

	"github.com/oolongtea/coursehub-sync/model"
	"github.com/oolongtea/coursehub-sync/services/arrangement"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestNewClassViewExpandsSharedArrangement(t *testing.T) {
	text := "星期一1-2节[1-16周] A101 张三(12345)\n星期三3-4节[2-16(双)周] B202 李四(67890)"
	detail := model.CourseDetail{
		ID:         42,
		CourseCode: strPtr("CS101"),
		Teachers: []model.ClassTeacher{
			{ID: 1, CourseDetailID: 42, TeacherName: strPtr("张三"), ArrangeText: text},
			{ID: 2, CourseDetailID: 42, TeacherName: strPtr("李四"), ArrangeText: text},
		},
	}

	view := newClassView(detail)

	if len(view.TeacherViews) != 2 {
		t.Fatalf("len(TeacherViews) = %d, want 2", len(view.TeacherViews))
	}
	if view.Teachers != nil {
		t.Error("raw teacher rows should be cleared from the view")
	}
	if len(view.Slots) != 2 {
		t.Fatalf("len(Slots) = %d, want 2 (shared lines deduplicated)", len(view.Slots))
	}
	if view.Slots[0].Day == nil || *view.Slots[0].Day != 1 {
		t.Errorf("first slot day = %v, want 1", view.Slots[0].Day)
	}
	if view.Slots[1].Day == nil || *view.Slots[1].Day != 3 {
		t.Errorf("second slot day = %v, want 3", view.Slots[1].Day)
	}
}

func TestNewClassViewNoTeachers(t *testing.T) {
	view := newClassView(model.CourseDetail{ID: 7})
	if view.Slots == nil || len(view.Slots) != 0 {
		t.Errorf("Slots = %v, want empty non-nil slice", view.Slots)
	}
	if len(view.TeacherViews) != 0 {
		t.Errorf("TeacherViews = %v, want empty", view.TeacherViews)
	}
}

func TestSlotsCover(t *testing.T) {
	slots := []arrangement.Slot{
		{Day: intPtr(2), Periods: []int{3, 4}},
		{Day: intPtr(5), Periods: []int{10, 11, 12}},
		{Day: nil, Periods: []int{1, 2}},
	}

	cases := []struct {
		name    string
		day     int
		section int
		want    bool
	}{
		{"matching day and section", 2, 2, true},
		{"right day wrong section", 2, 1, false},
		{"evening section spans three periods", 5, 6, true},
		{"unparsed slot never matches", 3, 1, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := slotsCover(slots, tc.day, tc.section); got != tc.want {
				t.Errorf("slotsCover(day=%d, section=%d) = %v, want %v", tc.day, tc.section, got, tc.want)
			}
		})
	}
}

package sync

import "testing"

func TestComputeNewCode(t *testing.T) {
	cases := []struct {
		name          string
		code          string
		courseCode    string
		newCourseCode string
		wantCourse    *string
		wantClass     *string
	}{
		{
			name:          "suffix carried over",
			code:          "CS10102",
			courseCode:    "CS101",
			newCourseCode: "CS900",
			wantCourse:    strPtr("CS900"),
			wantClass:     strPtr("CS90002"),
		},
		{
			name:          "class code not prefixed by course code",
			code:          "MA10102",
			courseCode:    "CS101",
			newCourseCode: "CS900",
			wantCourse:    strPtr("CS900"),
			wantClass:     nil,
		},
		{
			name:          "no rename upstream",
			code:          "CS10102",
			courseCode:    "CS101",
			newCourseCode: "",
			wantCourse:    nil,
			wantClass:     nil,
		},
		{
			name:          "whitespace-only rename",
			code:          "CS10102",
			courseCode:    "CS101",
			newCourseCode: "   ",
			wantCourse:    nil,
			wantClass:     nil,
		},
		{
			name:          "empty class code",
			code:          "",
			courseCode:    "CS101",
			newCourseCode: "CS900",
			wantCourse:    strPtr("CS900"),
			wantClass:     nil,
		},
		{
			name:          "class code equals course code",
			code:          "CS101",
			courseCode:    "CS101",
			newCourseCode: "CS900",
			wantCourse:    strPtr("CS900"),
			wantClass:     strPtr("CS90001"),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gotCourse, gotClass := computeNewCode(tc.code, tc.courseCode, tc.newCourseCode)
			if !equalStrPtr(gotCourse, tc.wantCourse) {
				t.Errorf("newCourseCode = %s, want %s", fmtStrPtr(gotCourse), fmtStrPtr(tc.wantCourse))
			}
			if !equalStrPtr(gotClass, tc.wantClass) {
				t.Errorf("newCode = %s, want %s", fmtStrPtr(gotClass), fmtStrPtr(tc.wantClass))
			}
		})
	}
}

func TestStrOrNil(t *testing.T) {
	if got := strOrNil("  "); got != nil {
		t.Errorf("strOrNil(blank) = %q, want nil", *got)
	}
	if got := strOrNil(" x "); got == nil || *got != "x" {
		t.Errorf("strOrNil(\" x \") = %s, want \"x\"", fmtStrPtr(got))
	}
}

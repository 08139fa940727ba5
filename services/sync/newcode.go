package sync

import "strings"

// computeNewCode derives the renamed teaching-class code from the renamed
// course code plus the trailing two characters of the original class code.
// The suffix rule is an upstream convention replicated as-is: it only applies
// when the class code extends the course code and is at least two characters
// long.
func computeNewCode(code, courseCode, newCourseCode string) (*string, *string) {
	newCourseCode = strings.TrimSpace(newCourseCode)
	if newCourseCode == "" {
		return nil, nil
	}

	code = strings.TrimSpace(code)
	courseCode = strings.TrimSpace(courseCode)
	if code == "" || courseCode == "" || !strings.HasPrefix(code, courseCode) || len(code) < 2 {
		return &newCourseCode, nil
	}

	newCode := newCourseCode + code[len(code)-2:]
	return &newCourseCode, &newCode
}

// strOrNil trims s and coalesces the empty result to nil.
func strOrNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// deref returns the pointed-to string, or "" for nil.
func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

package sync

import (
	"regexp"
	"strconv"
	"strings"
)

// MajorInfo is the best-effort parse of an upstream major descriptor.
type MajorInfo struct {
	Grade *int
	Code  *string
	Name  string
}

// majorCodeRegex captures the leading major code inside the first
// parentheses, e.g. "2025(03074 土木工程(国际班))" -> "03074".
var majorCodeRegex = regexp.MustCompile(`\(([0-9A-Za-z]{3,16})\s`)

// ParseMajorString extracts (grade, code, name) from the compact major
// descriptor the upstream system emits. The encoding has no formal grammar:
// grade is the leading 4-digit year when present, code the first
// parenthesized alphanumeric token followed by whitespace. The trimmed input
// itself is the name and serves as the natural key. Mismatches yield nil
// fields, never an error.
func ParseMajorString(s string) MajorInfo {
	name := strings.TrimSpace(s)

	var grade *int
	if len(name) >= 4 {
		if g, err := strconv.Atoi(name[:4]); err == nil && isFourDigits(name[:4]) {
			grade = &g
		}
	}

	var code *string
	if m := majorCodeRegex.FindStringSubmatch(name); m != nil {
		code = &m[1]
	}

	return MajorInfo{Grade: grade, Code: code, Name: name}
}

func isFourDigits(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

package heuristic

import (
	"regexp"
	"strings"

	"github.com/artem13815/resume-profiler/pkg/profile"
)

var (
	yearRangeRe = regexp.MustCompile(`(?i)(?:19|20)\d{2}\s*[-–—]\s*(?:(?:19|20)\d{2}|present|current)`)
	decimalRe   = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// degreeWords — словарь, по которому строка распознаётся как начало записи
// об образовании.
var degreeWords = []string{
	"bachelor", "master", "phd", "ph.d", "doctorate", "degree", "diploma",
	"b.tech", "m.tech", "b.sc", "m.sc", "bsc", "msc", "mba", "b.s.", "m.s.",
	"b.a.", "m.a.", "b.e.", "associate",
}

func isDegreeLine(line string) bool {
	return containsAny(strings.ToLower(line), degreeWords)
}

func isYearRangeLine(line string) bool {
	return yearRangeRe.MatchString(line) || dateRangeRe.MatchString(line)
}

// extractEducation: строка со словарём степеней открывает запись; следующая за
// ней строка без дат — учебное заведение; строка с диапазоном лет — год;
// строка с "cgpa" отдаёт первое десятичное число в GPA.
func extractEducation(lines []string) []profile.EducationEntry {
	var entries []profile.EducationEntry
	var cur *profile.EducationEntry
	expectInstitution := false

	flush := func() {
		if cur != nil && cur.Degree != "" {
			entries = append(entries, *cur)
		}
		cur = nil
		expectInstitution = false
	}

	for _, line := range lines {
		if isDegreeLine(line) {
			flush()
			cur = &profile.EducationEntry{Degree: strings.TrimSpace(line)}
			expectInstitution = true
			continue
		}
		if cur == nil {
			continue
		}
		lower := strings.ToLower(line)
		if strings.Contains(lower, "cgpa") {
			if num := decimalRe.FindString(line); num != "" {
				cur.GPA = num
			}
			expectInstitution = false
			continue
		}
		if isYearRangeLine(line) {
			cur.Year = strings.TrimSpace(line)
			expectInstitution = false
			continue
		}
		if expectInstitution {
			cur.Institution = strings.TrimSpace(line)
			expectInstitution = false
		}
	}
	flush()
	return entries
}

package heuristic

import (
	"strings"

	"github.com/artem13815/resume-profiler/pkg/profile"
)

// Строки проектов делятся тире (en/em dash), а не '|'. Строки с '|' в буфере
// проектов принадлежат записям формата Experience и отбрасываются.
var projectDashes = []string{"–", "—"}

// creationVerbs отсекают ложные продолжения: строка без буллета попадает в
// описание проекта только если упоминает стек или глагол создания.
var creationVerbs = []string{"tech", "stack", "built", "using", "created", "implemented", "developed", "designed"}

func splitProjectTitle(line string) (parts []string, ok bool) {
	for _, d := range projectDashes {
		if strings.Contains(line, d) {
			raw := strings.Split(line, d)
			for _, p := range raw {
				p = strings.TrimSpace(p)
				if p != "" {
					parts = append(parts, p)
				}
			}
			return parts, len(parts) > 0
		}
	}
	return nil, false
}

func isNewProjectLine(line string) bool {
	if strings.Contains(line, "|") || isBulletLine(line) {
		return false
	}
	_, ok := splitProjectTitle(line)
	return ok
}

// extractProjects: структурно повторяет extractExperience, с тире в роли
// разделителя заголовка и отдельным захватом live link.
func extractProjects(lines []string) []profile.ProjectEntry {
	var entries []profile.ProjectEntry
	var cur *profile.ProjectEntry

	flush := func() {
		if cur != nil && cur.Name != "" {
			entries = append(entries, *cur)
		}
		cur = nil
	}

	for _, line := range lines {
		if isNewProjectLine(line) {
			flush()
			parts, _ := splitProjectTitle(line)
			cur = &profile.ProjectEntry{Name: parts[0]}
			for _, p := range parts[1:] {
				switch {
				case monthYearRe.MatchString(p) || yearRangeRe.MatchString(p):
					// тире заголовка режет и сам диапазон дат; склеиваем обратно
					if cur.Duration == "" {
						cur.Duration = p
					} else {
						cur.Duration += " – " + p
					}
				case cur.Role == "":
					cur.Role = p
				}
			}
			continue
		}
		if cur == nil {
			continue
		}
		lower := strings.ToLower(line)
		if strings.Contains(lower, "live link") {
			if url := urlRe.FindString(line); url != "" {
				cur.LiveLink = url
			}
			continue
		}
		if isBulletLine(line) {
			cur.Description = append(cur.Description, stripBullet(line))
			continue
		}
		if techs, ok := techListLine(line); ok {
			cur.Technologies = append(cur.Technologies, techs...)
			continue
		}
		if containsAny(lower, creationVerbs) {
			cur.Description = append(cur.Description, line)
		}
	}
	flush()
	return entries
}

func containsAny(lower string, subs []string) bool {
	for _, s := range subs {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

package heuristic

import (
	"regexp"
	"strings"

	"github.com/artem13815/resume-profiler/pkg/profile"
)

const monthPat = `(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}`

// dateRangeRe — "месяц год – месяц год|present|current". Используется и для
// отделения хвоста с датами от названия компании, и для секции образования.
var dateRangeRe = regexp.MustCompile(`(?i)` + monthPat + `\s*[–—-]\s*(?:` + monthPat + `|present|current)`)

var bulletPrefixes = []string{"•", "-", "*"}

func isBulletLine(line string) bool {
	for _, p := range bulletPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

func stripBullet(line string) string {
	for _, p := range bulletPrefixes {
		if strings.HasPrefix(line, p) {
			return strings.TrimSpace(strings.TrimPrefix(line, p))
		}
	}
	return strings.TrimSpace(line)
}

// splitCompanyAndDate отделяет компанию от диапазона дат в хвосте строки.
// Если диапазон не распознан, весь остаток становится компанией, а duration
// остаётся пустым — фолбэк заведомо lossy, сохранён для совместимости.
func splitCompanyAndDate(s string) (company, duration string) {
	s = strings.TrimSpace(s)
	if loc := dateRangeRe.FindStringIndex(s); loc != nil {
		return strings.TrimSpace(s[:loc[0]]), strings.TrimSpace(s[loc[0]:loc[1]])
	}
	return s, ""
}

func isNewExperienceLine(line string) bool {
	return strings.Contains(line, "|") && !isBulletLine(line)
}

// extractExperience собирает записи опыта из буфера секции. Новая запись
// начинается со строки с '|' (позиция | компания и даты); буллеты и длинные
// строки-продолжения копятся в responsibilities открытой записи.
func extractExperience(lines []string) []profile.ExperienceEntry {
	var entries []profile.ExperienceEntry
	var cur *profile.ExperienceEntry

	flush := func() {
		if cur != nil && cur.Position != "" {
			entries = append(entries, *cur)
		}
		cur = nil
	}

	for _, line := range lines {
		if isNewExperienceLine(line) {
			flush()
			parts := strings.SplitN(line, "|", 2)
			company, duration := splitCompanyAndDate(parts[1])
			cur = &profile.ExperienceEntry{
				Position: strings.TrimSpace(parts[0]),
				Company:  company,
				Duration: duration,
			}
			continue
		}
		if cur == nil {
			continue
		}
		if isBulletLine(line) {
			cur.Responsibilities = append(cur.Responsibilities, stripBullet(line))
			continue
		}
		if techs, ok := techListLine(line); ok {
			cur.Technologies = append(cur.Technologies, techs...)
			continue
		}
		// heuristic continuation: long non-bullet lines under an open entry
		if len(line) >= 10 && !IsHeaderLine(line) {
			cur.Responsibilities = append(cur.Responsibilities, line)
		}
	}
	flush()
	return entries
}

// techListLine распознаёт строку вида "Technologies: Go, Postgres" и
// возвращает список технологий.
func techListLine(line string) ([]string, bool) {
	lower := strings.ToLower(line)
	if !strings.HasPrefix(lower, "technologies") && !strings.HasPrefix(lower, "tech stack") {
		return nil, false
	}
	i := strings.Index(line, ":")
	if i < 0 {
		return nil, false
	}
	items := splitSkillList(line[i+1:])
	if len(items) == 0 {
		return nil, false
	}
	return items, true
}

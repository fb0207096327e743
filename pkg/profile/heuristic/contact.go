package heuristic

import (
	"regexp"
	"strings"

	"github.com/artem13815/resume-profiler/pkg/profile"
)

var (
	nameRe    = regexp.MustCompile(`^[A-Za-z\s]{2,50}$`)
	emailRe   = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRe   = regexp.MustCompile(`(\+\d{1,3}[\s.-]?)?(\(?\d{3}\)?[\s.-]?)?\d{3}[\s.-]?\d{4}`)
	urlRe     = regexp.MustCompile(`https?://[^\s)>\]]+`)
	cityPair  = regexp.MustCompile(`[A-Za-z]+,\s*[A-Za-z]+`)
	upperLine = regexp.MustCompile(`^[A-Z\s]+$`)
)

// extractName: первая непустая строка документа, если она похожа на имя
// (только буквы/пробелы, не длиннее четырёх слов).
func extractName(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	first := lines[0]
	if !nameRe.MatchString(first) {
		return ""
	}
	if len(strings.Fields(first)) > 4 {
		return ""
	}
	return strings.TrimSpace(first)
}

func extractEmail(text string) string {
	return emailRe.FindString(text)
}

func extractPhone(text string) string {
	return strings.TrimSpace(phoneRe.FindString(text))
}

// extractAddress ищет в первых пяти строках фрагмент с запятой не длиннее
// четырёх слов, без '@' и '+'; иначе — общий паттерн "слово, слово" по всему тексту.
func extractAddress(lines []string, text string) string {
	limit := len(lines)
	if limit > 5 {
		limit = 5
	}
	for _, line := range lines[:limit] {
		if !strings.Contains(line, ",") {
			continue
		}
		if strings.ContainsAny(line, "@+") {
			continue
		}
		if len(strings.Fields(line)) > 4 {
			continue
		}
		return strings.TrimSpace(line)
	}
	return cityPair.FindString(text)
}

const (
	linkedinRoot = "https://linkedin.com"
	githubRoot   = "https://github.com"
)

// extractLinks: явный URL провайдера предпочтителен; упоминание провайдера без
// ссылки даёт каноничный корневой URL; portfolio дополнительно срабатывает на
// ключевые слова с URL в той же строке, иначе плейсхолдер "#".
func extractLinks(lines []string) profile.Links {
	var out profile.Links
	for _, line := range lines {
		lower := strings.ToLower(line)
		url := urlRe.FindString(line)

		if out.LinkedIn == nil && strings.Contains(lower, "linkedin") {
			v := linkedinRoot
			if url != "" && strings.Contains(strings.ToLower(url), "linkedin.com") {
				v = url
			}
			out.LinkedIn = &v
		}
		if out.GitHub == nil && strings.Contains(lower, "github") {
			v := githubRoot
			if url != "" && strings.Contains(strings.ToLower(url), "github.com") {
				v = url
			}
			out.GitHub = &v
		}
		if out.Portfolio == nil &&
			(strings.Contains(lower, "portfolio") || strings.Contains(lower, "website") || strings.Contains(lower, "personal site")) {
			v := "#"
			if url != "" {
				v = url
			}
			out.Portfolio = &v
		}
	}
	return out
}

// extractSummary склеивает содержимое секции summary, пропуская строки-категории
// и чисто-прописные разделители. Без явной секции действует фолбэк: первая
// строка после контактного блока длиннее 30 символов, не заголовок и похожая
// на формулировку роли, трактуется как однострочное summary.
func extractSummary(summaryLines, allLines []string) string {
	var parts []string
	for _, line := range summaryLines {
		if startsWithCategoryWord(line) {
			continue
		}
		if upperLine.MatchString(line) && len(strings.Fields(line)) <= 3 {
			continue
		}
		parts = append(parts, line)
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	return inferSummary(allLines)
}

func inferSummary(lines []string) string {
	contactAt := -1
	for i, line := range lines {
		lower := strings.ToLower(line)
		if emailRe.MatchString(line) || phoneRe.MatchString(line) ||
			strings.Contains(lower, "linkedin") || strings.Contains(lower, "github") {
			contactAt = i
			break
		}
	}
	if contactAt < 0 {
		return ""
	}
	for _, line := range lines[contactAt+1:] {
		if IsHeaderLine(line) {
			continue
		}
		if len(line) <= 30 {
			continue
		}
		lower := strings.ToLower(line)
		if strings.Contains(lower, "engineer") || strings.Contains(lower, "developer") || strings.Contains(lower, "experience") {
			return line
		}
	}
	return ""
}

func startsWithCategoryWord(line string) bool {
	lower := strings.ToLower(line)
	for _, prefix := range categoryPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

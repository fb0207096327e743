package nlp

import (
	"regexp"
	"strings"
)

var (
	nonWord    = regexp.MustCompile(`[^\p{L}\p{N}]+`)
	multiSpace = regexp.MustCompile(`\s+`)
)

// Normalize приводит строку к нижнему регистру и заменяет все "не-слова" на пробелы.
// Достаточно для словарных матчей по тексту резюме.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = nonWord.ReplaceAllString(s, " ")
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// ContainsPhrase проверяет наличие фразы (уже нормализованной) как целых слов.
// Пример: "go" найдётся в " ... go ..." но не внутри "golang".
func ContainsPhrase(normalizedText, normalizedPhrase string) bool {
	if normalizedPhrase == "" {
		return false
	}
	// ensure word boundaries by padding with spaces
	hay := " " + normalizedText + " "
	needle := " " + normalizedPhrase + " "
	return strings.Contains(hay, needle)
}

// CollapseLines разбивает сырой текст на обрезанные непустые строки,
// сохраняя порядок. Общая подготовка входа для сегментации.
func CollapseLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

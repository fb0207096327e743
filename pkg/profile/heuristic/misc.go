package heuristic

import (
	"strings"

	"github.com/artem13815/resume-profiler/pkg/nlp"
	"github.com/artem13815/resume-profiler/pkg/profile"
)

var certKeywords = []string{"certification", "certified", "certificate"}

// extractCertifications собирает любые строки документа с сертификационными
// ключевыми словами; голые строки-заголовки секций пропускаются, иначе сам
// заголовок "Certifications" становился бы записью.
func extractCertifications(lines []string) []profile.Certification {
	var out []profile.Certification
	for _, line := range lines {
		lower := strings.ToLower(line)
		if !containsAny(lower, certKeywords) {
			continue
		}
		if IsHeaderLine(line) && len(strings.Fields(line)) == 1 {
			continue
		}
		out = append(out, profile.Certification{Name: stripBullet(line)})
	}
	return out
}

// achievementMarkers — маркеры измеримого результата. Подстрочный матчинг
// заведомо шумный (захватит и нерелевантные фразы); поведение сохранено как есть.
var achievementWords = []string{"increased", "improved", "reduced"}

func isAchievementLine(line string) bool {
	if strings.Contains(line, "%") || strings.Contains(strings.ToLower(line), "k+") {
		return true
	}
	return containsAny(strings.ToLower(line), achievementWords)
}

// extractAchievements собирает строки с маркерами по всему документу,
// независимо от секций, срезая ведущий буллет.
func extractAchievements(lines []string) []profile.Achievement {
	var out []profile.Achievement
	for _, line := range lines {
		if !isAchievementLine(line) {
			continue
		}
		out = append(out, profile.Achievement{Title: stripBullet(line)})
	}
	return out
}

// commonLanguages — фиксированный словарь разговорных языков для presence-теста.
var commonLanguages = []string{
	"english", "spanish", "french", "german", "hindi", "mandarin", "chinese",
	"japanese", "korean", "arabic", "portuguese", "russian", "italian",
	"dutch", "turkish", "bengali", "urdu", "tamil", "telugu", "vietnamese",
}

// extractLanguages проверяет словарь по нормализованному тексту целиком.
// Матчинг по целым словам, чтобы "hindi" не находился внутри других слов.
func extractLanguages(rawText string) []profile.Language {
	normalized := nlp.Normalize(rawText)
	var out []profile.Language
	for _, lang := range commonLanguages {
		if nlp.ContainsPhrase(normalized, lang) {
			name := strings.ToUpper(lang[:1]) + lang[1:]
			out = append(out, profile.Language{Name: name})
		}
	}
	return out
}

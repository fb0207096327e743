package heuristic

import "strings"

// Section — метка непрерывного блока строк резюме.
type Section string

const (
	SectionNone     Section = ""
	SectionSummary  Section = "summary"
	SectionSkills   Section = "skills"
	SectionExp      Section = "experience"
	SectionProjects Section = "projects"
	SectionEdu      Section = "education"
	SectionCerts    Section = "certifications"
)

// sectionKeywords — наборы ключевых слов заголовков в порядке проверки.
// Первое совпадение выигрывает; наборы не пересекаются между секциями.
// Достижения собираются оппортунистически по маркерам, без заголовка (см. misc.go).
var sectionKeywords = []struct {
	section  Section
	keywords []string
}{
	{SectionSummary, []string{"summary", "objective", "profile"}},
	{SectionSkills, []string{"technical skills", "skills"}},
	{SectionExp, []string{"work experience", "experience"}},
	{SectionProjects, []string{"key projects", "projects"}},
	{SectionEdu, []string{"education", "academic"}},
	{SectionCerts, []string{"certifications", "certification"}},
}

// maxHeaderLen и maxHeaderWords ограничивают contains-матчинг короткими строками,
// иначе любая фраза со словом "experience" превращалась бы в заголовок.
const (
	maxHeaderLen   = 50
	maxHeaderWords = 4
)

// Segments — строки документа, разложенные по секциям. Срезы никогда не nil.
type Segments map[Section][]string

// headerMatch возвращает секцию заголовка и остаток строки после ключевого
// слова (заголовок и содержимое могут делить одну строку: "SummaryBuilt scalable...").
func headerMatch(line string) (Section, string, bool) {
	if len(line) >= maxHeaderLen || len(strings.Fields(line)) > maxHeaderWords {
		return SectionNone, "", false
	}
	lower := strings.ToLower(line)
	for _, entry := range sectionKeywords {
		for _, kw := range entry.keywords {
			idx := strings.Index(lower, kw)
			if idx < 0 {
				continue
			}
			rest := strings.TrimSpace(line[idx+len(kw):])
			rest = strings.TrimLeft(rest, ":-– ")
			return entry.section, rest, true
		}
	}
	return SectionNone, "", false
}

// Segment выполняет один проход слева направо с регистром текущей секции.
// Строка-заголовок закрывает предыдущий буфер и открывает новый; всё прочее
// копится в буфере текущей секции до следующего заголовка.
func Segment(lines []string) Segments {
	segs := Segments{
		SectionSummary:  {},
		SectionSkills:   {},
		SectionExp:      {},
		SectionProjects: {},
		SectionEdu:      {},
		SectionCerts:    {},
	}
	current := SectionNone
	for _, line := range lines {
		if sec, rest, ok := headerMatch(line); ok {
			current = sec
			if rest != "" {
				segs[current] = append(segs[current], rest)
			}
			continue
		}
		if current != SectionNone {
			segs[current] = append(segs[current], line)
		}
	}
	return segs
}

// IsHeaderLine reports whether the line would be consumed as a section header.
func IsHeaderLine(line string) bool {
	_, _, ok := headerMatch(line)
	return ok
}

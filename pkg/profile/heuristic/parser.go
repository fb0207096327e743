// Package heuristic реализует детерминированную стратегию извлечения профиля:
// построчный сегментатор секций и набор правил-экстракторов полей. Все
// экстракторы best-effort: отсутствие совпадения даёт пустое значение, не ошибку.
package heuristic

import (
	"context"
	"time"

	"github.com/artem13815/resume-profiler/pkg/nlp"
	"github.com/artem13815/resume-profiler/pkg/profile"
)

// Parser — эвристическая реализация profile.Parser.
type Parser struct {
	now func() time.Time
}

func NewParser() *Parser {
	return &Parser{now: time.Now}
}

var _ profile.Parser = (*Parser)(nil)

// Parse сегментирует текст и прогоняет экстракторы полей. Ошибок не возвращает:
// пустой вход даёт пустой (но нормализованный) профиль, валидацию минимальной
// длины текста выполняет оркестратор.
func (p *Parser) Parse(_ context.Context, rawText string) (profile.Profile, error) {
	lines := nlp.CollapseLines(rawText)
	segs := Segment(lines)

	var out profile.Profile
	out.Identity = profile.Identity{
		FullName: extractName(lines),
		Email:    extractEmail(rawText),
		Phone:    extractPhone(rawText),
		Address:  extractAddress(lines, rawText),
		Summary:  extractSummary(segs[SectionSummary], lines),
	}
	out.Links = extractLinks(lines)
	out.Skills = extractSkills(segs[SectionSkills])
	out.Experience = extractExperience(segs[SectionExp])
	out.Projects = extractProjects(segs[SectionProjects])
	out.Education = extractEducation(segs[SectionEdu])
	out.Certs = extractCertifications(lines)
	out.Achieves = extractAchievements(lines)
	out.Languages = extractLanguages(rawText)
	out.Metadata = buildMetadata(&out, p.now().UTC())
	out.Normalize()
	return out, nil
}

// Package enhance переносит данные извлечённого профиля в анкету пользователя.
// Слияние детерминированное и неразрушающее: извлечённое значение побеждает
// только когда оно непустое, заполненное поле анкеты никогда не затирается.
package enhance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/artem13815/resume-profiler/pkg/profile"
	"github.com/artem13815/resume-profiler/pkg/user"
)

// Merge возвращает анкету, дополненную данными извлечения. Чистая функция:
// existing не изменяется, UpdatedAt и флаг EnhancedFromExtraction ставит
// вызывающий сервис.
func Merge(existing user.Profile, extracted profile.Profile) user.Profile {
	out := existing

	out.FullName = prefer(extracted.Identity.FullName, existing.FullName)
	out.Phone = prefer(extracted.Identity.Phone, existing.Phone)
	out.Bio = prefer(extracted.Identity.Summary, existing.Bio)
	out.Location = prefer(prefer(extracted.Metadata.Location, extracted.Identity.Address), existing.Location)
	out.JobTitle = prefer(extracted.Metadata.CurrentRole, existing.JobTitle)
	out.CurrentRole = prefer(extracted.Metadata.CurrentRole, existing.CurrentRole)
	out.Company = prefer(extracted.Metadata.CurrentCompany, existing.Company)
	out.LinkedIn = prefer(deref(extracted.Links.LinkedIn), existing.LinkedIn)
	out.GitHub = prefer(deref(extracted.Links.GitHub), existing.GitHub)
	// "#" — плейсхолдер "портфолио упомянуто без ссылки", в анкету не попадает
	if site := deref(extracted.Links.Portfolio); site != "" && site != "#" {
		out.Website = prefer(site, existing.Website)
	}
	if len(existing.Skills) == 0 && len(extracted.Skills.All) > 0 {
		out.Skills = append([]string(nil), extracted.Skills.All...)
	}
	out.ExperienceSummary = prefer(experienceNarrative(extracted.Experience), existing.ExperienceSummary)
	if existing.TotalExperienceYears == 0 && extracted.Metadata.TotalExperienceYears > 0 {
		out.TotalExperienceYears = extracted.Metadata.TotalExperienceYears
	}
	return out
}

// prefer возвращает candidate, если он непустой, иначе fallback.
func prefer(candidate, fallback string) string {
	if candidate != "" {
		return candidate
	}
	return fallback
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// experienceNarrative собирает короткую сводку по последнему месту работы.
func experienceNarrative(entries []profile.ExperienceEntry) string {
	if len(entries) == 0 {
		return ""
	}
	e := entries[0]
	switch {
	case e.Position != "" && e.Company != "" && e.Duration != "":
		return fmt.Sprintf("%s at %s (%s)", e.Position, e.Company, e.Duration)
	case e.Position != "" && e.Company != "":
		return fmt.Sprintf("%s at %s", e.Position, e.Company)
	default:
		return e.Position
	}
}

// Service применяет Merge к сохранённой анкете владельца резюме.
type Service struct {
	repo user.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewService(repo user.Repository, log *zap.Logger) *Service {
	return &Service{repo: repo, log: log, now: time.Now}
}

// Enhance загружает анкету, сливает в неё извлечённый профиль и сохраняет.
// Ошибка возвращается вызывающему; решение "логировать и проглотить"
// принимает оркестратор, статус извлечения от этого не зависит.
func (s *Service) Enhance(ctx context.Context, userID uuid.UUID, extracted profile.Profile) error {
	existing, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("load user profile: %w", err)
	}

	merged := Merge(existing, extracted)
	merged.UserID = userID
	merged.EnhancedFromExtraction = true
	merged.UpdatedAt = s.now().UTC()

	if err := s.repo.Save(ctx, merged); err != nil {
		return fmt.Errorf("save user profile: %w", err)
	}
	s.log.Info("user profile enhanced from extraction",
		zap.String("userId", userID.String()),
		zap.Int("skills", len(merged.Skills)))
	return nil
}

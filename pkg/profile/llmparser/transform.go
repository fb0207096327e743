package llmparser

import "github.com/artem13815/resume-profiler/pkg/profile"

// transform переносит document в каноническую схему. Категории навыков идут в
// фиксированном порядке корзин; пустые корзины не создают групп. Volunteering
// и publications запрашиваются у модели, но канонической схемой не покрыты.
func transform(doc document) profile.Profile {
	var out profile.Profile

	out.Identity = profile.Identity{
		FullName: doc.PersonalInfo.FullName,
		Email:    doc.PersonalInfo.Email,
		Phone:    doc.PersonalInfo.Phone,
		Address:  doc.PersonalInfo.Address,
		Summary:  doc.PersonalInfo.Summary,
	}
	out.Links = profile.Links{
		LinkedIn:  optional(doc.PersonalInfo.LinkedIn),
		GitHub:    optional(doc.PersonalInfo.GitHub),
		Portfolio: optional(doc.PersonalInfo.Portfolio),
	}

	for _, bucket := range []struct {
		category string
		items    []string
	}{
		{"Technical", doc.Skills.Technical},
		{"Programming", doc.Skills.Programming},
		{"Frameworks", doc.Skills.Frameworks},
		{"Databases", doc.Skills.Databases},
		{"Tools", doc.Skills.Tools},
		{"Cloud", doc.Skills.Cloud},
		{"Other", doc.Skills.Other},
	} {
		if len(bucket.items) == 0 {
			continue
		}
		out.Skills.Groups = append(out.Skills.Groups, profile.SkillGroup{
			Category: bucket.category,
			Items:    bucket.items,
		})
	}

	for _, e := range doc.Experience {
		out.Experience = append(out.Experience, profile.ExperienceEntry{
			Company:          e.Company,
			Position:         e.Position,
			Duration:         e.Duration,
			Location:         e.Location,
			Responsibilities: e.Responsibilities,
			Technologies:     e.Technologies,
		})
	}
	for _, p := range doc.Projects {
		out.Projects = append(out.Projects, profile.ProjectEntry{
			Name:         p.Name,
			Role:         p.Role,
			Duration:     p.Duration,
			Description:  p.Description,
			Technologies: p.Technologies,
			LiveLink:     p.LiveLink,
		})
	}
	for _, e := range doc.Education {
		out.Education = append(out.Education, profile.EducationEntry{
			Degree:      e.Degree,
			Institution: e.Institution,
			Year:        e.Year,
			GPA:         e.GPA,
			Location:    e.Location,
			Honors:      e.Honors,
		})
	}
	for _, c := range doc.Certs {
		out.Certs = append(out.Certs, profile.Certification{Name: c.Name, Issuer: c.Issuer, Date: c.Date})
	}
	for _, a := range doc.Achievements {
		out.Achieves = append(out.Achieves, profile.Achievement{
			Title:        a.Title,
			Description:  a.Description,
			Date:         a.Date,
			Organization: a.Organization,
		})
	}
	for _, l := range doc.Languages {
		out.Languages = append(out.Languages, profile.Language{Name: l.Language, Proficiency: l.Proficiency})
	}

	out.Metadata = profile.Metadata{
		TotalExperienceYears: doc.Metadata.TotalExperienceYears,
		CurrentRole:          doc.Metadata.CurrentRole,
		CurrentCompany:       doc.Metadata.CurrentCompany,
		Location:             doc.Metadata.Location,
	}
	return out
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

package profile

import (
	"time"

	"github.com/google/uuid"
)

// Profile — каноническое структурированное представление резюме.
// Обе стратегии извлечения (эвристическая и LLM) приводят результат к этой схеме.
type Profile struct {
	Identity   Identity          `json:"identity"`
	Links      Links             `json:"links"`
	Skills     Skills            `json:"skills"`
	Experience []ExperienceEntry `json:"experience"`
	Projects   []ProjectEntry    `json:"projects"`
	Education  []EducationEntry  `json:"education"`
	Certs      []Certification   `json:"certifications"`
	Achieves   []Achievement     `json:"achievements"`
	Languages  []Language        `json:"languages"`
	Metadata   Metadata          `json:"metadata"`
}

// Identity — контактный блок. Пустая строка означает "не найдено".
type Identity struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Summary  string `json:"summary"`
}

// Links хранит ссылки на профили. nil значит "не найдено";
// непустое значение может быть каноничным корневым URL-плейсхолдером,
// если провайдер упомянут в тексте без явной ссылки.
type Links struct {
	LinkedIn  *string `json:"linkedin"`
	GitHub    *string `json:"github"`
	Portfolio *string `json:"portfolio"`
}

// SkillGroup — категория навыков из секции Skills ("Programming", "Cloud" и т.п.).
// Порядок групп и навыков внутри группы соответствует порядку в документе.
type SkillGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// Skills — категоризированные навыки плюс производный плоский список All.
type Skills struct {
	Groups []SkillGroup `json:"groups"`
	All    []string     `json:"all"`
}

// Group returns items of the named category, nil if absent.
func (s Skills) Group(category string) []string {
	for _, g := range s.Groups {
		if g.Category == category {
			return g.Items
		}
	}
	return nil
}

// Flatten пересчитывает All: навыки в порядке групп, затем внутри группы,
// дубликаты (точное совпадение с учётом регистра) отбрасываются. Идемпотентно.
func (s *Skills) Flatten() {
	seen := make(map[string]struct{})
	all := make([]string, 0, len(s.All))
	for _, g := range s.Groups {
		for _, item := range g.Items {
			if _, ok := seen[item]; ok {
				continue
			}
			seen[item] = struct{}{}
			all = append(all, item)
		}
	}
	s.All = all
}

type ExperienceEntry struct {
	Company          string   `json:"company"`
	Position         string   `json:"position"`
	Duration         string   `json:"duration"`
	Location         string   `json:"location,omitempty"`
	Responsibilities []string `json:"responsibilities"`
	Technologies     []string `json:"technologies,omitempty"`
}

type ProjectEntry struct {
	Name         string   `json:"name"`
	Role         string   `json:"role,omitempty"`
	Duration     string   `json:"duration,omitempty"`
	Description  []string `json:"description"`
	Technologies []string `json:"technologies"`
	LiveLink     string   `json:"liveLink,omitempty"`
}

type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
	GPA         string `json:"gpa,omitempty"`
	Location    string `json:"location,omitempty"`
	Honors      string `json:"honors,omitempty"`
}

type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
}

type Achievement struct {
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Date         string `json:"date,omitempty"`
	Organization string `json:"organization,omitempty"`
}

type Language struct {
	Name        string `json:"language"`
	Proficiency string `json:"proficiency,omitempty"`
}

// Metadata — производные агрегаты; TotalExperienceYears вычисляется из
// диапазонов дат, а не парсится из текста.
type Metadata struct {
	TotalExperienceYears float64 `json:"totalExperienceYears"`
	CurrentRole          string  `json:"currentRole,omitempty"`
	CurrentCompany       string  `json:"currentCompany,omitempty"`
	Location             string  `json:"location,omitempty"`
}

// Normalize заменяет nil-слайсы пустыми, чтобы потребители не видели null,
// и пересчитывает Skills.All.
func (p *Profile) Normalize() {
	if p.Skills.Groups == nil {
		p.Skills.Groups = []SkillGroup{}
	}
	for i := range p.Skills.Groups {
		if p.Skills.Groups[i].Items == nil {
			p.Skills.Groups[i].Items = []string{}
		}
	}
	p.Skills.Flatten()
	if p.Experience == nil {
		p.Experience = []ExperienceEntry{}
	}
	for i := range p.Experience {
		if p.Experience[i].Responsibilities == nil {
			p.Experience[i].Responsibilities = []string{}
		}
	}
	if p.Projects == nil {
		p.Projects = []ProjectEntry{}
	}
	for i := range p.Projects {
		if p.Projects[i].Description == nil {
			p.Projects[i].Description = []string{}
		}
		if p.Projects[i].Technologies == nil {
			p.Projects[i].Technologies = []string{}
		}
	}
	if p.Education == nil {
		p.Education = []EducationEntry{}
	}
	if p.Certs == nil {
		p.Certs = []Certification{}
	}
	if p.Achieves == nil {
		p.Achieves = []Achievement{}
	}
	if p.Languages == nil {
		p.Languages = []Language{}
	}
}

// Status — статус одного прогона извлечения.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Terminal reports whether the status ends a run.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Strategy выбирает реализацию парсера.
type Strategy string

const (
	StrategyHeuristic Strategy = "heuristic"
	StrategyLLM       Strategy = "llm"
)

// Record — то, что мы храним в БД по одному прогону извлечения.
// Повторное извлечение целиком заменяет предыдущую запись.
type Record struct {
	ResumeID    uuid.UUID `json:"resumeId"`
	Status      Status    `json:"status"`
	Strategy    Strategy  `json:"strategy"`
	Error       string    `json:"error,omitempty"`
	Profile     Profile   `json:"profile"`
	RawText     string    `json:"rawText,omitempty"`
	ExtractedAt time.Time `json:"extractedAt"`
}

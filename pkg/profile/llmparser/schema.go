package llmparser

// document — схема ответа модели. Поля 1:1 переносятся в каноническую схему;
// отсутствующие опциональные значения декодируются в нули/пустые слайсы.
type document struct {
	PersonalInfo personalInfo   `json:"personalInfo"`
	Experience   []expItem      `json:"experience"`
	Education    []eduItem      `json:"education"`
	Skills       skillBuckets   `json:"skills"`
	Projects     []projItem     `json:"projects"`
	Certs        []certItem     `json:"certifications"`
	Languages    []langItem     `json:"languages"`
	Achievements []achievement  `json:"achievements"`
	Volunteering []volunteering `json:"volunteering"`
	Publications []publication  `json:"publications"`
	Metadata     docMetadata    `json:"metadata"`
}

type personalInfo struct {
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Summary   string `json:"summary"`
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Portfolio string `json:"portfolio"`
}

// skillBuckets — фиксированные корзины навыков. Порядок полей задаёт порядок
// категорий при сборке плоского списка.
type skillBuckets struct {
	Technical   []string `json:"technical"`
	Programming []string `json:"programming"`
	Frameworks  []string `json:"frameworks"`
	Databases   []string `json:"databases"`
	Tools       []string `json:"tools"`
	Cloud       []string `json:"cloud"`
	Other       []string `json:"other"`
}

type expItem struct {
	Company          string   `json:"company"`
	Position         string   `json:"position"`
	Duration         string   `json:"duration"`
	Location         string   `json:"location"`
	Responsibilities []string `json:"responsibilities"`
	Technologies     []string `json:"technologies"`
}

type eduItem struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	GPA         string `json:"gpa"`
	Location    string `json:"location"`
	Honors      string `json:"honors"`
}

type projItem struct {
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	Duration     string   `json:"duration"`
	Description  []string `json:"description"`
	Technologies []string `json:"technologies"`
	LiveLink     string   `json:"liveLink"`
}

type certItem struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

type langItem struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

type achievement struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Date         string `json:"date"`
	Organization string `json:"organization"`
}

type volunteering struct {
	Organization string `json:"organization"`
	Role         string `json:"role"`
	Duration     string `json:"duration"`
}

type publication struct {
	Title string `json:"title"`
	Venue string `json:"venue"`
	Year  string `json:"year"`
}

type docMetadata struct {
	TotalExperienceYears float64 `json:"totalExperienceYears"`
	CurrentRole          string  `json:"currentRole"`
	CurrentCompany       string  `json:"currentCompany"`
	Location             string  `json:"location"`
}

// responseSchema — JSON Schema (draft 2020-12 subset) для валидации ответа
// модели до декодирования в document.
func responseSchema() map[string]any {
	str := map[string]any{"type": "string"}
	strList := map[string]any{"type": "array", "items": str}
	objList := func(props map[string]any) map[string]any {
		return map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":       "object",
				"properties": props,
			},
		}
	}

	buckets := map[string]any{}
	for _, b := range []string{"technical", "programming", "frameworks", "databases", "tools", "cloud", "other"} {
		buckets[b] = strList
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"personalInfo": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"fullName": str, "email": str, "phone": str, "address": str,
					"summary": str, "linkedin": str, "github": str, "portfolio": str,
				},
			},
			"experience": objList(map[string]any{
				"company": str, "position": str, "duration": str, "location": str,
				"responsibilities": strList, "technologies": strList,
			}),
			"education": objList(map[string]any{
				"degree": str, "institution": str, "year": str, "gpa": str,
				"location": str, "honors": str,
			}),
			"skills": map[string]any{"type": "object", "properties": buckets},
			"projects": objList(map[string]any{
				"name": str, "role": str, "duration": str,
				"description": strList, "technologies": strList, "liveLink": str,
			}),
			"certifications": objList(map[string]any{"name": str, "issuer": str, "date": str}),
			"languages":      objList(map[string]any{"language": str, "proficiency": str}),
			"achievements":   objList(map[string]any{"title": str, "description": str, "date": str, "organization": str}),
			"volunteering":   objList(map[string]any{"organization": str, "role": str, "duration": str}),
			"publications":   objList(map[string]any{"title": str, "venue": str, "year": str}),
			"metadata": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"totalExperienceYears": map[string]any{"type": "number"},
					"currentRole":          str,
					"currentCompany":       str,
					"location":             str,
				},
			},
		},
	}
}

package heuristic

import (
	"strings"

	"github.com/artem13815/resume-profiler/pkg/profile"
)

// categoryPrefixes — известные имена категорий навыков (нижний регистр).
// Используются правилом category-without-colon и фильтром строк summary.
var categoryPrefixes = []string{
	"programming languages",
	"programming",
	"web technologies",
	"web",
	"cloud platforms",
	"cloud",
	"tools",
	"core",
	"soft skills",
	"frameworks",
	"databases",
	"devops",
	"languages",
	"libraries",
	"other",
}

// skillAnchors — канонические написания известных навыков. Матчатся с учётом
// регистра: по ним режется строка вида "ProgrammingPython, C++", где категория
// приклеена к первому навыку без разделителя.
var skillAnchors = []string{
	"C++", "C#", "Python", "Java", "JavaScript", "TypeScript", "Go", "Golang",
	"Rust", "Ruby", "PHP", "Kotlin", "Swift", "Scala", "SQL", "HTML", "CSS",
	"React", "Angular", "Vue", "Node.js", "Express", "Django", "Flask",
	"Spring", "AWS", "GCP", "Azure", "Docker", "Kubernetes", "Terraform",
	"PostgreSQL", "MySQL", "MongoDB", "Redis", "Kafka", "RabbitMQ", "Git",
	"Linux", "GraphQL", "REST",
}

// skillState — аккумулятор классификации: упорядоченные группы и активная
// категория для строк-продолжений.
type skillState struct {
	groups []profile.SkillGroup
	index  map[string]int
	active string
}

func newSkillState() *skillState {
	return &skillState{index: make(map[string]int)}
}

func (st *skillState) add(category string, items []string) {
	category = strings.TrimSpace(category)
	if category == "" {
		category = "Other"
	}
	i, ok := st.index[category]
	if !ok {
		st.groups = append(st.groups, profile.SkillGroup{Category: category})
		i = len(st.groups) - 1
		st.index[category] = i
	}
	st.groups[i].Items = append(st.groups[i].Items, items...)
	st.active = category
}

func isLetter(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

// splitSkillList режет остаток строки по запятым, обрезая и отбрасывая пустые токены.
func splitSkillList(s string) []string {
	var out []string
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// skillRule — именованное правило классификации строки секции Skills.
// Правила применяются сверху вниз, выигрывает первое совпавшее.
type skillRule struct {
	name  string
	apply func(line string, st *skillState) bool
}

var skillRules = []skillRule{
	{
		// "Programming: Python, Go" — категория отделена двоеточием.
		name: "category-with-colon",
		apply: func(line string, st *skillState) bool {
			i := strings.Index(line, ":")
			if i < 0 {
				return false
			}
			items := splitSkillList(line[i+1:])
			if len(items) == 0 {
				return false
			}
			st.add(line[:i], items)
			return true
		},
	},
	{
		// "ProgrammingPython, C++" — категория приклеена к известному навыку.
		// Символ перед якорем обязан быть буквой: наличие разделителя значит,
		// что это не приклеенная категория, а обычный список.
		name: "category-glued-to-skills",
		apply: func(line string, st *skillState) bool {
			cut := -1
			for _, anchor := range skillAnchors {
				idx := strings.Index(line, anchor)
				if idx > 0 && isLetter(line[idx-1]) && (cut < 0 || idx < cut) {
					cut = idx
				}
			}
			if cut < 0 {
				return false
			}
			items := splitSkillList(line[cut:])
			if len(items) == 0 {
				return false
			}
			st.add(line[:cut], items)
			return true
		},
	},
	{
		// "Cloud AWS, GCP" — известный префикс категории без двоеточия.
		name: "category-without-colon",
		apply: func(line string, st *skillState) bool {
			lower := strings.ToLower(line)
			for _, prefix := range categoryPrefixes {
				if !strings.HasPrefix(lower, prefix) {
					continue
				}
				rest := strings.TrimSpace(line[len(prefix):])
				items := splitSkillList(rest)
				if len(items) == 0 {
					return false
				}
				st.add(line[:len(prefix)], items)
				return true
			}
			return false
		},
	},
	{
		// "Python, Java, Go" — список без категории, продолжение активной.
		name: "continuation",
		apply: func(line string, st *skillState) bool {
			if !strings.Contains(line, ",") {
				return false
			}
			items := splitSkillList(line)
			if len(items) < 2 {
				return false
			}
			st.add(st.active, items)
			return true
		},
	},
}

// extractSkills классифицирует строки секции Skills правилами выше.
// Неклассифицируемые строки игнорируются — это не ошибка.
func extractSkills(lines []string) profile.Skills {
	st := newSkillState()
	for _, line := range lines {
		for _, rule := range skillRules {
			if rule.apply(line, st) {
				break
			}
		}
	}
	skills := profile.Skills{Groups: st.groups}
	skills.Flatten()
	return skills
}

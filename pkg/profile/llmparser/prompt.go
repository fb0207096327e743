package llmparser

import "fmt"

// Промпты требуют от модели строго один JSON-объект схемы document.
// Формат взят в лоб: никакого markdown, пустые списки как [], без выдумывания
// фактов. Сегментацию текста модель делает сама.

const systemPrompt = "You are a resume parser. Return the result STRICTLY as a single JSON object " +
	"(no markdown, no code fences, no explanations). Always return empty arrays as [], never null. " +
	"Do not invent facts that are not present in the resume text."

const schemaBlock = `{
  "personalInfo": {"fullName": string, "email": string, "phone": string, "address": string, "summary": string, "linkedin": string, "github": string, "portfolio": string},
  "experience": [{"company": string, "position": string, "duration": string, "location": string, "responsibilities": string[], "technologies": string[]}],
  "education": [{"degree": string, "institution": string, "year": string, "gpa": string, "location": string, "honors": string}],
  "skills": {"technical": string[], "programming": string[], "frameworks": string[], "databases": string[], "tools": string[], "cloud": string[], "other": string[]},
  "projects": [{"name": string, "role": string, "duration": string, "description": string[], "technologies": string[], "liveLink": string}],
  "certifications": [{"name": string, "issuer": string, "date": string}],
  "languages": [{"language": string, "proficiency": string}],
  "achievements": [{"title": string, "description": string, "date": string, "organization": string}],
  "volunteering": [{"organization": string, "role": string, "duration": string}],
  "publications": [{"title": string, "venue": string, "year": string}],
  "metadata": {"totalExperienceYears": number, "currentRole": string, "currentCompany": string, "location": string}
}`

func userPrompt(resumeText string) string {
	return fmt.Sprintf(
		"Resume text between markers:\n<<<\n%s\n>>>\n\nReturn STRICTLY one JSON object with this schema:\n%s\n\nRules:\n- No extra fields\n- No markdown\n- Empty list means []\n- Unknown scalar means \"\"\n",
		resumeText,
		schemaBlock,
	)
}

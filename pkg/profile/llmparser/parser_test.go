package llmparser

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resume-profiler/pkg/profile"
)

type stubModel struct {
	reply      string
	err        error
	configured bool
	lastUser   string
}

func (s *stubModel) Ask(_ context.Context, _, userPrompt string) (string, error) {
	s.lastUser = userPrompt
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func (s *stubModel) Configured() bool { return s.configured }

const sampleReply = `{
  "personalInfo": {
    "fullName": "Jane Smith",
    "email": "jane@example.com",
    "phone": "+1 555 123 4567",
    "address": "Austin, TX",
    "summary": "Backend engineer.",
    "linkedin": "https://linkedin.com/in/janesmith",
    "github": "",
    "portfolio": ""
  },
  "experience": [
    {
      "company": "Acme Corp",
      "position": "Senior Engineer",
      "duration": "Jan 2020 - Present",
      "location": "Austin, TX",
      "responsibilities": ["Built billing pipeline"],
      "technologies": ["Go", "Postgres"]
    }
  ],
  "education": [
    {"degree": "Bachelor of Science", "institution": "MIT", "year": "2015-2019", "gpa": "3.8", "location": "", "honors": ""}
  ],
  "skills": {
    "programming": ["Python", "Go"],
    "cloud": ["AWS"],
    "other": ["Python"]
  },
  "projects": [],
  "certifications": [{"name": "AWS Certified Developer", "issuer": "Amazon", "date": "2021"}],
  "languages": [{"language": "English", "proficiency": "Native"}],
  "achievements": [],
  "volunteering": [],
  "publications": [],
  "metadata": {"totalExperienceYears": 5.5, "currentRole": "Senior Engineer", "currentCompany": "Acme Corp", "location": "Austin, TX"}
}`

func TestParseMapsDocument(t *testing.T) {
	model := &stubModel{reply: sampleReply, configured: true}
	p := NewParser(model)

	got, err := p.Parse(context.Background(), "Jane Smith resume text")
	require.NoError(t, err)

	assert.Equal(t, "Jane Smith", got.Identity.FullName)
	assert.Equal(t, "jane@example.com", got.Identity.Email)
	require.NotNil(t, got.Links.LinkedIn)
	assert.Equal(t, "https://linkedin.com/in/janesmith", *got.Links.LinkedIn)
	assert.Nil(t, got.Links.GitHub)

	// корзины в фиксированном порядке, пустые пропущены
	require.Len(t, got.Skills.Groups, 3)
	assert.Equal(t, "Programming", got.Skills.Groups[0].Category)
	assert.Equal(t, "Cloud", got.Skills.Groups[1].Category)
	assert.Equal(t, "Other", got.Skills.Groups[2].Category)
	// дубликат Python из Other отброшен при Flatten
	assert.Equal(t, []string{"Python", "Go", "AWS"}, got.Skills.All)

	require.Len(t, got.Experience, 1)
	assert.Equal(t, "Acme Corp", got.Experience[0].Company)
	assert.Equal(t, []string{"Go", "Postgres"}, got.Experience[0].Technologies)

	require.Len(t, got.Education, 1)
	assert.Equal(t, "MIT", got.Education[0].Institution)

	require.Len(t, got.Certs, 1)
	assert.Equal(t, "Amazon", got.Certs[0].Issuer)

	require.Len(t, got.Languages, 1)
	assert.Equal(t, "English", got.Languages[0].Name)

	assert.InDelta(t, 5.5, got.Metadata.TotalExperienceYears, 1e-9)

	// Normalize: nil-слайсов на выходе нет
	assert.NotNil(t, got.Projects)
	assert.NotNil(t, got.Achieves)

	assert.Contains(t, model.lastUser, "Jane Smith resume text")
}

func TestParseFencedAndBareAreEquivalent(t *testing.T) {
	bare := &stubModel{reply: sampleReply, configured: true}
	fenced := &stubModel{reply: "```json\n" + sampleReply + "\n```", configured: true}

	gotBare, err := NewParser(bare).Parse(context.Background(), "text")
	require.NoError(t, err)
	gotFenced, err := NewParser(fenced).Parse(context.Background(), "text")
	require.NoError(t, err)

	assert.Equal(t, gotBare, gotFenced)
}

func TestParseNonJSONIsParseError(t *testing.T) {
	model := &stubModel{reply: "I could not process this resume, sorry.", configured: true}

	_, err := NewParser(model).Parse(context.Background(), "text")
	require.Error(t, err)
	var perr *profile.ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestParseSchemaViolationIsParseError(t *testing.T) {
	// experience как объект вместо массива
	model := &stubModel{reply: `{"experience": {"company": "Acme"}}`, configured: true}

	_, err := NewParser(model).Parse(context.Background(), "text")
	require.Error(t, err)
	var perr *profile.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "response does not match schema", perr.Reason)
}

func TestParseUnconfiguredModelFailsClosed(t *testing.T) {
	model := &stubModel{reply: sampleReply, configured: false}

	_, err := NewParser(model).Parse(context.Background(), "text")
	var cerr *profile.ConfigError
	require.ErrorAs(t, err, &cerr)
	// модель не должна вызываться вовсе
	assert.Empty(t, model.lastUser)
}

func TestParseNilModelFailsClosed(t *testing.T) {
	_, err := NewParser(nil).Parse(context.Background(), "text")
	var cerr *profile.ConfigError
	assert.ErrorAs(t, err, &cerr)
}

func TestParseUpstreamErrorIsWrapped(t *testing.T) {
	boom := errors.New("connection reset")
	model := &stubModel{err: boom, configured: true}

	_, err := NewParser(model).Parse(context.Background(), "text")
	var uerr *profile.UpstreamError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "llm", uerr.Service)
	assert.ErrorIs(t, err, boom)
}

func TestParseTruncatesLongInput(t *testing.T) {
	model := &stubModel{reply: sampleReply, configured: true}
	p := NewParser(model)
	p.maxChars = 100

	long := make([]byte, 500)
	for i := range long {
		long[i] = 'a'
	}
	_, err := p.Parse(context.Background(), string(long))
	require.NoError(t, err)
	assert.LessOrEqual(t, len(model.lastUser), 100+len(userPrompt("")))
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences(`{"a":1}`))
}

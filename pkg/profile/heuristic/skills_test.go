package heuristic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSkillsCategoryWithColon(t *testing.T) {
	skills := extractSkills([]string{"Programming: Python, Go", "Cloud: AWS, GCP"})

	require.Len(t, skills.Groups, 2)
	assert.Equal(t, []string{"Python", "Go"}, skills.Group("Programming"))
	assert.Equal(t, []string{"AWS", "GCP"}, skills.Group("Cloud"))
	assert.Equal(t, []string{"Python", "Go", "AWS", "GCP"}, skills.All)
}

func TestExtractSkillsGluedCategory(t *testing.T) {
	skills := extractSkills([]string{"ProgrammingPython, C++"})

	assert.Equal(t, []string{"Python", "C++"}, skills.Group("Programming"))
}

func TestExtractSkillsCategoryWithoutColon(t *testing.T) {
	skills := extractSkills([]string{"Cloud AWS, GCP"})

	assert.Equal(t, []string{"AWS", "GCP"}, skills.Group("Cloud"))
}

func TestExtractSkillsContinuationAppendsToActive(t *testing.T) {
	skills := extractSkills([]string{
		"Tools: Git, Docker",
		"Kubernetes, Terraform",
	})

	assert.Equal(t, []string{"Git", "Docker", "Kubernetes", "Terraform"}, skills.Group("Tools"))
}

func TestExtractSkillsUnclassifiableLinesIgnored(t *testing.T) {
	skills := extractSkills([]string{"copy of my old resume"})
	assert.Empty(t, skills.Groups)
	assert.Empty(t, skills.All)
}

func TestFlattenDeduplicatesAndIsIdempotent(t *testing.T) {
	skills := extractSkills([]string{
		"Programming: Go, Python",
		"Backend: Go, PostgreSQL",
	})

	require.Equal(t, []string{"Go", "Python", "PostgreSQL"}, skills.All)

	// running the flatten step again must not grow the list
	skills.Flatten()
	skills.Flatten()
	assert.Equal(t, []string{"Go", "Python", "PostgreSQL"}, skills.All)
}

func TestFlattenDedupIsCaseSensitive(t *testing.T) {
	skills := extractSkills([]string{"Programming: go, Go"})
	assert.Equal(t, []string{"go", "Go"}, skills.All)
}

package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenOrderAndDedup(t *testing.T) {
	s := Skills{Groups: []SkillGroup{
		{Category: "Programming", Items: []string{"Python", "Go", "Python"}},
		{Category: "Cloud", Items: []string{"AWS", "Go"}},
	}}
	s.Flatten()
	assert.Equal(t, []string{"Python", "Go", "AWS"}, s.All)

	// дедупликация строгая, с учётом регистра
	s = Skills{Groups: []SkillGroup{
		{Category: "Tools", Items: []string{"git", "Git"}},
	}}
	s.Flatten()
	assert.Equal(t, []string{"git", "Git"}, s.All)
}

func TestFlattenIdempotent(t *testing.T) {
	s := Skills{Groups: []SkillGroup{{Category: "Other", Items: []string{"Docker", "Docker"}}}}
	s.Flatten()
	first := append([]string(nil), s.All...)
	s.Flatten()
	assert.Equal(t, first, s.All)
}

func TestGroup(t *testing.T) {
	s := Skills{Groups: []SkillGroup{{Category: "Databases", Items: []string{"Postgres"}}}}
	assert.Equal(t, []string{"Postgres"}, s.Group("Databases"))
	assert.Nil(t, s.Group("Cloud"))
}

func TestNormalizeFillsNilSlices(t *testing.T) {
	var p Profile
	p.Experience = []ExperienceEntry{{Position: "Engineer"}}
	p.Projects = []ProjectEntry{{Name: "Indexer"}}
	p.Normalize()

	require.NotNil(t, p.Skills.Groups)
	assert.NotNil(t, p.Skills.All)
	assert.NotNil(t, p.Experience[0].Responsibilities)
	assert.NotNil(t, p.Projects[0].Description)
	assert.NotNil(t, p.Projects[0].Technologies)
	assert.NotNil(t, p.Education)
	assert.NotNil(t, p.Certs)
	assert.NotNil(t, p.Achieves)
	assert.NotNil(t, p.Languages)
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusProcessing.Terminal())
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusFailed.Terminal())
}

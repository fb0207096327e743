package heuristic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCertifications(t *testing.T) {
	certs := extractCertifications([]string{
		"Certifications",
		"AWS Certified Solutions Architect",
		"• Certificate of Advanced Kubernetes Operations",
		"Hobbies: chess",
	})

	require.Len(t, certs, 2)
	assert.Equal(t, "AWS Certified Solutions Architect", certs[0].Name)
	assert.Equal(t, "Certificate of Advanced Kubernetes Operations", certs[1].Name)
}

func TestExtractAchievementsMarkers(t *testing.T) {
	achieves := extractAchievements([]string{
		"• Reduced deploy time by 40%",
		"Handled 300k+ requests per day",
		"Improved onboarding flow",
		"Regular maintenance work",
	})

	require.Len(t, achieves, 3)
	assert.Equal(t, "Reduced deploy time by 40%", achieves[0].Title)
	assert.Equal(t, "Handled 300k+ requests per day", achieves[1].Title)
	assert.Equal(t, "Improved onboarding flow", achieves[2].Title)
}

func TestExtractLanguagesWholeWordOnly(t *testing.T) {
	langs := extractLanguages("Languages: English, Hindi. Writes Go and TypeScript.")

	names := make([]string, 0, len(langs))
	for _, l := range langs {
		names = append(names, l.Name)
	}
	assert.Equal(t, []string{"English", "Hindi"}, names)
}

func TestExtractLanguagesNoFalsePositiveInsideWords(t *testing.T) {
	// "german" must not be found inside "germanium"
	langs := extractLanguages("Worked with germanium detectors")
	assert.Empty(t, langs)
}

package heuristic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEducationDegreeInstitutionYear(t *testing.T) {
	entries := extractEducation([]string{
		"Bachelor of Science",
		"MIT",
		"2015-2019",
	})

	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "Bachelor of Science", e.Degree)
	assert.Equal(t, "MIT", e.Institution)
	assert.Equal(t, "2015-2019", e.Year)
}

func TestExtractEducationGPA(t *testing.T) {
	entries := extractEducation([]string{
		"B.Tech in Computer Science",
		"IIT Delhi",
		"CGPA: 8.9",
	})

	require.Len(t, entries, 1)
	assert.Equal(t, "IIT Delhi", entries[0].Institution)
	assert.Equal(t, "8.9", entries[0].GPA)
}

func TestExtractEducationMultipleEntries(t *testing.T) {
	entries := extractEducation([]string{
		"Master of Science",
		"Stanford University",
		"2019-2021",
		"Bachelor of Engineering",
		"2015-2019",
	})

	require.Len(t, entries, 2)
	assert.Equal(t, "Master of Science", entries[0].Degree)
	assert.Equal(t, "Stanford University", entries[0].Institution)
	assert.Equal(t, "Bachelor of Engineering", entries[1].Degree)
	assert.Equal(t, "", entries[1].Institution)
	assert.Equal(t, "2015-2019", entries[1].Year)
}

func TestExtractEducationYearLineIsNotInstitution(t *testing.T) {
	entries := extractEducation([]string{"Bachelor of Arts", "2010-2014", "Oberlin College"})

	require.Len(t, entries, 1)
	// the line after the degree was a date range, so institution stays empty
	assert.Equal(t, "", entries[0].Institution)
	assert.Equal(t, "2010-2014", entries[0].Year)
}

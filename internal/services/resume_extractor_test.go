package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleResume = `John Doe
john.doe@example.com | +91 98765 43210
Software Engineer with 4+ years of experience building web applications.
Skills: JavaScript, TypeScript, React, Node.js, PostgreSQL, Docker, AWS.
Bachelor of Engineering, Pune University.`

func Test_Extract_ShouldDetectSkillsInVocabularyOrder(t *testing.T) {

	extractor := NewResumeExtractor()

	profile, err := extractor.Extract(sampleResume, "Software Engineer")
	assert.NoError(t, err)

	// substring matching keeps the original behavior: "javascript" also
	// surfaces "java", "postgresql" also surfaces "sql".
	assert.Equal(t, []string{"javascript", "java", "react", "node.js", "sql", "typescript", "docker", "aws", "postgresql"},
		profile.Skills)
}

func Test_Extract_ShouldDetectExperienceYears(t *testing.T) {

	extractor := NewResumeExtractor()

	profile, err := extractor.Extract(sampleResume, "")
	assert.NoError(t, err)
	assert.Equal(t, 4, profile.ExperienceYears)

	profile, err = extractor.Extract("worked with python for a while", "")
	assert.NoError(t, err)
	assert.Equal(t, 0, profile.ExperienceYears)

	profile, err = extractor.Extract("12 years of exp in java", "")
	assert.NoError(t, err)
	assert.Equal(t, 12, profile.ExperienceYears)
}

func Test_Extract_ShouldDetectEducationAndContacts(t *testing.T) {

	extractor := NewResumeExtractor()

	profile, err := extractor.Extract(sampleResume, "")
	assert.NoError(t, err)

	assert.True(t, profile.HasEducation)
	assert.Equal(t, "john.doe@example.com", profile.Email)
	assert.NotEmpty(t, profile.Phone)

	profile, err = extractor.Extract("python developer, no formal schooling listed", "")
	assert.NoError(t, err)
	assert.False(t, profile.HasEducation)
	assert.Empty(t, profile.Email)
}

func Test_Extract_ShouldBeDeterministic(t *testing.T) {

	extractor := NewResumeExtractor()

	first, err := extractor.Extract(sampleResume, "Software Engineer")
	assert.NoError(t, err)
	second, err := extractor.Extract(sampleResume, "Software Engineer")
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func Test_Extract_WhenNoExtractableText_ShouldFail(t *testing.T) {

	extractor := NewResumeExtractor()

	_, err := extractor.Extract("", "")
	assert.ErrorIs(t, err, ErrNoTextContent)

	_, err = extractor.Extract("   \n\t ---- ", "")
	assert.ErrorIs(t, err, ErrNoTextContent)
}

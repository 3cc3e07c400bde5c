package services

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/nchavan/jobscout/internal/domain/models"
)

var ErrNoTextContent = errors.New("document text is empty or contains no extractable characters")

var (
	experienceRegex  = regexp.MustCompile(`(?i)(\d+)\s*\+?\s*years?\s*(?:of\s*)?(?:experience|exp)`)
	emailRegex       = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phoneRegex       = regexp.MustCompile(`\+?[1-9]?[\d\s\-()]{10,}`)
	extractableRegex = regexp.MustCompile(`[a-zA-Z0-9]`)
)

// ResumeExtractor turns raw document text into a ResumeProfile. Pure and
// deterministic: the same text always yields the same profile.
type ResumeExtractor struct{}

func NewResumeExtractor() *ResumeExtractor {
	return &ResumeExtractor{}
}

func (e *ResumeExtractor) Extract(text string, expectedRole string) (models.ResumeProfile, error) {

	if !extractableRegex.MatchString(text) {
		return models.ResumeProfile{}, ErrNoTextContent
	}

	cleanText := strings.ToLower(text)

	skills := lo.Filter(resumeSkillVocabulary, func(skill string, _ int) bool {
		return strings.Contains(cleanText, skill)
	})

	return models.ResumeProfile{
		Skills:          skills,
		ExperienceYears: extractExperienceYears(text),
		HasEducation:    containsAny(cleanText, educationKeywords),
		ExpectedRole:    expectedRole,
		Email:           emailRegex.FindString(text),
		Phone:           strings.TrimSpace(phoneRegex.FindString(text)),
	}, nil
}

func extractExperienceYears(text string) int {
	match := experienceRegex.FindStringSubmatch(text)
	if match == nil {
		return 0
	}

	years, err := strconv.Atoi(match[1])
	if err != nil || years < 0 {
		return 0
	}
	return years
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

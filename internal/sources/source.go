package sources

import (
	"context"
	"strings"

	"github.com/nchavan/jobscout/internal/domain/models"
)

// Query is the common input every source adapter receives.
type Query struct {
	Role     string
	Skills   []string
	Location string
}

// SearchText builds the free-text query sent to job boards: the role plus the
// first few skills, which is how the boards expect relevance hints.
func (q Query) SearchText(maxSkills int) string {
	parts := []string{q.Role}
	skills := q.Skills
	if len(skills) > maxSkills {
		skills = skills[:maxSkills]
	}
	parts = append(parts, skills...)
	return strings.TrimSpace(strings.Join(parts, " "))
}

// Source adapts one external job-search API to the normalized JobPosting
// shape. Implementations must cap their own result count and must not be
// invoked when IsConfigured reports false.
type Source interface {
	Name() string
	IsConfigured() bool
	Fetch(ctx context.Context, query Query) ([]models.JobPosting, error)
}

// countryCodes maps preferred locations to the country codes Adzuna and
// JSearch expect. Unknown locations default to India, where the product
// launched.
var countryCodes = map[string]string{
	"india":     "in",
	"mumbai":    "in",
	"bangalore": "in",
	"delhi":     "in",
	"hyderabad": "in",
	"chennai":   "in",
	"pune":      "in",
	"kolkata":   "in",
	"remote":    "in",
	"usa":       "us",
	"uk":        "gb",
	"canada":    "ca",
	"australia": "au",
}

func countryCode(location string) string {
	if code, ok := countryCodes[strings.ToLower(location)]; ok {
		return code
	}
	return "in"
}

func capJobs(jobs []models.JobPosting, max int) []models.JobPosting {
	if len(jobs) > max {
		return jobs[:max]
	}
	return jobs
}

func orDefault(location, fallback string) string {
	if location == "" {
		if fallback == "" {
			return "Not specified"
		}
		return fallback
	}
	return location
}

package models

import (
	"strings"
	"time"
)

// JobPosting is the normalized shape every source adapter maps into.
// ID is unique within a source; DedupKey is unique across the aggregated set.
type JobPosting struct {
	ID          string
	Title       string
	Company     string
	Location    string
	Description string
	Salary      string
	URL         string
	CreatedAt   time.Time
	Source      string
}

// DedupKey collapses the same posting reported by different sources.
func (j JobPosting) DedupKey() string {
	return strings.ToLower(j.Title) + "|" + strings.ToLower(j.Company)
}

// ScoredJob is a posting annotated by the scoring engine. Final pipeline output.
type ScoredJob struct {
	JobPosting
	MatchScore        int
	OverlappingSkills []string
	MissingSkills     []string
	Tips              []string
	AIEnhanced        bool
}

package services

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"

	"github.com/nchavan/jobscout/internal/domain/models"
)

const (
	minScore = 45
	maxScore = 95

	// base score scale and the floor applied when a posting mentions no
	// recognizable skill term at all.
	baseScoreScale   = 70
	noSkillTermsBase = 30

	maxOverlappingSkills = 5
	maxMissingSkills     = 3
	maxTips              = 3
)

// Scorer computes a bounded relevance score for a profile/posting pair. The
// deterministic part is a pure function of its inputs; a small perturbation
// drawn from the injected rand source keeps scores from clustering. Safe for
// concurrent use.
type Scorer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewScorer(seed int64) *Scorer {
	return &Scorer{rng: rand.New(rand.NewSource(seed))}
}

func (s *Scorer) Score(profile models.ResumeProfile, job models.JobPosting) models.ScoredJob {

	jobText := strings.ToLower(job.Title + " " + job.Description)

	score := s.baseScore(profile, jobText)
	score += seniorityAdjustment(profile, jobText)

	if profile.HasEducation {
		score += 5
	}

	role := strings.ToLower(profile.ExpectedRole)
	if role != "" && strings.Contains(strings.ToLower(job.Title), role) {
		score += 10
	}

	score += s.perturbation()

	return models.ScoredJob{
		JobPosting:        job,
		MatchScore:        clampScore(score),
		OverlappingSkills: overlappingSkills(profile, job.Description),
		MissingSkills:     missingSkills(profile, job.Description),
		Tips:              generateTips(profile, job),
	}
}

// baseScore weighs, per category, the fraction of skill terms mentioned by the
// posting that the profile covers. Categories absent from the posting do not
// count against the candidate.
func (s *Scorer) baseScore(profile models.ResumeProfile, jobText string) float64 {

	var weightedMatch, applicableWeight float64

	for _, category := range skillCategories {
		var mentioned, matched int
		for _, skill := range category.skills {
			if !strings.Contains(jobText, skill) {
				continue
			}
			mentioned++
			if profileCoversSkill(profile, skill) {
				matched++
			}
		}
		if mentioned > 0 {
			weightedMatch += float64(matched) / float64(mentioned) * category.weight
			applicableWeight += category.weight
		}
	}

	if applicableWeight == 0 {
		return noSkillTermsBase
	}
	return weightedMatch / applicableWeight * baseScoreScale
}

// profileCoversSkill matches loosely in both directions so that e.g. a profile
// skill "node.js" covers the term "node" and vice versa.
func profileCoversSkill(profile models.ResumeProfile, skill string) bool {
	for _, userSkill := range profile.Skills {
		if strings.Contains(userSkill, skill) || strings.Contains(skill, userSkill) {
			return true
		}
	}
	return false
}

func seniorityAdjustment(profile models.ResumeProfile, jobText string) float64 {

	if containsAny(jobText, seniorityKeywords) {
		switch {
		case profile.ExperienceYears >= 5:
			return 15
		case profile.ExperienceYears >= 3:
			return 10
		case profile.ExperienceYears >= 1:
			return 5
		default:
			return -10
		}
	}

	switch {
	case profile.ExperienceYears >= 2:
		return 8
	case profile.ExperienceYears >= 1:
		return 5
	default:
		return 0
	}
}

func (s *Scorer) perturbation() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()*10 - 5
}

func clampScore(score float64) int {
	rounded := int(math.Round(score))
	if rounded < minScore {
		return minScore
	}
	if rounded > maxScore {
		return maxScore
	}
	return rounded
}

func overlappingSkills(profile models.ResumeProfile, description string) []string {

	descriptionText := strings.ToLower(description)

	var overlapping []string
	for _, skill := range profile.Skills {
		if strings.Contains(descriptionText, skill) {
			overlapping = append(overlapping, skill)
			if len(overlapping) == maxOverlappingSkills {
				break
			}
		}
	}
	return overlapping
}

func missingSkills(profile models.ResumeProfile, description string) []string {

	descriptionText := strings.ToLower(description)

	var missing []string
	for _, skill := range commonlyRequestedSkills {
		lowered := strings.ToLower(skill)
		if strings.Contains(descriptionText, lowered) && !profile.HasSkill(lowered) {
			missing = append(missing, skill)
			if len(missing) == maxMissingSkills {
				break
			}
		}
	}
	return missing
}

// generateTips evaluates advice rules in fixed priority order and truncates to
// the cap, so higher-priority tips always survive.
func generateTips(profile models.ResumeProfile, job models.JobPosting) []string {

	var tips []string

	if missing := missingSkills(profile, job.Description); len(missing) > 0 {
		tips = append(tips, fmt.Sprintf("Consider learning %s to strengthen your application", missing[0]))
	}

	if profile.ExperienceYears < 2 {
		tips = append(tips, "Highlight any relevant projects or internships to compensate for limited experience")
	}

	if !profile.HasEducation {
		tips = append(tips, "Consider adding relevant certifications to strengthen your profile")
	}

	if strings.Contains(strings.ToLower(job.Title), "senior") && profile.ExperienceYears < 5 {
		tips = append(tips, "This senior role may require more experience - consider similar mid-level positions")
	}

	if strings.Contains(strings.ToLower(job.Location), "remote") {
		tips = append(tips, "Emphasize your remote work capabilities and communication skills")
	}

	if len(tips) > maxTips {
		tips = tips[:maxTips]
	}
	return tips
}

package models

// ResumeProfile holds the structured signals extracted from raw resume text.
// It is immutable after extraction: the pipeline only reads it.
type ResumeProfile struct {
	Skills          []string
	ExperienceYears int
	HasEducation    bool
	ExpectedRole    string
	Email           string
	Phone           string
}

func (p ResumeProfile) HasSkill(skill string) bool {
	for _, s := range p.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

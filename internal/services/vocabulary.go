package services

// skillCategory groups vocabulary terms that carry the same weight when a job
// posting mentions them. Weights sum to 1.0.
type skillCategory struct {
	name   string
	weight float64
	skills []string
}

var skillCategories = []skillCategory{
	{
		name:   "languages",
		weight: 0.30,
		skills: []string{"javascript", "python", "java", "typescript", "c++", "c#", "php", "ruby", "go", "swift", "kotlin"},
	},
	{
		name:   "frameworks",
		weight: 0.25,
		skills: []string{"react", "angular", "vue", "node.js", "express", "django", "flask", "spring", "laravel"},
	},
	{
		name:   "databases",
		weight: 0.15,
		skills: []string{"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch", "oracle"},
	},
	{
		name:   "devops",
		weight: 0.15,
		skills: []string{"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "terraform", "ci/cd"},
	},
	{
		name:   "tools",
		weight: 0.15,
		skills: []string{"git", "html", "css", "sass", "webpack", "babel", "jest", "testing"},
	},
}

// resumeSkillVocabulary is what the extractor looks for in resume text. Wider
// than the scoring categories: it also covers data/ML and soft-skill terms.
var resumeSkillVocabulary = []string{
	"javascript", "python", "java", "react", "node.js", "sql", "html", "css",
	"typescript", "angular", "vue", "php", "c++", "c#", "ruby", "go",
	"docker", "kubernetes", "aws", "azure", "gcp", "mongodb", "postgresql",
	"mysql", "redis", "elasticsearch", "git", "jenkins", "terraform",
	"machine learning", "data science", "artificial intelligence", "deep learning",
	"tensorflow", "pytorch", "pandas", "numpy", "scikit-learn", "tableau",
	"power bi", "excel", "scala", "spark", "hadoop", "kafka",
	"project management", "agile", "scrum", "kanban", "jira", "confluence",
	"leadership", "communication", "problem solving", "teamwork",
}

// commonlyRequestedSkills feed the missing-skills gap report. Display casing is
// kept for output; matching is done lowercased.
var commonlyRequestedSkills = []string{
	"SQL", "Docker", "Kubernetes", "AWS", "Azure", "MongoDB", "PostgreSQL",
	"Redis", "Elasticsearch", "Jenkins", "Terraform", "GraphQL", "REST API",
	"Microservices", "CI/CD", "Unit Testing", "Integration Testing",
}

var educationKeywords = []string{"bachelor", "master", "phd", "degree", "university", "college"}

var seniorityKeywords = []string{"senior", "lead", "experienced"}

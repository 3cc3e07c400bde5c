package sources

import (
	"context"
	"fmt"

	"github.com/nchavan/jobscout/internal/clients/adzuna"
	"github.com/nchavan/jobscout/internal/domain/models"
)

const adzunaSourceName = "adzuna"

type adzunaClient interface {
	Search(ctx context.Context, query, country string, perPage int) ([]adzuna.Job, error)
}

// AdzunaSource adapts the Adzuna search API to the JobPosting shape.
type AdzunaSource struct {
	client     adzunaClient
	configured bool
	maxResults int
}

func NewAdzunaSource(client adzunaClient, configured bool, maxResults int) *AdzunaSource {
	if maxResults <= 0 {
		maxResults = 20
	}
	return &AdzunaSource{client: client, configured: configured, maxResults: maxResults}
}

func (s *AdzunaSource) Name() string {
	return adzunaSourceName
}

func (s *AdzunaSource) IsConfigured() bool {
	return s.configured
}

func (s *AdzunaSource) Fetch(ctx context.Context, query Query) ([]models.JobPosting, error) {

	results, err := s.client.Search(ctx, query.SearchText(3), countryCode(query.Location), s.maxResults)
	if err != nil {
		return nil, err
	}

	postings := make([]models.JobPosting, 0, len(results))
	for _, job := range results {
		postings = append(postings, models.JobPosting{
			ID:          job.ID,
			Title:       job.Title,
			Company:     job.Company,
			Location:    orDefault(job.Location, query.Location),
			Description: job.Description,
			Salary:      formatAdzunaSalary(job.SalaryMin, job.SalaryMax),
			URL:         job.URL,
			CreatedAt:   job.CreatedAt,
			Source:      adzunaSourceName,
		})
	}
	return capJobs(postings, s.maxResults), nil
}

func formatAdzunaSalary(min, max float64) string {
	if min <= 0 || max <= 0 {
		return "Salary not specified"
	}
	return fmt.Sprintf("$%.0f - $%.0f", min, max)
}

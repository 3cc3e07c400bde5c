package sources

import (
	"context"
	"fmt"
	"strings"

	"github.com/nchavan/jobscout/internal/clients/jsearch"
	"github.com/nchavan/jobscout/internal/domain/models"
)

const jsearchSourceName = "jsearch"

type jsearchClient interface {
	Search(ctx context.Context, query, country string) ([]jsearch.Job, error)
}

// JSearchSource adapts the JSearch (RapidAPI) aggregator to the JobPosting
// shape. JSearch already spans several boards, so its cap is the largest.
type JSearchSource struct {
	client     jsearchClient
	configured bool
	maxResults int
}

func NewJSearchSource(client jsearchClient, configured bool, maxResults int) *JSearchSource {
	if maxResults <= 0 {
		maxResults = 20
	}
	return &JSearchSource{client: client, configured: configured, maxResults: maxResults}
}

func (s *JSearchSource) Name() string {
	return jsearchSourceName
}

func (s *JSearchSource) IsConfigured() bool {
	return s.configured
}

func (s *JSearchSource) Fetch(ctx context.Context, query Query) ([]models.JobPosting, error) {

	searchText := strings.TrimSpace(query.SearchText(2) + " " + query.Location)

	results, err := s.client.Search(ctx, searchText, strings.ToUpper(countryCode(query.Location)))
	if err != nil {
		return nil, err
	}

	postings := make([]models.JobPosting, 0, len(results))
	for _, job := range results {
		postings = append(postings, models.JobPosting{
			ID:          job.ID,
			Title:       job.Title,
			Company:     job.Company,
			Location:    orDefault(jsearchLocation(job), query.Location),
			Description: orDefaultDescription(job.Description),
			Salary:      formatJSearchSalary(job.MinSalary, job.MaxSalary),
			URL:         job.URL,
			CreatedAt:   job.CreatedAt,
			Source:      jsearchSourceName,
		})
	}
	return capJobs(postings, s.maxResults), nil
}

func jsearchLocation(job jsearch.Job) string {
	if job.City == "" {
		return ""
	}
	if job.State == "" {
		return job.City
	}
	return job.City + ", " + job.State
}

func formatJSearchSalary(min, max float64) string {
	switch {
	case min > 0 && max > 0:
		return fmt.Sprintf("$%.0f - $%.0f", min, max)
	case min > 0:
		return fmt.Sprintf("$%.0f+", min)
	case max > 0:
		return fmt.Sprintf("Up to $%.0f", max)
	default:
		return "Salary not disclosed"
	}
}

func orDefaultDescription(description string) string {
	if description == "" {
		return "No description available"
	}
	return description
}

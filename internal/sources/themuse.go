package sources

import (
	"context"

	"github.com/nchavan/jobscout/internal/clients/themuse"
	"github.com/nchavan/jobscout/internal/domain/models"
)

const museSourceName = "themuse"

type museClient interface {
	Search(ctx context.Context, category, location string) ([]themuse.Job, error)
}

// MuseSource adapts The Muse public board. It needs no credential, so it is
// always configured, and it reports no salary data.
type MuseSource struct {
	client     museClient
	category   string
	maxResults int
}

func NewMuseSource(client museClient, category string, maxResults int) *MuseSource {
	if category == "" {
		category = "Engineering"
	}
	if maxResults <= 0 {
		maxResults = 10
	}
	return &MuseSource{client: client, category: category, maxResults: maxResults}
}

func (s *MuseSource) Name() string {
	return museSourceName
}

func (s *MuseSource) IsConfigured() bool {
	return true
}

func (s *MuseSource) Fetch(ctx context.Context, query Query) ([]models.JobPosting, error) {

	results, err := s.client.Search(ctx, s.category, query.Location)
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
			Description: orDefaultDescription(job.Description),
			Salary:      "Competitive salary",
			URL:         job.URL,
			CreatedAt:   job.CreatedAt,
			Source:      museSourceName,
		})
	}
	return capJobs(postings, s.maxResults), nil
}

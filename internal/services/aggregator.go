package services

import (
	"context"
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	log "github.com/sirupsen/logrus"

	"github.com/nchavan/jobscout/internal/domain/models"
	"github.com/nchavan/jobscout/internal/events"
	"github.com/nchavan/jobscout/internal/logger"
	"github.com/nchavan/jobscout/internal/metrics"
	"github.com/nchavan/jobscout/internal/sources"
)

// Aggregator fans a query out to every configured source, waits for all of
// them to settle, and merges the successes. A failing source contributes zero
// postings; aggregation itself cannot fail.
type Aggregator struct {
	bus           EventBus.Bus
	sources       []sources.Source
	maxResults    int
	sourceTimeout time.Duration
}

func NewAggregator(bus EventBus.Bus, srcs []sources.Source, maxResults int, sourceTimeout time.Duration) *Aggregator {

	if maxResults <= 0 {
		maxResults = 20
	}
	if sourceTimeout <= 0 {
		sourceTimeout = 10 * time.Second
	}

	return &Aggregator{
		bus:           bus,
		sources:       srcs,
		maxResults:    maxResults,
		sourceTimeout: sourceTimeout,
	}
}

func (a *Aggregator) Aggregate(ctx context.Context, query sources.Query) []models.JobPosting {

	// indexed slots keep the merge order equal to registration order, not
	// completion order, so identical source outputs merge reproducibly.
	results := make([][]models.JobPosting, len(a.sources))

	var wg sync.WaitGroup
	for i, source := range a.sources {
		if !source.IsConfigured() {
			log.Debugf("source %v is not configured, skipping", source.Name())
			continue
		}

		wg.Add(1)
		go func(i int, source sources.Source) {
			defer wg.Done()
			results[i] = a.fetchFromSource(ctx, source, query)
		}(i, source)
	}
	wg.Wait()

	merged := a.deduplicate(results)

	log.Infof("aggregated %v unique postings for role %q in %q", len(merged), query.Role, query.Location)
	return merged
}

func (a *Aggregator) fetchFromSource(ctx context.Context, source sources.Source, query sources.Query) []models.JobPosting {

	fetchCtx, cancel := context.WithTimeout(ctx, a.sourceTimeout)
	defer cancel()

	start := time.Now()
	postings, err := source.Fetch(fetchCtx, query)
	metrics.SourceFetchDuration.WithLabelValues(source.Name()).Observe(time.Since(start).Seconds())

	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeSourceAPI).
			Errorf("failed to fetch postings from %v: %v", source.Name(), err)
		a.bus.Publish(events.SourceFailedTopic, events.SourceFailed{Source: source.Name(), Err: err.Error()})
		return nil
	}

	metrics.SourceJobsCounter.WithLabelValues(source.Name()).Add(float64(len(postings)))
	log.Infof("source %v returned %v postings", source.Name(), len(postings))
	return postings
}

// deduplicate merges per-source results in registration order and keeps the
// first posting seen for each (title, company) key, so earlier sources win.
func (a *Aggregator) deduplicate(results [][]models.JobPosting) []models.JobPosting {

	seen := make(map[string]struct{})
	var merged []models.JobPosting

	for _, postings := range results {
		for _, posting := range postings {
			key := posting.DedupKey()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, posting)

			if len(merged) == a.maxResults {
				return merged
			}
		}
	}
	return merged
}

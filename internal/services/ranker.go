package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	gocache "github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"

	"github.com/nchavan/jobscout/internal/domain/models"
	"github.com/nchavan/jobscout/internal/events"
	"github.com/nchavan/jobscout/internal/logger"
	"github.com/nchavan/jobscout/internal/metrics"
	"github.com/nchavan/jobscout/internal/sources"
)

type tipEnhancer interface {
	Enhance(ctx context.Context, profile models.ResumeProfile, jobs []models.ScoredJob) []models.ScoredJob
}

// Ranker drives the full pipeline: aggregate candidates, score each one,
// sort by score. Identical requests within the cache TTL are answered from
// cache to spare the external sources.
type Ranker struct {
	bus        EventBus.Bus
	aggregator *Aggregator
	scorer     *Scorer
	enhancer   tipEnhancer
	cache      *gocache.Cache
}

func NewRanker(bus EventBus.Bus, aggregator *Aggregator, scorer *Scorer, cacheTTL time.Duration) *Ranker {
	return &Ranker{
		bus:        bus,
		aggregator: aggregator,
		scorer:     scorer,
		cache:      gocache.New(cacheTTL, 2*cacheTTL),
	}
}

// SetEnhancer wires the optional AI tip enhancer. Ranking works without one.
func (r *Ranker) SetEnhancer(enhancer tipEnhancer) {
	r.enhancer = enhancer
}

func (r *Ranker) Cache() *gocache.Cache {
	return r.cache
}

// Match aggregates postings for the profile's expected role and ranks them.
// An empty result is a valid outcome, not an error.
func (r *Ranker) Match(ctx context.Context, profile models.ResumeProfile, location string) []models.ScoredJob {

	metrics.MatchRequestsCounter.Inc()
	start := time.Now()
	defer func() {
		metrics.MatchDuration.Observe(time.Since(start).Seconds())
	}()

	cacheID := requestCacheID(profile, location)
	if cached, found := r.cache.Get(cacheID); found {
		log.Debugf("served match for role %q from cache", profile.ExpectedRole)
		return cached.([]models.ScoredJob)
	}

	query := sources.Query{
		Role:     profile.ExpectedRole,
		Skills:   profile.Skills,
		Location: location,
	}

	jobs := r.aggregator.Aggregate(ctx, query)
	scored := r.Rank(profile, jobs)

	if r.enhancer != nil {
		scored = r.enhancer.Enhance(ctx, profile, scored)
	}

	if err := r.cache.Add(cacheID, scored, gocache.DefaultExpiration); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeCache).
			Errorf("failed to cache match results: %v", err)
	}

	r.bus.Publish(events.MatchCompletedTopic, events.MatchCompleted{
		Role:     profile.ExpectedRole,
		Location: location,
		Results:  len(scored),
	})

	return scored
}

// Rank scores every posting independently and sorts descending by score.
// The sort is stable: tied postings keep their aggregation order. Output
// length always equals input length.
func (r *Ranker) Rank(profile models.ResumeProfile, jobs []models.JobPosting) []models.ScoredJob {

	scored := make([]models.ScoredJob, len(jobs))

	var wg sync.WaitGroup
	for i, job := range jobs {
		wg.Add(1)
		go func(i int, job models.JobPosting) {
			defer wg.Done()
			scored[i] = r.scorer.Score(profile, job)
		}(i, job)
	}
	wg.Wait()

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchScore > scored[j].MatchScore
	})

	return scored
}

func requestCacheID(profile models.ResumeProfile, location string) string {
	hash := sha256.Sum256([]byte(profile.ExpectedRole + "|" + location + "|" + strings.Join(profile.Skills, ",")))
	return hex.EncodeToString(hash[:])
}

package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/asaskevich/EventBus"
	log "github.com/sirupsen/logrus"

	"github.com/nchavan/jobscout/internal/clients/adzuna"
	"github.com/nchavan/jobscout/internal/clients/gemini"
	"github.com/nchavan/jobscout/internal/clients/jsearch"
	"github.com/nchavan/jobscout/internal/clients/themuse"
	"github.com/nchavan/jobscout/internal/config"
	"github.com/nchavan/jobscout/internal/events"
	"github.com/nchavan/jobscout/internal/logger"
	"github.com/nchavan/jobscout/internal/metrics"
	"github.com/nchavan/jobscout/internal/server"
	"github.com/nchavan/jobscout/internal/services"
	"github.com/nchavan/jobscout/internal/sources"
)

// registration order is the dedup keep-priority: earlier sources win ties.
func buildSources(cfg *config.Config) []sources.Source {

	adzunaClient := adzuna.NewClient(cfg.Sources.Adzuna.AppID, cfg.Sources.Adzuna.AppKey)
	adzunaClient.SetRateLimit(cfg.Sources.Adzuna.MaxRequestsPerSecond)

	jsearchClient := jsearch.NewClient(cfg.Sources.JSearch.APIKey)
	jsearchClient.SetRateLimit(cfg.Sources.JSearch.MaxRequestsPerSecond)

	museClient := themuse.NewClient()
	museClient.SetRateLimit(cfg.Sources.TheMuse.MaxRequestsPerSecond)

	return []sources.Source{
		sources.NewAdzunaSource(adzunaClient, cfg.Sources.Adzuna.Configured(), cfg.Sources.Adzuna.MaxResults),
		sources.NewJSearchSource(jsearchClient, cfg.Sources.JSearch.Configured(), cfg.Sources.JSearch.MaxResults),
		sources.NewMuseSource(museClient, cfg.Sources.TheMuse.Category, cfg.Sources.TheMuse.MaxResults),
	}
}

func buildRanker(ctx context.Context, cfg *config.Config, bus EventBus.Bus) *services.Ranker {

	aggregator := services.NewAggregator(bus, buildSources(cfg), cfg.Matcher.MaxResults, cfg.Matcher.SourceTimeout)
	scorer := services.NewScorer(time.Now().UnixNano())
	ranker := services.NewRanker(bus, aggregator, scorer, cfg.Matcher.CacheTTL)

	if !cfg.AI.Configured() {
		log.Info("ai key is not configured, tip enhancement disabled")
		return ranker
	}

	aiClient, err := gemini.NewClient(ctx, cfg.AI.Key, gemini.Model(cfg.AI.Model))
	if err != nil {
		log.Fatalf("can't create ai client: %v", err)
	}
	aiClient.SetMinuteRateLimit(cfg.AI.MaxRequestsPerMinute)
	aiClient.SetDayRateLimit(cfg.AI.MaxRequestsPerDay)

	ranker.SetEnhancer(services.NewAIEnhancer(aiClient, cfg.AI.TopJobs))
	return ranker
}

func subscribeEventLoggers(bus EventBus.Bus) {

	err := bus.Subscribe(events.MatchCompletedTopic, func(event events.MatchCompleted) {
		log.Infof("match completed for role %q in %q: %v postings", event.Role, event.Location, event.Results)
	})
	if err != nil {
		log.Fatalf("can't subscribe to match events: %v", err)
	}

	err = bus.Subscribe(events.SourceFailedTopic, func(event events.SourceFailed) {
		log.Warnf("source %v degraded: %v", event.Source, event.Err)
	})
	if err != nil {
		log.Fatalf("can't subscribe to source events: %v", err)
	}
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer(cfg.Server.MetricsPort)

	bus := EventBus.New()
	subscribeEventLoggers(bus)

	ranker := buildRanker(ctx, cfg, bus)

	janitor, err := services.NewCacheJanitor(ranker.Cache())
	if err != nil {
		log.Fatalf("can't create cache janitor: %v", err)
	}
	defer janitor.Stop()

	handler := server.NewHandler(services.NewResumeExtractor(), ranker)
	srv := server.NewServer(cfg.Server.Port, handler)

	go func() {
		if err := srv.Run(); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Infof("listening on :%d", cfg.Server.Port)

	<-ctx.Done()

	log.Info("Shutting down services...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("server shutdown: %v", err)
	}
	log.Info("Services stopped.")
}

package services

import (
	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// CacheJanitor purges expired match results on a schedule and reports how
// many entries remain, so a stuck cache shows up in the logs.
type CacheJanitor struct {
	cache *gocache.Cache
	cron  *cron.Cron
}

func NewCacheJanitor(cache *gocache.Cache) (*CacheJanitor, error) {

	if cache == nil {
		return nil, errors.New("cache must not be nil")
	}

	janitor := &CacheJanitor{
		cache: cache,
		cron:  cron.New(),
	}

	_, err := janitor.cron.AddFunc("@hourly", janitor.purgeExpired)
	if err != nil {
		return nil, err
	}

	janitor.cron.Start()
	log.Info("results cache janitor started")
	return janitor, nil
}

func (j *CacheJanitor) Stop() {
	j.cron.Stop()
}

func (j *CacheJanitor) purgeExpired() {
	j.cache.DeleteExpired()
	log.Infof("purged expired match results, %v entries remain", j.cache.ItemCount())
}

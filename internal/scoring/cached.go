package scoring

import (
	"context"
	"time"

	"github.com/maxaizer/job-hunter/internal/domain/models"
	gocache "github.com/patrickmn/go-cache"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

// CachedScorer remembers matches per resume and job so a refresh only scores new postings.
type CachedScorer struct {
	scorer Scorer
	cache  *gocache.Cache
}

func NewCachedScorer(scorer Scorer, ttl time.Duration) *CachedScorer {
	return &CachedScorer{scorer: scorer, cache: gocache.New(ttl, 2*ttl)}
}

func (c *CachedScorer) Score(ctx context.Context, resume *models.Resume, jobs []models.Job) ([]models.JobMatch, error) {
	if resume == nil {
		return nil, ErrNoResume
	}

	cached := make(map[string]models.JobMatch)
	var pending []models.Job
	for _, job := range jobs {
		if value, found := c.cache.Get(cacheKey(resume, job.ID)); found {
			cached[job.ID] = value.(models.JobMatch)
		} else {
			pending = append(pending, job)
		}
	}

	if len(pending) > 0 {
		fresh, err := c.scorer.Score(ctx, resume, pending)
		if err != nil {
			return nil, err
		}
		for _, match := range fresh {
			c.cache.Set(cacheKey(resume, match.Job.ID), match, gocache.DefaultExpiration)
			cached[match.Job.ID] = match
		}
	}
	log.Debugf("scored %d jobs, %d served from cache", len(jobs), len(jobs)-len(pending))

	return lo.FilterMap(jobs, func(job models.Job, _ int) (models.JobMatch, bool) {
		match, ok := cached[job.ID]
		if ok {
			match.Job = job
			delete(cached, job.ID)
		}
		return match, ok
	}), nil
}

func cacheKey(resume *models.Resume, jobID string) string {
	return resume.ID + "/" + jobID
}

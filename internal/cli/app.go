package cli

import (
	"context"
	"io"
	"net/http"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/job-hunter/internal/clients/functions"
	"github.com/maxaizer/job-hunter/internal/clients/gemini"
	"github.com/maxaizer/job-hunter/internal/config"
	"github.com/maxaizer/job-hunter/internal/repositories"
	"github.com/maxaizer/job-hunter/internal/scoring"
	"github.com/maxaizer/job-hunter/internal/services"
	"github.com/maxaizer/job-hunter/internal/store"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type keyValueStore interface {
	Save(ctx context.Context, key string, data []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
	Remove(ctx context.Context, key string) error
}

// app holds everything a command may need. Built once per process.
type app struct {
	cfg       *config.Config
	bus       EventBus.Bus
	db        *repositories.DbContext
	searches  *repositories.Searches
	alerts    *repositories.Alerts
	functions *functions.Client
	resumes   *services.ResumeService
	store     *store.Store
	closers   []io.Closer
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{cfg: cfg, bus: EventBus.New()}

	db, err := repositories.NewDbContext(cfg.Storage.ConnectionString)
	if err != nil {
		return nil, errors.Wrap(err, "can't create db context")
	}
	a.db = db
	a.closers = append(a.closers, db)

	if err = db.Migrate(); err != nil {
		a.Close()
		return nil, errors.Wrap(err, "can't migrate db context")
	}

	a.searches = repositories.NewSearchRepository(db.DB)
	a.alerts = repositories.NewAlertsRepository(db.DB)

	kv, err := a.keyValueStore(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.functions = functions.NewClient(cfg.Functions.BaseURL, cfg.Functions.APIKey)
	if cfg.Functions.Timeout > 0 {
		a.functions.SetHTTPClient(&http.Client{Timeout: cfg.Functions.Timeout})
	}
	if cfg.Functions.MaxRequestsPerSecond > 0 {
		a.functions.SetRateLimit(cfg.Functions.MaxRequestsPerSecond)
	}
	a.functions.SetRetries(cfg.Functions.Retries+1, cfg.Functions.RetryDelay)

	scorer, err := a.scorer(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.resumes = services.NewResumeService(a.functions)
	a.store = store.New(kv, a.bus, a.functions, scorer)
	a.store.Load(ctx)
	return a, nil
}

func (a *app) keyValueStore(ctx context.Context) (keyValueStore, error) {
	switch a.cfg.Storage.Driver {
	case config.DriverRedis:
		redisData, err := repositories.NewRedisDataRepository(a.cfg.Storage.RedisURL)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, redisData)
		if err = redisData.Ping(ctx); err != nil {
			return nil, errors.Wrap(err, "redis is unreachable")
		}
		return redisData, nil
	default:
		return repositories.NewDataRepository(a.db.DB), nil
	}
}

func (a *app) scorer(ctx context.Context) (scoring.Scorer, error) {
	var scorer scoring.Scorer

	switch a.cfg.Scoring.Provider {
	case config.ProviderKeyword:
		scorer = scoring.NewKeywordScorer()
	case config.ProviderGemini:
		model := gemini.Model15Flash
		if a.cfg.Scoring.AIModel != "" {
			model = gemini.Model(a.cfg.Scoring.AIModel)
		}
		aiClient, err := gemini.NewClient(ctx, a.cfg.Scoring.AIKey, model)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, aiClient)
		if a.cfg.Scoring.AIMaxRequestsPerMinute > 0 {
			aiClient.SetMinuteRateLimit(a.cfg.Scoring.AIMaxRequestsPerMinute)
		}
		if a.cfg.Scoring.AIMaxRequestsPerDay > 0 {
			aiClient.SetDayRateLimit(a.cfg.Scoring.AIMaxRequestsPerDay)
		}
		aiClient.SetSystemInstruction(scoring.GeminiRoleInstruction)
		scorer = scoring.NewGeminiScorer(aiClient)
	default:
		scorer = scoring.NewRemoteScorer(a.functions)
	}

	if a.cfg.Scoring.CacheTTL > 0 {
		scorer = scoring.NewCachedScorer(scorer, a.cfg.Scoring.CacheTTL)
	}
	log.Debugf("using %s scorer", a.cfg.Scoring.Provider)
	return scorer, nil
}

func (a *app) fetchParams(query string, sources []string, limit int) services.FetchParams {
	if query == "" {
		query = a.cfg.Refresh.Query
	}
	if len(sources) == 0 {
		sources = a.cfg.Refresh.Sources
	}
	if limit == 0 {
		limit = a.cfg.Refresh.Limit
	}
	return services.FetchParams{Query: query, Sources: sources, Limit: limit}
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			log.Errorf("failed to close resource: %v", err)
		}
	}
	a.closers = nil
}

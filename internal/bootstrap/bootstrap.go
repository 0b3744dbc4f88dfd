// Package bootstrap assembles the service object graph from configuration.
// Both entry points (the API server and the CLI) build through here so the
// wiring exists in exactly one place.
package bootstrap

import (
	"github.com/gin-gonic/gin"

	"github.com/turtacn/pharmyrus/internal/application/discovery"
	"github.com/turtacn/pharmyrus/internal/config"
	"github.com/turtacn/pharmyrus/internal/infrastructure/credentials"
	"github.com/turtacn/pharmyrus/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/pharmyrus/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/pharmyrus/internal/infrastructure/sources"
	"github.com/turtacn/pharmyrus/internal/infrastructure/webfetch"
	ihttp "github.com/turtacn/pharmyrus/internal/interfaces/http"
	"github.com/turtacn/pharmyrus/internal/interfaces/http/handlers"
	"github.com/turtacn/pharmyrus/pkg/errors"
)

// App is the assembled service.
type App struct {
	Config    *config.Config
	Log       logging.Logger
	Collector prometheus.MetricsCollector
	Pipeline  *discovery.Pipeline

	keys *credentials.Rotator
}

// New validates cfg and builds the full object graph.  When metrics are
// disabled the collector is a no-op and the /metrics route is not mounted.
func New(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidParam, "invalid configuration")
	}

	log, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "logger construction failed")
	}

	var collector prometheus.MetricsCollector
	var metrics *prometheus.PipelineMetrics
	if cfg.Metrics.Enabled {
		collector = prometheus.NewCollector(cfg.Metrics.Namespace)
		metrics = prometheus.NewPipelineMetrics(collector)
	} else {
		collector = prometheus.NewNopCollector()
	}

	keys, err := credentials.NewRotator(cfg.Credentials.SearchAPIKeys)
	if err != nil {
		return nil, err
	}

	fetcher := webfetch.NewFetcher(log, metrics).WithMaxAttempts(cfg.Pipeline.MaxAttempts)

	pipeline := discovery.NewPipeline(
		cfg.Pipeline,
		sources.NewSynonymClient(fetcher, cfg.Sources.Synonyms, log),
		sources.NewPatentSearchClient(fetcher, cfg.Sources.Patents, log),
		sources.NewRegistryClient(fetcher, cfg.Sources.Registry, log),
		keys,
		log,
		metrics,
	)

	return &App{
		Config:    cfg,
		Log:       log,
		Collector: collector,
		Pipeline:  pipeline,
		keys:      keys,
	}, nil
}

// Router builds the HTTP routing tree over the assembled pipeline.
func (a *App) Router() *gin.Engine {
	var collector prometheus.MetricsCollector
	if a.Config.Metrics.Enabled {
		collector = a.Collector
	}

	return ihttp.NewRouter(a.Config.Server, ihttp.RouterDeps{
		Search:    handlers.NewSearchHandler(a.Pipeline),
		Health:    handlers.NewHealthHandler(a.keys.Size()),
		Collector: collector,
		Log:       a.Log,
	})
}

// HTTPServer builds the HTTP server over the assembled pipeline.
func (a *App) HTTPServer() *ihttp.Server {
	return ihttp.NewServer(a.Config.Server, a.Router(), a.Log)
}

package sources

import (
	"context"
	"net/url"

	"github.com/turtacn/pharmyrus/internal/config"
	"github.com/turtacn/pharmyrus/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/pharmyrus/internal/infrastructure/webfetch"
)

// registrySearchPath is the crawler's patent search endpoint, relative to the
// configured base URL.
const registrySearchPath = "/api/data/inpi/patents"

// RegistryClient queries the national patent-office crawler.  The crawler
// proxies a slow upstream registry, hence the long per-call timeout.
type RegistryClient struct {
	fetcher *webfetch.Fetcher
	cfg     config.RegistryCrawlerConfig
	log     logging.Logger
}

// NewRegistryClient constructs a RegistryClient.
func NewRegistryClient(fetcher *webfetch.Fetcher, cfg config.RegistryCrawlerConfig, log logging.Logger) *RegistryClient {
	return &RegistryClient{fetcher: fetcher, cfg: cfg, log: log.Named("registry-crawler")}
}

// Search looks the term up in the registry and returns the raw JSON response,
// or nil when the crawler yields nothing after retries.
func (c *RegistryClient) Search(ctx context.Context, term string) []byte {
	params := url.Values{}
	params.Set("medicine", term)

	return c.fetcher.GetJSON(ctx, c.cfg.BaseURL+registrySearchPath, params, webfetch.Options{
		Timeout:      c.cfg.Timeout,
		Collaborator: collaboratorRegistry,
	})
}

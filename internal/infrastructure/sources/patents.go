package sources

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/turtacn/pharmyrus/internal/config"
	"github.com/turtacn/pharmyrus/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/pharmyrus/internal/infrastructure/webfetch"
)

// PatentSearchClient queries a SerpApi-compatible search endpoint.  It serves
// both halves of the pipeline: keyword searches during discovery and the
// link-following hops of the family resolution chain.
type PatentSearchClient struct {
	fetcher *webfetch.Fetcher
	cfg     config.PatentSearchConfig
	log     logging.Logger
}

// NewPatentSearchClient constructs a PatentSearchClient.
func NewPatentSearchClient(fetcher *webfetch.Fetcher, cfg config.PatentSearchConfig, log logging.Logger) *PatentSearchClient {
	return &PatentSearchClient{fetcher: fetcher, cfg: cfg, log: log.Named("patent-search")}
}

// Search runs one query against the given engine and returns the raw JSON
// response, or nil when the upstream yields nothing after retries.  num is
// the requested result count; zero leaves the engine default.
func (c *PatentSearchClient) Search(ctx context.Context, engine, query, apiKey string, num int) []byte {
	params := url.Values{}
	params.Set("engine", engine)
	params.Set("q", query)
	params.Set("api_key", apiKey)
	if num > 0 {
		params.Set("num", strconv.Itoa(num))
	}

	return c.fetcher.GetJSON(ctx, c.cfg.BaseURL, params, webfetch.Options{
		Timeout:      c.cfg.Timeout,
		Collaborator: collaboratorPatents,
	})
}

// FetchLink follows an intermediate chain link verbatim.  The link already
// embeds its own query string, credentials included.
func (c *PatentSearchClient) FetchLink(ctx context.Context, link string) []byte {
	return c.fetcher.GetJSON(ctx, link, nil, webfetch.Options{
		Timeout:      c.cfg.Timeout,
		Collaborator: collaboratorPatents,
	})
}

// FetchDetail fetches the full patent detail record behind link, appending
// apiKey when the link does not already carry one.  Detail payloads are much
// larger than search responses, so the generous detail timeout applies.
func (c *PatentSearchClient) FetchDetail(ctx context.Context, link, apiKey string) []byte {
	if !strings.Contains(link, "api_key=") {
		sep := "?"
		if strings.Contains(link, "?") {
			sep = "&"
		}
		link = link + sep + "api_key=" + url.QueryEscape(apiKey)
	}

	return c.fetcher.GetJSON(ctx, link, nil, webfetch.Options{
		Timeout:      c.cfg.DetailTimeout,
		Collaborator: collaboratorPatents,
	})
}

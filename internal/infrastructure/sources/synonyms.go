// Package sources holds the HTTP clients for the three external
// collaborators of the discovery pipeline: the chemical synonym database,
// the patent/web search API, and the national registry crawler.  Every call
// goes through the shared webfetch.Fetcher, so retry behaviour and metrics
// are uniform across collaborators.
package sources

import (
	"context"
	"net/url"

	"github.com/tidwall/gjson"

	"github.com/turtacn/pharmyrus/internal/config"
	"github.com/turtacn/pharmyrus/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/pharmyrus/internal/infrastructure/webfetch"
	"github.com/turtacn/pharmyrus/pkg/errors"
)

// Collaborator labels recorded on the external-call metric.
const (
	collaboratorSynonymDB = "synonym_db"
	collaboratorPatents   = "patent_search"
	collaboratorRegistry  = "registry_crawler"
)

// SynonymClient queries a PubChem-compatible PUG REST endpoint for compound
// synonyms.
type SynonymClient struct {
	fetcher *webfetch.Fetcher
	cfg     config.SynonymSourceConfig
	log     logging.Logger
}

// NewSynonymClient constructs a SynonymClient.
func NewSynonymClient(fetcher *webfetch.Fetcher, cfg config.SynonymSourceConfig, log logging.Logger) *SynonymClient {
	return &SynonymClient{fetcher: fetcher, cfg: cfg, log: log.Named("synonym-db")}
}

// Synonyms returns the raw synonym list for the named compound.  An unknown
// compound or an unreachable database yields an error; callers treat it as
// "no enrichment available" and continue with the bare molecule name.
func (c *SynonymClient) Synonyms(ctx context.Context, name string) ([]string, error) {
	target := c.cfg.BaseURL + "/compound/name/" + url.PathEscape(name) + "/synonyms/JSON"

	payload := c.fetcher.GetJSON(ctx, target, nil, webfetch.Options{
		Timeout:      c.cfg.Timeout,
		Collaborator: collaboratorSynonymDB,
	})
	if payload == nil {
		return nil, errors.New(errors.CodeSourceUnavailable, "synonym database returned no data").WithDetail(name)
	}

	list := gjson.GetBytes(payload, "InformationList.Information.0.Synonym")
	if !list.Exists() {
		return nil, errors.New(errors.CodeSourceParseError, "synonym payload has no synonym list").WithDetail(name)
	}

	var out []string
	list.ForEach(func(_, v gjson.Result) bool {
		out = append(out, v.String())
		return true
	})

	c.log.Debug("synonyms fetched", logging.String("name", name), logging.Int("count", len(out)))
	return out, nil
}

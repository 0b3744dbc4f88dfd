package discovery

import (
	"context"
	"sort"

	"github.com/tidwall/gjson"

	"github.com/turtacn/pharmyrus/internal/domain/molecule"
	"github.com/turtacn/pharmyrus/internal/domain/patent"
	"github.com/turtacn/pharmyrus/internal/infrastructure/credentials"
	"github.com/turtacn/pharmyrus/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/pharmyrus/internal/infrastructure/monitoring/prometheus"
)

// Search engines used during discovery.  Queries alternate: every third
// query hits the patent engine for structured results, the rest hit the web
// engine whose snippets surface filing identifiers the patent index misses.
const (
	enginePatents = "google_patents"
	engineWeb     = "google"

	patentsResultCount = 20
	webResultCount     = 10
)

// Discoverer runs the multi-strategy query sweep and harvests international
// filing identifiers from the results.
type Discoverer struct {
	searcher PatentSearcher
	keys     *credentials.Rotator
	pacer    *Pacer
	log      logging.Logger
	metrics  *prometheus.PipelineMetrics
}

// NewDiscoverer constructs a Discoverer.  metrics may be nil.
func NewDiscoverer(searcher PatentSearcher, keys *credentials.Rotator, pacer *Pacer, log logging.Logger, metrics *prometheus.PipelineMetrics) *Discoverer {
	return &Discoverer{
		searcher: searcher,
		keys:     keys,
		pacer:    pacer,
		log:      log.Named("discovery"),
		metrics:  metrics,
	}
}

// Discover executes every query for the profile sequentially under pacing
// and returns the union of all filing identifiers found, sorted ascending.
// Failed queries are skipped; a cancelled context ends the sweep early with
// whatever was collected so far.
func (d *Discoverer) Discover(ctx context.Context, profile molecule.Profile, trace *Trace) []patent.FilingID {
	queries := BuildQueries(profile)
	trace.Addf("[discovery] built %d queries", len(queries))

	found := make(map[patent.FilingID]struct{})

	for i, q := range queries {
		if err := d.pacer.Wait(ctx); err != nil {
			trace.Addf("[discovery] aborted at query %d: %v", i, err)
			break
		}

		engine, num := engineWeb, webResultCount
		if i%3 == 0 {
			engine, num = enginePatents, patentsResultCount
		}

		if d.metrics != nil {
			d.metrics.DiscoveryQueriesTotal.WithLabelValues(q.Strategy, engine).Inc()
		}

		payload := d.searcher.Search(ctx, engine, q.Text, d.keys.Next(), num)
		if payload == nil {
			trace.Addf("[discovery] query %d (%s) returned no data", i, q.Strategy)
			continue
		}

		d.harvest(payload, found)
	}

	out := make([]patent.FilingID, 0, len(found))
	for id := range found {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	trace.Addf("[discovery] %d unique filings found", len(out))
	d.log.Info("discovery sweep complete",
		logging.Int("queries", len(queries)), logging.Int("filings", len(out)))
	return out
}

// harvest extracts filing identifiers from one search response into found.
// Web results are scanned as free text over title, snippet and link;
// structured patent results contribute their publication numbers directly.
func (d *Discoverer) harvest(payload []byte, found map[patent.FilingID]struct{}) {
	gjson.GetBytes(payload, "organic_results").ForEach(func(_, r gjson.Result) bool {
		text := r.Get("title").String() + " " + r.Get("snippet").String() + " " + r.Get("link").String()
		for _, id := range patent.ExtractFilingIDs(text) {
			found[id] = struct{}{}
		}
		return true
	})

	gjson.GetBytes(payload, "patents").ForEach(func(_, p gjson.Result) bool {
		if id := patent.FromPublicationNumber(p.Get("publication_number").String()); id != "" {
			found[id] = struct{}{}
		}
		return true
	})
}

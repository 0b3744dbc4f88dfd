package discovery

import (
	"context"
	"sort"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/turtacn/pharmyrus/internal/domain/patent"
	"github.com/turtacn/pharmyrus/internal/infrastructure/credentials"
	"github.com/turtacn/pharmyrus/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/pharmyrus/internal/infrastructure/monitoring/prometheus"
)

// Caps on the two weakly-related detail sub-fields.  Citation and similarity
// lists run into the hundreds on foundational patents and their tails are
// mostly noise.
const (
	maxScannedCitations = 50
	maxScannedSimilar   = 30
)

// Resolver walks one international filing through the three-hop family
// resolution chain: patent-engine search, intermediate endpoint, full detail
// record.  National filings are then extracted from five sub-fields of the
// detail record.
type Resolver struct {
	searcher PatentSearcher
	keys     *credentials.Rotator
	pacer    *Pacer
	log      logging.Logger
	metrics  *prometheus.PipelineMetrics
}

// NewResolver constructs a Resolver.  metrics may be nil.
func NewResolver(searcher PatentSearcher, keys *credentials.Rotator, pacer *Pacer, log logging.Logger, metrics *prometheus.PipelineMetrics) *Resolver {
	return &Resolver{
		searcher: searcher,
		keys:     keys,
		pacer:    pacer,
		log:      log.Named("resolution"),
		metrics:  metrics,
	}
}

// Resolve runs the chain for one filing and returns its terminal outcome.
// A hop that yields no payload ends the chain with StatusError; a payload
// missing the link to the next hop ends it with StatusSkipped.  Either way
// the pipeline moves on to the next filing.
func (r *Resolver) Resolve(ctx context.Context, id patent.FilingID, trace *Trace) patent.Outcome {
	outcome := patent.NewOutcome(id)
	defer func() {
		if r.metrics != nil {
			r.metrics.ResolutionOutcomesTotal.WithLabelValues(string(outcome.Status)).Inc()
		}
	}()

	// Hop 1: look the filing up on the patent engine.
	if err := r.pacer.Wait(ctx); err != nil {
		outcome.Status, outcome.Reason = patent.StatusError, err.Error()
		return outcome
	}
	searchData := r.searcher.Search(ctx, enginePatents, string(id), r.keys.Next(), 0)
	if searchData == nil {
		outcome.Status, outcome.Reason = patent.StatusError, patent.ReasonNoResponse
		return outcome
	}

	endpoint := gjson.GetBytes(searchData, "search_metadata.json_endpoint").String()
	if endpoint == "" {
		outcome.Status, outcome.Reason = patent.StatusSkipped, patent.ReasonNoEndpoint
		return outcome
	}

	// Hop 2: the intermediate endpoint carries the link to the detail record.
	if err := r.pacer.Wait(ctx); err != nil {
		outcome.Status, outcome.Reason = patent.StatusError, err.Error()
		return outcome
	}
	endpointData := r.searcher.FetchLink(ctx, endpoint)
	if endpointData == nil {
		outcome.Status, outcome.Reason = patent.StatusError, patent.ReasonNoResponse
		return outcome
	}

	results := gjson.GetBytes(endpointData, "organic_results")
	if !results.Exists() || len(results.Array()) == 0 {
		outcome.Status, outcome.Reason = patent.StatusSkipped, patent.ReasonNoResults
		return outcome
	}
	detailLink := results.Array()[0].Get("serpapi_link").String()
	if detailLink == "" {
		outcome.Status, outcome.Reason = patent.StatusSkipped, patent.ReasonNoDetailLink
		return outcome
	}

	// Hop 3: the full detail record.
	if err := r.pacer.Wait(ctx); err != nil {
		outcome.Status, outcome.Reason = patent.StatusError, err.Error()
		return outcome
	}
	detail := r.searcher.FetchDetail(ctx, detailLink, r.keys.Next())
	if detail == nil {
		outcome.Status, outcome.Reason = patent.StatusError, patent.ReasonNoResponse
		return outcome
	}

	outcome.NationalIDs = extractNationalIDs(detail)
	if len(outcome.NationalIDs) > 0 {
		outcome.Status = patent.StatusSuccess
	} else {
		outcome.Status = patent.StatusNoNationalFilings
	}

	trace.Addf("[resolution] %s: %d national filings (%s)", id, len(outcome.NationalIDs), outcome.Status)
	return outcome
}

// extractNationalIDs scans the five detail sub-fields that can carry family
// members and returns the sorted set of national filing numbers found.
//
// The sub-fields disagree on shape: worldwide_applications is a map keyed by
// year, also_published_as mixes bare strings with objects, and the rest are
// object lists naming the document under either "document_id" or
// "publication_number".
func extractNationalIDs(detail []byte) []string {
	found := make(map[string]struct{})
	add := func(id string) {
		if strings.HasPrefix(id, patent.NationalPrefix) {
			found[id] = struct{}{}
		}
	}

	gjson.GetBytes(detail, "worldwide_applications").ForEach(func(_, apps gjson.Result) bool {
		apps.ForEach(func(_, app gjson.Result) bool {
			add(app.Get("document_id").String())
			return true
		})
		return true
	})

	gjson.GetBytes(detail, "family_members").ForEach(func(_, member gjson.Result) bool {
		add(documentID(member))
		return true
	})

	gjson.GetBytes(detail, "also_published_as").ForEach(func(_, pub gjson.Result) bool {
		if pub.Type == gjson.String {
			add(pub.String())
		} else {
			add(pub.Get("document_id").String())
		}
		return true
	})

	for i, cite := range gjson.GetBytes(detail, "citations").Array() {
		if i >= maxScannedCitations {
			break
		}
		add(documentID(cite))
	}

	for i, sim := range gjson.GetBytes(detail, "similar_documents").Array() {
		if i >= maxScannedSimilar {
			break
		}
		add(documentID(sim))
	}

	out := make([]string, 0, len(found))
	for id := range found {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// documentID returns the document identifier of a family entry, falling back
// to the publication number.
func documentID(entry gjson.Result) string {
	if id := entry.Get("document_id").String(); id != "" {
		return id
	}
	return entry.Get("publication_number").String()
}

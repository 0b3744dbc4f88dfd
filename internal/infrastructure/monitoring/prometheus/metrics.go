package prometheus

// PipelineMetrics bundles every metric emitted by the patent discovery
// pipeline.  A single instance is constructed at startup and injected into
// the components that record into it.
type PipelineMetrics struct {
	// SearchesTotal counts completed search requests, labelled by outcome
	// ("ok" or "rejected").
	SearchesTotal CounterVec

	// ExternalCallsTotal counts outbound HTTP calls by collaborator
	// ("synonym_db", "patent_search", "registry_crawler").
	ExternalCallsTotal CounterVec

	// FetchRetriesTotal counts fetcher retries by cause
	// ("rate_limited", "timeout", "transport").
	FetchRetriesTotal CounterVec

	// DiscoveryQueriesTotal counts executed discovery queries by strategy
	// and engine.
	DiscoveryQueriesTotal CounterVec

	// ResolutionOutcomesTotal counts terminal resolution states by status.
	ResolutionOutcomesTotal CounterVec

	// NationalFilingsTotal counts discovered national filings by source.
	NationalFilingsTotal CounterVec

	// PipelineDuration observes full-pipeline wall-clock duration in seconds.
	PipelineDuration HistogramVec
}

// pipelineDurationBuckets covers the realistic range of a full sequential
// pipeline run: pacing alone puts most runs over a minute.
var pipelineDurationBuckets = []float64{5, 15, 30, 60, 120, 300, 600, 1200, 1800}

// NewPipelineMetrics registers all pipeline metrics on the collector.
func NewPipelineMetrics(collector MetricsCollector) *PipelineMetrics {
	return &PipelineMetrics{
		SearchesTotal:           collector.RegisterCounter("searches_total", "Completed search requests", "outcome"),
		ExternalCallsTotal:      collector.RegisterCounter("external_calls_total", "Outbound collaborator HTTP calls", "collaborator"),
		FetchRetriesTotal:       collector.RegisterCounter("fetch_retries_total", "HTTP fetcher retries", "cause"),
		DiscoveryQueriesTotal:   collector.RegisterCounter("discovery_queries_total", "Executed discovery queries", "strategy", "engine"),
		ResolutionOutcomesTotal: collector.RegisterCounter("resolution_outcomes_total", "Terminal resolution chain states", "status"),
		NationalFilingsTotal:    collector.RegisterCounter("national_filings_total", "Discovered national filings", "source"),
		PipelineDuration:        collector.RegisterHistogram("pipeline_duration_seconds", "Full pipeline duration", pipelineDurationBuckets),
	}
}

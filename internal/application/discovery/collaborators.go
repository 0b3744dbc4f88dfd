package discovery

import "context"

// The pipeline talks to its three external collaborators through these
// interfaces.  The production implementations live in
// internal/infrastructure/sources; tests substitute in-memory fakes.
//
// The search and registry collaborators return raw JSON payloads, with nil
// meaning "no data after retries".  Degraded sources are an expected
// operating condition, never a pipeline failure.

// SynonymSource looks up the raw synonym list for a compound name.
type SynonymSource interface {
	Synonyms(ctx context.Context, name string) ([]string, error)
}

// PatentSearcher runs keyword searches and follows resolution-chain links.
type PatentSearcher interface {
	// Search runs query against the given engine.  num requests a result
	// count; zero leaves the engine default.
	Search(ctx context.Context, engine, query, apiKey string, num int) []byte

	// FetchLink follows an intermediate chain link verbatim.
	FetchLink(ctx context.Context, link string) []byte

	// FetchDetail fetches a full patent detail record, supplying apiKey when
	// the link does not already carry one.
	FetchDetail(ctx context.Context, link, apiKey string) []byte
}

// RegistryCrawler searches the national patent office for a term.
type RegistryCrawler interface {
	Search(ctx context.Context, term string) []byte
}

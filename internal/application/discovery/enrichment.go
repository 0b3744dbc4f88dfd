package discovery

import (
	"context"

	"github.com/turtacn/pharmyrus/internal/domain/molecule"
	"github.com/turtacn/pharmyrus/internal/infrastructure/monitoring/logging"
)

// Enricher builds the molecule profile that drives query generation and the
// registry search.
type Enricher struct {
	source SynonymSource
	log    logging.Logger
}

// NewEnricher constructs an Enricher.
func NewEnricher(source SynonymSource, log logging.Logger) *Enricher {
	return &Enricher{source: source, log: log.Named("enrichment")}
}

// Enrich looks the molecule up in the synonym database and classifies the
// result.  Enrichment is best-effort: when the database is unreachable or
// does not know the compound, the returned profile carries just the name and
// brand, and the pipeline continues on the name-based strategies alone.
func (e *Enricher) Enrich(ctx context.Context, name, brand string, trace *Trace) molecule.Profile {
	raw, err := e.source.Synonyms(ctx, name)
	if err != nil {
		e.log.Warn("synonym enrichment failed",
			logging.String("molecule", name), logging.Err(err))
		trace.Addf("[enrichment] lookup failed: %v", err)
		return molecule.NewProfile(name, brand, nil)
	}

	profile := molecule.NewProfile(name, brand, raw)
	trace.Addf("[enrichment] %d dev codes, cas=%q, %d synonyms kept of %d",
		len(profile.DevCodes), profile.RegistryNumber, len(profile.Synonyms), len(raw))
	return profile
}

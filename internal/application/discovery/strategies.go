package discovery

import (
	"fmt"
	"strings"

	"github.com/turtacn/pharmyrus/internal/domain/molecule"
)

// Query is one discovery search query with the strategy that produced it,
// recorded for metrics and the report.
type Query struct {
	Text     string
	Strategy string
}

// Strategy names, in build order.
const (
	StrategyYearBased      = "year_based"
	StrategyCompanyBased   = "company_based"
	StrategyDevCode        = "dev_code"
	StrategyDevCodeVariant = "dev_code_variant"
	StrategyCASNumber      = "cas_number"
	StrategyBrandName      = "brand_name"
	StrategyDirectMolecule = "direct_molecule"
	StrategySynonym        = "synonym"
)

// Year-based queries cover the window in which the pharmaceutical filings of
// currently marketed molecules concentrate.
const (
	firstSearchYear = 2006
	lastSearchYear  = 2024
)

// Per-strategy input caps.  Queries run sequentially under pacing, so every
// extra query costs wall-clock time on each request.
const (
	maxDevCodeQueries = 10
	maxSynonymQueries = 5
)

// pharmaCompanies is the originator roster paired with molecule names in
// company-based queries.
var pharmaCompanies = []string{
	"Orion Corporation", "Bayer", "AstraZeneca", "Pfizer", "Novartis",
	"Roche", "Merck", "Bristol-Myers Squibb", "Johnson & Johnson",
	"Eli Lilly", "Sanofi", "GlaxoSmithKline", "AbbVie", "Takeda",
	"Gilead", "Amgen", "Biogen",
}

// BuildQueries assembles the full query list for a molecule profile.  The
// eight strategies always emit in the same order, so the query list for a
// given profile is deterministic.
func BuildQueries(p molecule.Profile) []Query {
	var queries []Query

	for year := firstSearchYear; year <= lastSearchYear; year++ {
		queries = append(queries, Query{
			Text:     fmt.Sprintf(`"%s" patent WO%d`, p.Name, year),
			Strategy: StrategyYearBased,
		})
	}

	for _, company := range pharmaCompanies {
		queries = append(queries, Query{
			Text:     fmt.Sprintf(`"%s" "%s" patent`, p.Name, company),
			Strategy: StrategyCompanyBased,
		})
	}

	codes := p.DevCodes
	if len(codes) > maxDevCodeQueries {
		codes = codes[:maxDevCodeQueries]
	}
	for _, code := range codes {
		queries = append(queries,
			Query{Text: fmt.Sprintf(`"%s" patent WO`, code), Strategy: StrategyDevCode},
			Query{Text: fmt.Sprintf(`"%s" international patent application`, code), Strategy: StrategyDevCode},
		)
		if stripped := strings.ReplaceAll(code, "-", ""); stripped != code {
			queries = append(queries, Query{
				Text:     fmt.Sprintf(`"%s" patent WO`, stripped),
				Strategy: StrategyDevCodeVariant,
			})
		}
	}

	if p.RegistryNumber != "" {
		queries = append(queries,
			Query{Text: fmt.Sprintf(`"%s" patent WO`, p.RegistryNumber), Strategy: StrategyCASNumber},
			Query{Text: fmt.Sprintf(`"%s" PCT patent`, p.RegistryNumber), Strategy: StrategyCASNumber},
		)
	}

	if p.Brand != "" {
		queries = append(queries,
			Query{Text: fmt.Sprintf(`"%s" patent WO`, p.Brand), Strategy: StrategyBrandName},
			Query{Text: fmt.Sprintf(`"%s" pharmaceutical patent international`, p.Brand), Strategy: StrategyBrandName},
		)
	}

	for _, text := range []string{
		fmt.Sprintf(`"%s" WO patent application`, p.Name),
		fmt.Sprintf(`"%s" PCT international application`, p.Name),
		fmt.Sprintf(`site:patents.google.com "%s" WO`, p.Name),
		fmt.Sprintf(`site:patentscope.wipo.int "%s"`, p.Name),
		fmt.Sprintf(`"%s" pharmaceutical composition patent WO`, p.Name),
		fmt.Sprintf(`"%s" treatment cancer patent WO`, p.Name),
	} {
		queries = append(queries, Query{Text: text, Strategy: StrategyDirectMolecule})
	}

	synonyms := p.Synonyms
	if len(synonyms) > maxSynonymQueries {
		synonyms = synonyms[:maxSynonymQueries]
	}
	for _, syn := range synonyms {
		if strings.EqualFold(syn, p.Name) {
			continue
		}
		queries = append(queries, Query{
			Text:     fmt.Sprintf(`"%s" patent WO`, syn),
			Strategy: StrategySynonym,
		})
	}

	return queries
}

// StrategyLayers describes the query strategies for the report.
func StrategyLayers() []string {
	return []string{
		"Layer 1: Year-based WO search (2006-2024)",
		"Layer 2: Company-based search (17 pharma companies)",
		"Layer 3: Dev code searches with variants",
		"Layer 4: CAS number search",
		"Layer 5: Brand name search",
		"Layer 6: Direct molecule queries",
		"Layer 7: Synonym searches",
	}
}

// Package report defines the wire-level request and response types of the
// patent search API.  The types carry no behaviour; they are shared by the
// HTTP handlers, the CLI output path, and the Go SDK client, and therefore
// must not depend on any internal package.
package report

// SearchRequest is the body of POST /api/v1/search.  Field names follow the
// original Portuguese API contract consumed by existing clients.
type SearchRequest struct {
	MoleculeName string `json:"nome_molecula"`
	BrandName    string `json:"nome_comercial,omitempty"`
}

// MoleculeInfo echoes the enriched molecule back to the caller.
type MoleculeInfo struct {
	Name          string   `json:"name"`
	Brand         string   `json:"brand,omitempty"`
	DevCodes      []string `json:"dev_codes"`
	CAS           string   `json:"cas,omitempty"`
	SynonymsCount int      `json:"synonyms_count"`
}

// SearchStrategy describes the discovery layers, for human readers of the
// report only.
type SearchStrategy struct {
	Version string   `json:"version"`
	Method  string   `json:"method"`
	Layers  []string `json:"layers"`
}

// WODiscovery lists every international filing identifier found.
type WODiscovery struct {
	TotalFound int      `json:"total_found"`
	WONumbers  []string `json:"wo_numbers"`
}

// WODetail is the per-identifier outcome of the family resolution chain.
type WODetail struct {
	WONumber  string   `json:"wo_number"`
	BRCount   int      `json:"br_count"`
	BRPatents []string `json:"br_patents"`
	Status    string   `json:"status"`
	Reason    string   `json:"reason,omitempty"`
}

// WOProcessing summarises the resolution chain pass.
type WOProcessing struct {
	TotalProcessed int        `json:"total_processed"`
	Successful     int        `json:"successful"`
	WithBRPatents  int        `json:"with_br_patents"`
	NoBRPatents    int        `json:"no_br_patents"`
	SkippedOrError int        `json:"skipped_or_error"`
	Details        []WODetail `json:"details"`
}

// BRPatent is one consolidated national filing.
type BRPatent struct {
	Number      string `json:"number"`
	Source      string `json:"source"`
	FromWO      string `json:"from_wo,omitempty"`
	Applicant   string `json:"applicant,omitempty"`
	DepositDate string `json:"deposit_date,omitempty"`
	Link        string `json:"link,omitempty"`
	SearchTerm  string `json:"search_term,omitempty"`
}

// BRPatents is the consolidated national filing list with per-source counts.
type BRPatents struct {
	Total            int        `json:"total"`
	FromWOExtraction int        `json:"from_wo_extraction"`
	FromINPIDirect   int        `json:"from_inpi_direct"`
	Patents          []BRPatent `json:"patents"`
}

// INPIResults lists the direct registry search results before consolidation.
type INPIResults struct {
	Total   int        `json:"total"`
	Patents []BRPatent `json:"patents"`
}

// Comparison reports coverage against a fixed reference baseline.  The
// baseline counts were measured for a single development molecule and say
// nothing about other molecules; the Note field states this in every
// response.
type Comparison struct {
	Baseline    string `json:"baseline"`
	ExpectedWOs int    `json:"expected_wos"`
	ExpectedBRs int    `json:"expected_brs"`
	WOFound     int    `json:"wo_found"`
	BRFound     int    `json:"br_found"`
	WOCoverage  string `json:"wo_coverage"`
	BRCoverage  string `json:"br_coverage"`
	WORate      string `json:"wo_rate"`
	BRRate      string `json:"br_rate"`
	Status      string `json:"status"`
	Note        string `json:"note,omitempty"`
}

// Performance carries timing and call-volume estimates for the run.
type Performance struct {
	DurationSeconds  float64 `json:"duration_seconds"`
	APICallsEstimate int     `json:"api_calls_estimate"`
	Timestamp        string  `json:"timestamp"`
}

// SearchReport is the full synchronous response of one pipeline run.
type SearchReport struct {
	SearchID     string         `json:"search_id"`
	MoleculeInfo MoleculeInfo   `json:"molecule_info"`
	Strategy     SearchStrategy `json:"search_strategy"`
	WODiscovery  WODiscovery    `json:"wo_discovery"`
	WOProcessing WOProcessing   `json:"wo_processing"`
	BRPatents    BRPatents      `json:"br_patents"`
	INPIResults  INPIResults    `json:"inpi_results"`
	Comparison   Comparison     `json:"comparison"`
	Performance  Performance    `json:"performance"`
	DebugLog     []string       `json:"debug_log"`
}

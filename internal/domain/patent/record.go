package patent

// SourceKind identifies which half of the pipeline discovered a national
// filing.
type SourceKind string

const (
	// SourceFamilyExtraction marks filings reached through the family
	// resolution chain from an international filing.
	SourceFamilyExtraction SourceKind = "family_extraction"

	// SourceDirectRegistry marks filings returned by the national registry
	// crawler.
	SourceDirectRegistry SourceKind = "direct_registry"
)

// NationalFiling is one discovered national patent filing.
type NationalFiling struct {
	Number     string     `json:"number"`
	Source     SourceKind `json:"source"`
	FromFiling FilingID   `json:"from_wo,omitempty"`
	Applicant  string     `json:"applicant,omitempty"`
	FilingDate string     `json:"deposit_date,omitempty"`
	Link       string     `json:"link,omitempty"`
	SearchTerm string     `json:"search_term,omitempty"`
}

// NormalizedNumber returns the canonical comparison form of the filing
// number; two records are duplicates exactly when their normalized numbers
// are equal, regardless of hyphens, spaces, slashes or case.
func (f NationalFiling) NormalizedNumber() string {
	return Normalize(f.Number)
}

// DedupFilings removes duplicates by normalized number, keeping the first
// occurrence.  Input order is preserved, which is what gives the
// resolution-chain results precedence during consolidation: they are
// appended before the registry results.
func DedupFilings(filings []NationalFiling) []NationalFiling {
	seen := make(map[string]struct{}, len(filings))
	out := make([]NationalFiling, 0, len(filings))
	for _, f := range filings {
		key := f.NormalizedNumber()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, f)
	}
	return out
}

// Status is the resolution state of one international filing.  A filing
// starts at StatusPending and ends in exactly one of the four terminal
// states.
type Status string

const (
	StatusPending           Status = "pending"
	StatusSuccess           Status = "success"
	StatusNoNationalFilings Status = "no_national_filings"
	StatusSkipped           Status = "skipped"
	StatusError             Status = "error"
)

// Terminal reports whether s is a terminal resolution state.
func (s Status) Terminal() bool {
	return s != StatusPending
}

// Skip reasons recorded on non-success outcomes.  The values match the
// upstream field names they refer to so an operator reading a report can
// see which hop of the chain came up empty.
const (
	ReasonNoEndpoint   = "no_json_endpoint"
	ReasonNoResults    = "no_organic_results"
	ReasonNoDetailLink = "no_serpapi_link"
	ReasonNoResponse   = "no_search_response"
)

// Outcome is the result of resolving one international filing through the
// family resolution chain.
type Outcome struct {
	Filing      FilingID `json:"wo_number"`
	Status      Status   `json:"status"`
	Reason      string   `json:"reason,omitempty"`
	NationalIDs []string `json:"br_patents"`
}

// NewOutcome returns a pending Outcome for id.
func NewOutcome(id FilingID) Outcome {
	return Outcome{Filing: id, Status: StatusPending, NationalIDs: []string{}}
}

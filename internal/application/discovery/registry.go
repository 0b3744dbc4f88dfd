package discovery

import (
	"context"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/turtacn/pharmyrus/internal/domain/molecule"
	"github.com/turtacn/pharmyrus/internal/domain/patent"
	"github.com/turtacn/pharmyrus/internal/infrastructure/monitoring/logging"
)

// maxRegistryDevCodes bounds how many developmental codes become registry
// search terms.  The registry crawler is the slowest collaborator, so its
// term list is kept tighter than the discovery query list.
const maxRegistryDevCodes = 12

// portugueseSuffixes maps molecule-name endings to their Portuguese
// equivalents, in application order.  National filings are titled in
// Portuguese, so the translated name often matches where the INN does not.
var portugueseSuffixes = []struct{ en, pt string }{
	{"ide", "ida"},
	{"ine", "ina"},
	{"ib", "ibe"},
	{"ab", "abe"},
}

// RegistrySearch runs the direct national-registry half of the pipeline.
type RegistrySearch struct {
	crawler RegistryCrawler
	pacer   *Pacer
	log     logging.Logger
}

// NewRegistrySearch constructs a RegistrySearch.
func NewRegistrySearch(crawler RegistryCrawler, pacer *Pacer, log logging.Logger) *RegistrySearch {
	return &RegistrySearch{crawler: crawler, pacer: pacer, log: log.Named("registry")}
}

// Search queries the registry for every term derived from the profile and
// returns the deduplicated national filings found.  Terms that yield no
// payload are skipped; a cancelled context ends the sweep early.
func (s *RegistrySearch) Search(ctx context.Context, profile molecule.Profile, trace *Trace) []patent.NationalFiling {
	terms := SearchTerms(profile)
	trace.Addf("[registry] searching %d terms", len(terms))

	var filings []patent.NationalFiling
	for _, term := range terms {
		if err := s.pacer.Wait(ctx); err != nil {
			trace.Addf("[registry] aborted: %v", err)
			break
		}

		payload := s.crawler.Search(ctx, term)
		if payload == nil {
			trace.Addf("[registry] term %q returned no data", term)
			continue
		}

		filings = append(filings, parseRegistryHits(payload, term)...)
	}

	unique := patent.DedupFilings(filings)
	trace.Addf("[registry] %d unique filings found", len(unique))
	s.log.Info("registry sweep complete",
		logging.Int("terms", len(terms)), logging.Int("filings", len(unique)))
	return unique
}

// SearchTerms derives the registry term list from a profile: the molecule
// name, its developmental codes (with hyphen-stripped variants), and the
// Portuguese renderings of the name.  Duplicates collapse, first occurrence
// kept, so the term order is deterministic.
func SearchTerms(profile molecule.Profile) []string {
	var terms []string
	seen := make(map[string]struct{})
	addTerm := func(t string) {
		if _, dup := seen[t]; dup {
			return
		}
		seen[t] = struct{}{}
		terms = append(terms, t)
	}

	addTerm(profile.Name)

	codes := profile.DevCodes
	if len(codes) > maxRegistryDevCodes {
		codes = codes[:maxRegistryDevCodes]
	}
	for _, code := range codes {
		addTerm(code)
		if stripped := strings.ReplaceAll(code, "-", ""); stripped != code {
			addTerm(stripped)
		}
	}

	lower := strings.ToLower(profile.Name)
	for _, sfx := range portugueseSuffixes {
		if strings.HasSuffix(lower, sfx.en) {
			addTerm(profile.Name[:len(profile.Name)-len(sfx.en)] + sfx.pt)
		}
	}

	return terms
}

// parseRegistryHits extracts national filings from one crawler response.
// Only hits whose title starts with the national prefix are patent records;
// the rest are registry noise.  The filing number is the title with spaces
// rendered as hyphens, matching how the registry prints numbers elsewhere.
func parseRegistryHits(payload []byte, term string) []patent.NationalFiling {
	var filings []patent.NationalFiling

	gjson.GetBytes(payload, "data").ForEach(func(_, hit gjson.Result) bool {
		title := hit.Get("title").String()
		if !strings.HasPrefix(title, patent.NationalPrefix) {
			return true
		}
		filings = append(filings, patent.NationalFiling{
			Number:     strings.ReplaceAll(title, " ", "-"),
			Source:     patent.SourceDirectRegistry,
			Applicant:  hit.Get("applicant").String(),
			FilingDate: hit.Get("depositDate").String(),
			SearchTerm: term,
		})
		return true
	})

	return filings
}

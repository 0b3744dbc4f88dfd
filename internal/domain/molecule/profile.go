// Package molecule defines the molecule profile assembled during synonym
// enrichment and the classification rules that sort raw synonym strings
// into developmental codes, a registry number, and plain synonyms.
package molecule

import (
	"regexp"
	"strings"
)

// Caps on enrichment output.  The synonym database returns hundreds of
// entries for well-known compounds; everything past these bounds adds query
// volume without adding coverage.
const (
	maxScannedSynonyms = 150
	maxDevCodes        = 25
	maxKeptSynonyms    = 50
)

// Plain synonyms outside this length range are degenerate entries (single
// letters, full IUPAC names) and are dropped.
const (
	minSynonymLen = 4
	maxSynonymLen = 49
)

// devCodeRe matches manufacturer developmental codes: 2–5 letters, an
// optional hyphen, 3–7 digits, and an optional trailing letter
// (e.g. "ODM-201", "BAY1841788", "MK-7264A").
var devCodeRe = regexp.MustCompile(`^[A-Za-z]{2,5}-?\d{3,7}[A-Za-z]?$`)

// registryNumberRe matches a chemical registry number: a hyphen-delimited
// numeric triplet (e.g. "1297538-32-9").
var registryNumberRe = regexp.MustCompile(`^\d{2,7}-\d{2}-\d$`)

// Profile is the enriched description of the molecule under search.  It is
// assembled once per request during enrichment and immutable afterwards.
type Profile struct {
	Name           string
	Brand          string
	DevCodes       []string
	RegistryNumber string
	Synonyms       []string
}

// MatchesDevCode reports whether s has the shape of a developmental code.
func MatchesDevCode(s string) bool {
	return devCodeRe.MatchString(s)
}

// MatchesRegistryNumber reports whether s has the shape of a registry number.
func MatchesRegistryNumber(s string) bool {
	return registryNumberRe.MatchString(s)
}

// NewProfile builds a Profile from the raw synonym list returned by the
// chemical database.  Classification rules, applied independently to each
// entry (an entry can be both a developmental code and a retained synonym):
//
//   - developmental code: matches the dev-code pattern; capped at 25,
//     deduplicated case-insensitively, input order preserved;
//   - registry number: matches the triplet pattern; first match wins;
//   - plain synonym: length within [4, 49]; capped at 50.
//
// Only the first 150 raw entries are scanned.
func NewProfile(name, brand string, rawSynonyms []string) Profile {
	p := Profile{Name: name, Brand: brand}

	seenCodes := make(map[string]struct{})

	for i, s := range rawSynonyms {
		if i >= maxScannedSynonyms {
			break
		}

		if MatchesDevCode(s) && len(p.DevCodes) < maxDevCodes {
			key := strings.ToUpper(s)
			if _, dup := seenCodes[key]; !dup {
				seenCodes[key] = struct{}{}
				p.DevCodes = append(p.DevCodes, s)
			}
		}

		if p.RegistryNumber == "" && MatchesRegistryNumber(s) {
			p.RegistryNumber = s
		}

		if len(s) >= minSynonymLen && len(s) <= maxSynonymLen && len(p.Synonyms) < maxKeptSynonyms {
			p.Synonyms = append(p.Synonyms, s)
		}
	}

	return p
}

// Package patent defines the identifier types and extraction rules at the
// core of the discovery pipeline: international (WO) filing identifiers
// harvested from free text, and the national (BR) filing records resolved
// from them.
package patent

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// FilingID is an international patent filing identifier in canonical form:
// "WO" followed by a 4-digit year and a 6-digit zero-padded serial,
// e.g. "WO2011051540".
type FilingID string

// NationalPrefix is the country code of the national patent office this
// service targets.
const NationalPrefix = "BR"

// Publication numbers harvested from structured patent results are truncated
// to this length, which covers "WO" + year + serial + kind code.
const publicationNumberLen = 14

// Filing years outside this window are discarded as extraction false
// positives.  The bound is a correctness contract of the extractor, not a
// tunable: loosening it reintroduces the noise the recall-favoring patterns
// would otherwise admit.
const (
	minFilingYear = 1990
	maxFilingYear = 2025
)

// filingPatterns is the ordered pattern list applied to free text.  The
// patterns deliberately over-match — separators vary wildly across sources
// (spaces, hyphens, slashes, nothing) and years appear in both 2- and
// 4-digit encodings — and the resulting duplicates collapse in the output
// set.  Recall is preferred over precision here; the year bound above
// removes the worst false positives.
var filingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)WO[\s-]?(\d{4})[\s/]?(\d{6})`),
	regexp.MustCompile(`(?i)WO(\d{4})(\d{6})[A-Z]?\d?`),
	regexp.MustCompile(`(?i)WO\s?(\d{4})/(\d{6})`),
	regexp.MustCompile(`(?i)WO(\d{4})[\s-](\d{6})`),
	regexp.MustCompile(`(?i)PCT/[A-Z]{2}(\d{4})/(\d{6})`),
	// The 2-digit-year form is anchored on a trailing non-digit so it cannot
	// fire inside a 4-digit-year identifier and mint a phantom filing.
	regexp.MustCompile(`(?i)WO\s?(\d{2})[\s/]?(\d{5,6})(?:[^0-9]|$)`),
}

// ExtractFilingIDs scans text with every pattern and returns the union of
// all canonical filing identifiers found, sorted ascending (which orders by
// year).  Running it twice over the same text yields the same set.
func ExtractFilingIDs(text string) []FilingID {
	seen := make(map[FilingID]struct{})

	for _, pattern := range filingPatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			if len(m) != 3 {
				continue
			}
			year := m[1]
			if len(year) == 2 {
				year = ExpandTwoDigitYear(year)
			}
			y, err := strconv.Atoi(year)
			if err != nil || y < minFilingYear || y > maxFilingYear {
				continue
			}
			id := FilingID("WO" + year + PadSerial(m[2]))
			seen[id] = struct{}{}
		}
	}

	out := make([]FilingID, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// FromPublicationNumber converts a structured publication number (as
// returned by patent search results) into a canonical FilingID, or "" when
// the number is not an international filing.
func FromPublicationNumber(pub string) FilingID {
	pub = strings.TrimSpace(pub)
	if !strings.HasPrefix(pub, "WO") {
		return ""
	}
	if len(pub) > publicationNumberLen {
		pub = pub[:publicationNumberLen]
	}
	return FilingID(pub)
}

// ExpandTwoDigitYear maps a 2-digit year to its 4-digit form with the pivot
// at 50: "11" → "2011", "85" → "1985".
func ExpandTwoDigitYear(year string) string {
	n, err := strconv.Atoi(year)
	if err != nil {
		return year
	}
	if n < 50 {
		return "20" + year
	}
	return "19" + year
}

// PadSerial left-pads a serial number with zeros to 6 digits: "540" →
// "000540".
func PadSerial(serial string) string {
	for len(serial) < 6 {
		serial = "0" + serial
	}
	return serial
}

// Year returns the filing year encoded in the identifier, or 0 when the
// identifier is malformed.
func (id FilingID) Year() int {
	if len(id) < 6 {
		return 0
	}
	y, err := strconv.Atoi(string(id[2:6]))
	if err != nil {
		return 0
	}
	return y
}

// Normalize reduces an identifier-like string to its canonical comparison
// form: every non-alphanumeric character stripped and the rest upper-cased.
// Normalize is idempotent.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - ('a' - 'A'))
		case (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsNationalID reports whether candidate carries the national filing prefix.
func IsNationalID(candidate string) bool {
	return strings.HasPrefix(strings.ToUpper(strings.TrimSpace(candidate)), NationalPrefix)
}

package discovery_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/pharmyrus/internal/application/discovery"
	"github.com/turtacn/pharmyrus/internal/domain/molecule"
	"github.com/turtacn/pharmyrus/internal/domain/patent"
	"github.com/turtacn/pharmyrus/internal/infrastructure/monitoring/logging"
)

func TestSearchTerms_DevCodesAndPortugueseVariant(t *testing.T) {
	t.Parallel()

	p := molecule.Profile{
		Name:     "darolutamide",
		DevCodes: []string{"ODM-201", "BAY1841788"},
	}

	terms := discovery.SearchTerms(p)

	assert.Equal(t, []string{
		"darolutamide",
		"ODM-201",
		"ODM201",
		"BAY1841788",
		"darolutamida",
	}, terms)
}

func TestSearchTerms_SuffixVariants(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		want string
	}{
		{"darolutamide", "darolutamida"},
		{"ranitidine", "ranitidina"},
		{"tofacitinib", "tofacitinibe"},
		{"adalimumab", "adalimumabe"},
	}

	for _, tc := range cases {
		terms := discovery.SearchTerms(molecule.Profile{Name: tc.name})
		assert.Contains(t, terms, tc.want, tc.name)
	}
}

func TestSearchTerms_NoVariantWhenSuffixAbsent(t *testing.T) {
	t.Parallel()

	terms := discovery.SearchTerms(molecule.Profile{Name: "aspirin"})
	assert.Equal(t, []string{"aspirin"}, terms)
}

func TestSearchTerms_DevCodeCap(t *testing.T) {
	t.Parallel()

	codes := make([]string, 20)
	for i := range codes {
		codes[i] = string(rune('A'+i)) + "B-1234"
	}

	terms := discovery.SearchTerms(molecule.Profile{Name: "x", DevCodes: codes})

	// Name + 12 codes, each with a hyphen-stripped variant.
	assert.Len(t, terms, 1+12*2)
}

func TestRegistrySearch_ParsesAndDedupsHits(t *testing.T) {
	t.Parallel()

	crawler := &fakeCrawler{
		searchFn: func(term string) []byte {
			switch term {
			case "darolutamide":
				return []byte(`{"data":[
					{"title":"BR 11 2012 009896 0","applicant":"ORION CORPORATION","depositDate":"2011-10-26"},
					{"title":"Pedido de patente sem numero"},
					{"title":"BR 12 2015 987654 1","applicant":"BAYER AG","depositDate":"2015-03-02"}
				]}`)
			case "darolutamida":
				// Duplicate of a hit already seen under the English name.
				return []byte(`{"data":[
					{"title":"BR 11 2012 009896 0","applicant":"ORION CORPORATION","depositDate":"2011-10-26"}
				]}`)
			default:
				return nil
			}
		},
	}

	rs := discovery.NewRegistrySearch(crawler, discovery.NewPacer(0), logging.NewNopLogger())
	filings := rs.Search(context.Background(),
		molecule.Profile{Name: "darolutamide"}, discovery.NewTrace())

	require.Len(t, filings, 2)
	assert.Equal(t, "BR-11-2012-009896-0", filings[0].Number)
	assert.Equal(t, patent.SourceDirectRegistry, filings[0].Source)
	assert.Equal(t, "ORION CORPORATION", filings[0].Applicant)
	assert.Equal(t, "2011-10-26", filings[0].FilingDate)
	assert.Equal(t, "darolutamide", filings[0].SearchTerm)
	assert.Equal(t, "BR-12-2015-987654-1", filings[1].Number)
}

func TestRegistrySearch_AllTermsFailing(t *testing.T) {
	t.Parallel()

	crawler := &fakeCrawler{}
	rs := discovery.NewRegistrySearch(crawler, discovery.NewPacer(0), logging.NewNopLogger())

	filings := rs.Search(context.Background(),
		molecule.Profile{Name: "darolutamide"}, discovery.NewTrace())

	assert.Empty(t, filings)
	assert.Equal(t, []string{"darolutamide", "darolutamida"}, crawler.terms)
}

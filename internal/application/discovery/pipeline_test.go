package discovery_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/pharmyrus/internal/application/discovery"
	"github.com/turtacn/pharmyrus/internal/config"
	"github.com/turtacn/pharmyrus/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/pharmyrus/pkg/errors"
	"github.com/turtacn/pharmyrus/pkg/types/report"
)

// newPipeline assembles a Pipeline over scripted collaborators: enrichment
// knows darolutamide, every discovery query surfaces WO2011051540, the
// resolution chain yields one national filing, and the registry returns a
// duplicate of it plus one unique hit.
func newPipeline(t *testing.T) *discovery.Pipeline {
	t.Helper()

	synonyms := &fakeSynonyms{syns: []string{"darolutamide", "ODM-201", "1297538-32-9", "Nubeqa"}}

	searcher := &fakeSearcher{
		searchFn: func(call searchCall) []byte {
			if call.query == "WO2011051540" {
				return []byte(`{"search_metadata":{"json_endpoint":"https://api.example/1.json"}}`)
			}
			return []byte(`{"organic_results":[{"title":"Modulators WO2011051540","snippet":"","link":""}]}`)
		},
		linkFn: func(string) []byte {
			return []byte(`{"organic_results":[{"serpapi_link":"https://api.example/patent/1"}]}`)
		},
		detailFn: func(string, string) []byte {
			return []byte(`{"family_members":[
				{"document_id":"BR112012009896"},
				{"document_id":"EP2632902"}
			]}`)
		},
	}

	crawler := &fakeCrawler{
		searchFn: func(term string) []byte {
			if term != "darolutamide" {
				return nil
			}
			return []byte(`{"data":[
				{"title":"BR 11 2012 009896","applicant":"ORION CORPORATION","depositDate":"2011-10-26"},
				{"title":"BR 10 2014 555555 1","applicant":"BAYER AG","depositDate":"2014-07-01"}
			]}`)
		},
	}

	return discovery.NewPipeline(
		config.PipelineConfig{MaxAttempts: 1},
		synonyms, searcher, crawler,
		newRotator(t, "k1", "k2"),
		logging.NewNopLogger(),
		nil,
	)
}

func TestPipeline_RejectsEmptyMoleculeName(t *testing.T) {
	t.Parallel()

	searcher := &fakeSearcher{}
	crawler := &fakeCrawler{}
	p := discovery.NewPipeline(
		config.PipelineConfig{MaxAttempts: 1},
		&fakeSynonyms{},
		searcher, crawler,
		newRotator(t, "k1"),
		logging.NewNopLogger(),
		nil,
	)

	_, err := p.Run(context.Background(), report.SearchRequest{MoleculeName: "   "})

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeMoleculeNameRequired))

	// Validation rejects before any collaborator is touched.
	assert.Empty(t, searcher.calls)
	assert.Empty(t, crawler.terms)
}

func TestPipeline_FullRun(t *testing.T) {
	t.Parallel()

	p := newPipeline(t)
	rep, err := p.Run(context.Background(), report.SearchRequest{
		MoleculeName: " darolutamide ",
		BrandName:    "Nubeqa",
	})
	require.NoError(t, err)

	_, uuidErr := uuid.Parse(rep.SearchID)
	assert.NoError(t, uuidErr)

	assert.Equal(t, "darolutamide", rep.MoleculeInfo.Name)
	assert.Equal(t, "Nubeqa", rep.MoleculeInfo.Brand)
	assert.Equal(t, []string{"ODM-201"}, rep.MoleculeInfo.DevCodes)
	assert.Equal(t, "1297538-32-9", rep.MoleculeInfo.CAS)
	assert.Equal(t, 4, rep.MoleculeInfo.SynonymsCount)

	assert.Equal(t, 1, rep.WODiscovery.TotalFound)
	assert.Equal(t, []string{"WO2011051540"}, rep.WODiscovery.WONumbers)

	require.Len(t, rep.WOProcessing.Details, 1)
	assert.Equal(t, 1, rep.WOProcessing.TotalProcessed)
	assert.Equal(t, 1, rep.WOProcessing.Successful)
	assert.Equal(t, 1, rep.WOProcessing.WithBRPatents)
	assert.Equal(t, 0, rep.WOProcessing.SkippedOrError)
	assert.Equal(t, []string{"BR112012009896"}, rep.WOProcessing.Details[0].BRPatents)

	// The registry duplicate of BR112012009896 collapses into the family
	// record; the unique registry hit survives.
	require.Equal(t, 2, rep.BRPatents.Total)
	assert.Equal(t, 1, rep.BRPatents.FromWOExtraction)
	assert.Equal(t, 1, rep.BRPatents.FromINPIDirect)
	assert.Equal(t, "BR112012009896", rep.BRPatents.Patents[0].Number)
	assert.Equal(t, "family_extraction", rep.BRPatents.Patents[0].Source)
	assert.Equal(t, "WO2011051540", rep.BRPatents.Patents[0].FromWO)
	assert.Equal(t, "https://patents.google.com/patent/BR112012009896", rep.BRPatents.Patents[0].Link)
	assert.Equal(t, "BR-10-2014-555555-1", rep.BRPatents.Patents[1].Number)
	assert.Equal(t, "direct_registry", rep.BRPatents.Patents[1].Source)

	// Registry results are reported unconsolidated.
	assert.Equal(t, 2, rep.INPIResults.Total)

	assert.Equal(t, "Cortellis", rep.Comparison.Baseline)
	assert.Equal(t, "1/7", rep.Comparison.WOCoverage)
	assert.Equal(t, "2/8", rep.Comparison.BRCoverage)
	assert.Equal(t, "14%", rep.Comparison.WORate)
	assert.Equal(t, "25%", rep.Comparison.BRRate)
	assert.Equal(t, "Low", rep.Comparison.Status)

	assert.Equal(t, 1*4+60, rep.Performance.APICallsEstimate)
	assert.NotEmpty(t, rep.Performance.Timestamp)
	assert.NotEmpty(t, rep.DebugLog)
}

func TestPipeline_DegradedCollaboratorsStillReport(t *testing.T) {
	t.Parallel()

	p := discovery.NewPipeline(
		config.PipelineConfig{MaxAttempts: 1},
		&fakeSynonyms{err: errors.New(errors.CodeSourceUnavailable, "down")},
		&fakeSearcher{},
		&fakeCrawler{},
		newRotator(t, "k1"),
		logging.NewNopLogger(),
		nil,
	)

	rep, err := p.Run(context.Background(), report.SearchRequest{MoleculeName: "aspirin"})
	require.NoError(t, err)

	assert.Equal(t, 0, rep.WODiscovery.TotalFound)
	assert.Equal(t, 0, rep.WOProcessing.TotalProcessed)
	assert.Equal(t, 0, rep.BRPatents.Total)
	assert.Equal(t, 0, rep.MoleculeInfo.SynonymsCount)
	assert.NotNil(t, rep.MoleculeInfo.DevCodes)
	assert.Equal(t, "0%", rep.Comparison.WORate)
	assert.Equal(t, "0%", rep.Comparison.BRRate)
	assert.Equal(t, "Low", rep.Comparison.Status)
	assert.Equal(t, 60, rep.Performance.APICallsEstimate)
}

func TestPipeline_GradingThresholds(t *testing.T) {
	t.Parallel()

	// Reach the grading through a detail record carrying many national
	// filings so the thresholds are exercised end to end.
	searcher := &fakeSearcher{
		searchFn: func(call searchCall) []byte {
			if call.query == "WO2011051540" {
				return []byte(`{"search_metadata":{"json_endpoint":"https://api.example/1.json"}}`)
			}
			return []byte(`{"organic_results":[{"title":"WO2011051540"}]}`)
		},
		linkFn: func(string) []byte {
			return []byte(`{"organic_results":[{"serpapi_link":"https://api.example/patent/1"}]}`)
		},
		detailFn: func(string, string) []byte {
			return []byte(`{"family_members":[
				{"document_id":"BR1"},{"document_id":"BR2"},{"document_id":"BR3"},
				{"document_id":"BR4"},{"document_id":"BR5"},{"document_id":"BR6"}
			]}`)
		},
	}

	p := discovery.NewPipeline(
		config.PipelineConfig{},
		&fakeSynonyms{},
		searcher,
		&fakeCrawler{},
		newRotator(t, "k1"),
		logging.NewNopLogger(),
		nil,
	)

	rep, err := p.Run(context.Background(), report.SearchRequest{MoleculeName: "darolutamide"})
	require.NoError(t, err)

	assert.Equal(t, 6, rep.BRPatents.Total)
	assert.Equal(t, "Excellent", rep.Comparison.Status)
	assert.Equal(t, "75%", rep.Comparison.BRRate)
}

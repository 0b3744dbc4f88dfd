package discovery_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/pharmyrus/internal/application/discovery"
	"github.com/turtacn/pharmyrus/internal/domain/molecule"
	"github.com/turtacn/pharmyrus/internal/domain/patent"
	"github.com/turtacn/pharmyrus/internal/infrastructure/credentials"
	"github.com/turtacn/pharmyrus/internal/infrastructure/monitoring/logging"
)

func newRotator(t *testing.T, keys ...string) *credentials.Rotator {
	t.Helper()
	r, err := credentials.NewRotator(keys)
	require.NoError(t, err)
	return r
}

func TestDiscoverer_HarvestsFromBothResultShapes(t *testing.T) {
	t.Parallel()

	searcher := &fakeSearcher{
		searchFn: func(call searchCall) []byte {
			if call.engine == "google_patents" {
				return []byte(`{"patents":[
					{"publication_number":"WO2013120011A1"},
					{"publication_number":"US9876543B2"}
				]}`)
			}
			return []byte(`{"organic_results":[
				{"title":"Androgen receptor modulators WO2011051540",
				 "snippet":"...","link":"https://example.org"}
			]}`)
		},
	}

	d := discovery.NewDiscoverer(searcher, newRotator(t, "k1"), discovery.NewPacer(0), logging.NewNopLogger(), nil)
	got := d.Discover(context.Background(), molecule.Profile{Name: "darolutamide"}, discovery.NewTrace())

	assert.Equal(t, []patent.FilingID{"WO2011051540", "WO2013120011A1"}, got)
}

func TestDiscoverer_EngineAlternation(t *testing.T) {
	t.Parallel()

	searcher := &fakeSearcher{}
	d := discovery.NewDiscoverer(searcher, newRotator(t, "k1"), discovery.NewPacer(0), logging.NewNopLogger(), nil)
	d.Discover(context.Background(), molecule.Profile{Name: "aspirin"}, discovery.NewTrace())

	require.NotEmpty(t, searcher.calls)
	for i, call := range searcher.calls {
		if i%3 == 0 {
			assert.Equal(t, "google_patents", call.engine, "call %d", i)
			assert.Equal(t, 20, call.num, "call %d", i)
		} else {
			assert.Equal(t, "google", call.engine, "call %d", i)
			assert.Equal(t, 10, call.num, "call %d", i)
		}
	}
}

func TestDiscoverer_RotatesKeysAcrossQueries(t *testing.T) {
	t.Parallel()

	searcher := &fakeSearcher{}
	d := discovery.NewDiscoverer(searcher, newRotator(t, "k1", "k2"), discovery.NewPacer(0), logging.NewNopLogger(), nil)
	d.Discover(context.Background(), molecule.Profile{Name: "aspirin"}, discovery.NewTrace())

	require.GreaterOrEqual(t, len(searcher.calls), 2)
	assert.Equal(t, "k1", searcher.calls[0].apiKey)
	assert.Equal(t, "k2", searcher.calls[1].apiKey)
	assert.Equal(t, "k1", searcher.calls[2].apiKey)
}

func TestDiscoverer_FailedQueriesAreSkipped(t *testing.T) {
	t.Parallel()

	var served int
	searcher := &fakeSearcher{
		searchFn: func(call searchCall) []byte {
			served++
			if served%2 == 0 {
				return nil
			}
			return []byte(fmt.Sprintf(`{"organic_results":[{"title":"WO%d051540"}]}`, 2000+served%10))
		},
	}

	d := discovery.NewDiscoverer(searcher, newRotator(t, "k1"), discovery.NewPacer(0), logging.NewNopLogger(), nil)
	got := d.Discover(context.Background(), molecule.Profile{Name: "aspirin"}, discovery.NewTrace())

	// Half the queries failed, the sweep still completes with the rest.
	assert.NotEmpty(t, got)
}

func TestDiscoverer_CancelledContextStopsSweep(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	searcher := &fakeSearcher{}
	d := discovery.NewDiscoverer(searcher, newRotator(t, "k1"), discovery.NewPacer(0), logging.NewNopLogger(), nil)
	got := d.Discover(ctx, molecule.Profile{Name: "aspirin"}, discovery.NewTrace())

	assert.Empty(t, got)
	assert.Empty(t, searcher.calls)
}

package discovery_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/pharmyrus/internal/application/discovery"
)

func TestPacer_SpacesCalls(t *testing.T) {
	t.Parallel()

	p := discovery.NewPacer(50 * time.Millisecond)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, p.Wait(ctx))
	}
	// First call is immediate, the next two wait 50ms each.
	assert.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)
}

func TestPacer_ZeroIntervalNeverWaits(t *testing.T) {
	t.Parallel()

	p := discovery.NewPacer(0)

	start := time.Now()
	for i := 0; i < 1000; i++ {
		require.NoError(t, p.Wait(context.Background()))
	}
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestPacer_CancelledContext(t *testing.T) {
	t.Parallel()

	p := discovery.NewPacer(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, p.Wait(ctx)) // first call proceeds immediately
	cancel()
	assert.Error(t, p.Wait(ctx))
}

func TestTrace_LinesCarryElapsedPrefix(t *testing.T) {
	t.Parallel()

	tr := discovery.NewTrace()
	tr.Addf("[start] molecule=%s", "darolutamide")
	tr.Addf("[discovery] built %d queries", 53)

	lines := tr.Lines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "s] [start] molecule=darolutamide")
	assert.Contains(t, lines[1], "[discovery] built 53 queries")
}

func TestTrace_LinesReturnsCopy(t *testing.T) {
	t.Parallel()

	tr := discovery.NewTrace()
	tr.Addf("one")

	lines := tr.Lines()
	lines[0] = "mutated"
	assert.NotEqual(t, "mutated", tr.Lines()[0])
}

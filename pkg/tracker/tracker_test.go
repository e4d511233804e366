package tracker_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hrassist/pkg/tracker"
)

func TestTracker_StartFinish(t *testing.T) {
	t.Parallel()

	t.Run("duplicate start is rejected", func(t *testing.T) {
		t.Parallel()

		tr := tracker.New()
		require.True(t, tr.Start(tracker.KindDelete, "sess|acme"))
		assert.False(t, tr.Start(tracker.KindDelete, "sess|acme"))
		assert.True(t, tr.InFlight(tracker.KindDelete, "sess|acme"))
	})

	t.Run("finish frees the key for reuse", func(t *testing.T) {
		t.Parallel()

		tr := tracker.New()
		require.True(t, tr.Start(tracker.KindImport, "sess|acme"))
		tr.Finish(tracker.KindImport, "sess|acme")
		assert.False(t, tr.InFlight(tracker.KindImport, "sess|acme"))
		assert.True(t, tr.Start(tracker.KindImport, "sess|acme"))
	})

	t.Run("finish of idle key is a no-op", func(t *testing.T) {
		t.Parallel()

		tr := tracker.New()
		tr.Finish(tracker.KindDelete, "never-started")
		assert.False(t, tr.InFlight(tracker.KindDelete, "never-started"))
	})

	t.Run("kinds track independently", func(t *testing.T) {
		t.Parallel()

		tr := tracker.New()
		require.True(t, tr.Start(tracker.KindDelete, "sess|acme"))
		require.True(t, tr.Start(tracker.KindImport, "sess|acme"))

		tr.Finish(tracker.KindDelete, "sess|acme")
		assert.False(t, tr.InFlight(tracker.KindDelete, "sess|acme"))
		assert.True(t, tr.InFlight(tracker.KindImport, "sess|acme"))
	})

	t.Run("keys track independently within a kind", func(t *testing.T) {
		t.Parallel()

		tr := tracker.New()
		require.True(t, tr.Start(tracker.KindImport, "sess|acme"))
		require.True(t, tr.Start(tracker.KindImport, "sess|globex"))

		tr.Finish(tracker.KindImport, "sess|globex")
		assert.True(t, tr.InFlight(tracker.KindImport, "sess|acme"))
		assert.False(t, tr.InFlight(tracker.KindImport, "sess|globex"))
		assert.Equal(t, 1, tr.Count(tracker.KindImport))
	})
}

func TestTracker_Concurrent(t *testing.T) {
	t.Parallel()

	tr := tracker.New()

	const workers = 32
	var wg sync.WaitGroup
	wins := make(chan string, workers)

	for i := 0; i < workers; i++ {
		key := fmt.Sprintf("sess|company-%d", i%4)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if tr.Start(tracker.KindImport, key) {
				wins <- key
			}
		}()
	}
	wg.Wait()
	close(wins)

	// Exactly one start wins per distinct key.
	seen := map[string]int{}
	for key := range wins {
		seen[key]++
	}
	require.Len(t, seen, 4)
	for key, n := range seen {
		assert.Equal(t, 1, n, key)
	}
	assert.Equal(t, 4, tr.Count(tracker.KindImport))
}

package snapshot_test

import (
	"sync"
	"testing"
	"time"

	"github.com/karbobc/workday/internal/core/domain"
	"github.com/karbobc/workday/internal/engine/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHolder_Empty(t *testing.T) {
	h := snapshot.NewHolder()

	assert.Nil(t, h.Load())
	_, ok := h.Current()
	assert.False(t, ok)
	_, ok = h.Digest()
	assert.False(t, ok)
}

func TestHolder_Replace(t *testing.T) {
	h := snapshot.NewHolder()
	installedAt := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	h.SetClock(func() time.Time { return installedAt })

	first := domain.NewCalendarYear(map[string]bool{"2024-05-01": false})
	second := domain.NewCalendarYear(map[string]bool{"2024-05-01": true})

	require.True(t, h.Replace(first))
	assert.Same(t, first, h.Load())

	require.True(t, h.Replace(second))
	assert.Same(t, second, h.Load())

	cur, ok := h.Current()
	require.True(t, ok)
	assert.Same(t, second, cur.Calendar)
	assert.Equal(t, installedAt, cur.LoadedAt)

	digest, ok := h.Digest()
	require.True(t, ok)
	assert.Equal(t, second.Digest(), digest)
}

func TestHolder_ReplaceNil(t *testing.T) {
	h := snapshot.NewHolder()
	cal := domain.NewCalendarYear(map[string]bool{"2024-05-01": false})
	require.True(t, h.Replace(cal))

	assert.False(t, h.Replace(nil))
	assert.Same(t, cal, h.Load())
}

func TestHolder_ConcurrentReaders(t *testing.T) {
	h := snapshot.NewHolder()
	a := domain.NewCalendarYear(map[string]bool{"2024-01-01": false, "2024-01-02": true})
	b := domain.NewCalendarYear(map[string]bool{"2024-01-01": true, "2024-01-02": false})
	h.Replace(a)

	var wg sync.WaitGroup
	for range 4 {
		wg.Go(func() {
			for range 1000 {
				cal := h.Load()
				first, _ := cal.Lookup("2024-01-01")
				second, _ := cal.Lookup("2024-01-02")
				// Each reader sees one whole calendar, never a mix.
				assert.NotEqual(t, first, second)
			}
		})
	}
	wg.Go(func() {
		for i := range 1000 {
			if i%2 == 0 {
				h.Replace(b)
			} else {
				h.Replace(a)
			}
		}
	})
	wg.Wait()
}

// SPDX-License-Identifier: MIT

// Read-only queries are safe to share across goroutines. Run with -race.

package geom_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/planar/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentQueries hammers one unmutated triangle with derived queries
// and checks every goroutine sees the same results.
func TestConcurrentQueries(t *testing.T) {
	tr := rightTriangle(t)
	const workers = 64
	var wg sync.WaitGroup
	wg.Add(workers)

	results := make([]geom.Point, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		go func(id int) {
			defer wg.Done()
			nine, err := tr.NinePointsCircle()
			if err != nil {
				errs[id] = err
				return
			}
			_ = tr.Area()
			_ = tr.Perimeter()
			results[id] = nine.Center()
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, results[0], results[i], "worker %d", i)
	}
}

// TestSerializedMutation shows the supported pattern for shared shapes:
// external locking around transforms.
func TestSerializedMutation(t *testing.T) {
	sq := mustSquare(t, geom.Pt(0, 0), geom.Pt(1, 0))
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	const rounds = 100
	wg.Add(rounds)
	for i := 0; i < rounds; i++ {
		go func() {
			defer wg.Done()
			mu.Lock()
			defer mu.Unlock()
			_ = sq.Rotate(0.01)
		}()
	}
	wg.Wait()

	assert.InDelta(t, 1.0, sq.Area(), 1e-9)
	requirePointNear(t, geom.Pt(0.5, 0), sq.Center())
}

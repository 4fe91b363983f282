package store

import (
	"sync"

	"github.com/robalobadob/wordhunt/internal/board"
	"github.com/robalobadob/wordhunt/internal/solver"
)

// AnalysisCache memoizes solver results by grid fingerprint. It assumes one
// lexicon and one scoring policy per process. Once limit grids are held the
// oldest insertion is evicted first.
type AnalysisCache struct {
	mu    sync.RWMutex
	items map[string]solver.Analysis
	order []string // insertion order, oldest first
	limit int
	solve func(board.Grid) solver.Analysis
}

// NewAnalysisCache returns a cache of at most limit grids (minimum 1) that
// computes misses with solve.
func NewAnalysisCache(limit int, solve func(board.Grid) solver.Analysis) *AnalysisCache {
	return &AnalysisCache{items: make(map[string]solver.Analysis), limit: max(limit, 1), solve: solve}
}

// Get returns the analysis for g and whether it was already cached.
// Concurrent misses for the same grid may each run the solver; the result
// is deterministic so the last write is equivalent.
func (c *AnalysisCache) Get(g board.Grid) (solver.Analysis, bool) {
	key := g.Fingerprint()

	c.mu.RLock()
	a, ok := c.items[key]
	c.mu.RUnlock()
	if ok {
		return a, true
	}

	a = c.solve(g)
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[key]; !ok {
		for len(c.order) >= c.limit {
			delete(c.items, c.order[0])
			c.order = c.order[1:]
		}
		c.order = append(c.order, key)
	}
	c.items[key] = a
	return a, false
}

// Len returns the number of cached grids.
func (c *AnalysisCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

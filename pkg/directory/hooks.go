package directory

import "github.com/matst80/slask-directory/pkg/catalog"

// Hooks are the page attachment points the directory renders into. Any nil
// hook is skipped, a missing element never prevents the others from
// updating.
type Hooks struct {
	Grid         func(html string)
	Pagination   func(html string)
	ResultsCount func(count int)
	Stats        func(stats catalog.Stats)
	Loading      func(active bool)
}

func (h *Hooks) setGrid(html string) {
	if h.Grid != nil {
		h.Grid(html)
	}
}

func (h *Hooks) setPagination(html string) {
	if h.Pagination != nil {
		h.Pagination(html)
	}
}

func (h *Hooks) setResultsCount(count int) {
	if h.ResultsCount != nil {
		h.ResultsCount(count)
	}
}

func (h *Hooks) setStats(stats catalog.Stats) {
	if h.Stats != nil {
		h.Stats(stats)
	}
}

func (h *Hooks) setLoading(active bool) {
	if h.Loading != nil {
		h.Loading(active)
	}
}

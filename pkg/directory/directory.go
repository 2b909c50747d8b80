package directory

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/matst80/slask-directory/pkg/catalog"
	"github.com/matst80/slask-directory/pkg/render"
	"github.com/matst80/slask-directory/pkg/types"
)

const (
	// DefaultDebounce matches the original 300ms keystroke collapse.
	DefaultDebounce = 300 * time.Millisecond
	// DefaultMinLoading keeps the loading indicator visible long enough to
	// avoid flicker on fast fetches.
	DefaultMinLoading = 500 * time.Millisecond
)

// Directory is the presentation core: it owns the catalog plus filter and
// view state, consumes user commands and renders into the page hooks. All
// commands are serialized through one mutex, the debounce timer being the
// only concurrent caller.
type Directory struct {
	mu         sync.Mutex
	catalog    *catalog.Catalog
	loader     *Loader
	hooks      Hooks
	debounce   *Debouncer
	minLoading time.Duration
	settings   *types.Settings
}

type Option func(*Directory)

func WithDebounce(delay time.Duration) Option {
	return func(d *Directory) {
		d.debounce = NewDebouncer(delay)
	}
}

func WithMinLoading(duration time.Duration) Option {
	return func(d *Directory) {
		d.minLoading = duration
	}
}

func WithSettings(settings *types.Settings) Option {
	return func(d *Directory) {
		d.settings = settings
	}
}

func NewDirectory(loader *Loader, hooks Hooks, opts ...Option) *Directory {
	d := &Directory{
		catalog:    catalog.NewCatalog(),
		loader:     loader,
		hooks:      hooks,
		debounce:   NewDebouncer(DefaultDebounce),
		minLoading: DefaultMinLoading,
		settings:   types.CurrentSettings,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Load performs the one-time initial fetch and first render. A failed
// fetch leaves an empty catalog, the page stays functional.
func (d *Directory) Load(ctx context.Context) {
	d.hooks.setLoading(true)
	started := time.Now()
	tools := d.loader.LoadTools(ctx)
	if remaining := d.minLoading - time.Since(started); remaining > 0 {
		time.Sleep(remaining)
	}

	d.mu.Lock()
	d.catalog.SetTools(tools)
	d.renderAll()
	d.mu.Unlock()
	d.hooks.setLoading(false)
}

func (d *Directory) Catalog() *catalog.Catalog {
	return d.catalog
}

// SetQuery updates the search term, debounced so bursts of keystrokes
// collapse into one recompute.
func (d *Directory) SetQuery(term string) {
	d.debounce.Do(func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		d.catalog.Filter.Query = term
		d.applyAndRender()
	})
}

func (d *Directory) SetCategory(category string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.catalog.Filter.Category = category
	d.applyAndRender()
}

func (d *Directory) SetPricing(pricing string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.catalog.Filter.Pricing = pricing
	d.applyAndRender()
}

func (d *Directory) SetListingType(listingType string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.catalog.Filter.ListingType = listingType
	d.applyAndRender()
}

func (d *Directory) SetSort(key types.SortKey) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.catalog.SetSort(key)
	d.renderView()
}

func (d *Directory) ClearFilters() {
	d.debounce.Stop()
	d.mu.Lock()
	defer d.mu.Unlock()
	d.catalog.ClearFilters()
	d.applyAndRender()
}

// GoToPage navigates within the current result set. Out-of-range requests
// are ignored.
func (d *Directory) GoToPage(page int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.catalog.GoToPage(page) {
		d.renderView()
	}
}

// ShowDetail renders the modal view for one entry.
func (d *Directory) ShowDetail(id string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	tool, ok := d.catalog.GetTool(id)
	if !ok {
		return "", false
	}
	html, err := render.Detail(tool)
	if err != nil {
		log.Printf("Error rendering detail for %s: %v", id, err)
		return "", false
	}
	return html, true
}

// ToggleTheme flips the shared theme setting and returns the new value.
func (d *Directory) ToggleTheme() string {
	return d.settings.ToggleTheme()
}

func (d *Directory) applyAndRender() {
	d.catalog.ApplyFilters()
	d.hooks.setResultsCount(d.catalog.ResultCount())
	d.renderView()
}

func (d *Directory) renderView() {
	grid, err := render.Grid(d.catalog.CurrentPage())
	if err != nil {
		log.Printf("Error rendering grid: %v", err)
	} else {
		d.hooks.setGrid(grid)
	}
	pagination, err := render.Pagination(d.catalog.PageLinks())
	if err != nil {
		log.Printf("Error rendering pagination: %v", err)
	} else {
		d.hooks.setPagination(pagination)
	}
}

func (d *Directory) renderAll() {
	d.hooks.setStats(d.catalog.Stats())
	d.hooks.setResultsCount(d.catalog.ResultCount())
	d.renderView()
}

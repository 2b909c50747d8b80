package catalog

import "github.com/matst80/slask-directory/pkg/types"

// DefaultPageSize matches the original nine-card grid.
const DefaultPageSize = 9

// Stats are the hero-section aggregates, recomputed after every load but
// not after filtering.
type Stats struct {
	TotalTools      int `json:"total_tools"`
	TotalCategories int `json:"total_categories"`
	FreeTools       int `json:"free_tools"`
}

// Catalog holds the full fetched tool set and the derived filtered/sorted
// subset. All state transitions run on the single owning goroutine, so no
// locking is needed here.
type Catalog struct {
	tools    []*types.Tool
	filtered []*types.Tool
	stats    Stats

	Filter types.FilterState
	View   types.ViewState
}

func NewCatalog() *Catalog {
	c := &Catalog{
		View: types.ViewState{
			Page:     1,
			PageSize: DefaultPageSize,
			Sort:     types.SortByName,
		},
	}
	c.SetTools(nil)
	return c
}

// SetTools replaces the full collection, recomputes stats and reapplies the
// current filter. The slice is held as-is, entries are never mutated.
func (c *Catalog) SetTools(tools []*types.Tool) {
	c.tools = tools
	c.stats = ComputeStats(tools)
	c.ApplyFilters()
}

func (c *Catalog) Tools() []*types.Tool {
	return c.tools
}

// Filtered is the current filtered and sorted subset.
func (c *Catalog) Filtered() []*types.Tool {
	return c.filtered
}

func (c *Catalog) Stats() Stats {
	return c.stats
}

// ResultCount is the size of the filtered subset.
func (c *Catalog) ResultCount() int {
	return len(c.filtered)
}

// ApplyFilters recomputes the filtered subset, resorts it and resets the
// page to 1.
func (c *Catalog) ApplyFilters() {
	c.filtered = Filter(c.tools, &c.Filter)
	Sort(c.filtered, c.View.Sort)
	c.View.Page = 1
}

// SetSort changes the sort key and reorders the current subset without
// touching the filter or page.
func (c *Catalog) SetSort(key types.SortKey) {
	c.View.Sort = key
	Sort(c.filtered, key)
}

// ClearFilters drops the search term and every facet selection. The sort
// key survives, the page resets through ApplyFilters.
func (c *Catalog) ClearFilters() {
	c.Filter = types.FilterState{}
	c.ApplyFilters()
}

// GoToPage moves to the requested 1-based page. Requests outside
// [1, TotalPages] leave the current page unchanged and report false.
func (c *Catalog) GoToPage(page int) bool {
	if page < 1 || page > c.TotalPages() {
		return false
	}
	c.View.Page = page
	return true
}

func (c *Catalog) TotalPages() int {
	return TotalPages(len(c.filtered), c.View.PageSize)
}

// CurrentPage is the visible window of the filtered subset.
func (c *Catalog) CurrentPage() []*types.Tool {
	return PageWindow(c.filtered, c.View.Page, c.View.PageSize)
}

// PageLinks is the pagination control sequence for the current view.
func (c *Catalog) PageLinks() []PageLink {
	return PageLinks(c.View.Page, c.TotalPages())
}

// GetTool finds an entry by id in the full collection.
func (c *Catalog) GetTool(id string) (*types.Tool, bool) {
	for _, tool := range c.tools {
		if tool.Id == id {
			return tool, true
		}
	}
	return nil, false
}

// Categories lists the distinct category codes present, in first-seen order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{}, len(c.tools))
	result := make([]string, 0, len(c.tools))
	for _, tool := range c.tools {
		if _, ok := seen[tool.Category]; !ok {
			seen[tool.Category] = struct{}{}
			result = append(result, tool.Category)
		}
	}
	return result
}

// ComputeStats aggregates over the full collection.
func ComputeStats(tools []*types.Tool) Stats {
	categories := make(map[string]struct{})
	free := 0
	for _, tool := range tools {
		categories[tool.Category] = struct{}{}
		if tool.GetPricing().IsFree() {
			free++
		}
	}
	return Stats{
		TotalTools:      len(tools),
		TotalCategories: len(categories),
		FreeTools:       free,
	}
}

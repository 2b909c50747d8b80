package catalog

import (
	"testing"

	"github.com/matst80/slask-directory/pkg/types"
)

func loadedCatalog() *Catalog {
	c := NewCatalog()
	c.SetTools(testTools())
	return c
}

func TestClearFiltersRestoresFullSet(t *testing.T) {
	c := loadedCatalog()
	c.Filter.Query = "chat"
	c.Filter.Pricing = "free"
	c.View.Sort = types.SortByRating
	c.ApplyFilters()
	c.GoToPage(1)

	if c.ResultCount() != 1 {
		t.Fatalf("Expected 1 match before clearing, got %d", c.ResultCount())
	}

	c.ClearFilters()
	if c.ResultCount() != 10 {
		t.Errorf("Expected full set after clearing, got %d", c.ResultCount())
	}
	if c.View.Page != 1 {
		t.Errorf("Expected page reset to 1, got %d", c.View.Page)
	}
	if c.View.Sort != types.SortByRating {
		t.Errorf("Expected sort key to survive clearing, got %s", c.View.Sort)
	}
}

func TestApplyFiltersResetsPage(t *testing.T) {
	c := loadedCatalog()
	c.View.PageSize = 3
	if !c.GoToPage(4) {
		t.Fatalf("Expected page 4 of 4 to be reachable")
	}
	c.Filter.Category = "writing"
	c.ApplyFilters()
	if c.View.Page != 1 {
		t.Errorf("Expected recompute to reset page, got %d", c.View.Page)
	}
}

func TestGoToPageRejectsOutOfRange(t *testing.T) {
	c := loadedCatalog()
	c.View.PageSize = 3
	c.GoToPage(2)

	if c.GoToPage(0) {
		t.Errorf("Expected page 0 to be rejected")
	}
	if c.GoToPage(c.TotalPages() + 1) {
		t.Errorf("Expected page past the end to be rejected")
	}
	if c.View.Page != 2 {
		t.Errorf("Expected current page unchanged after rejections, got %d", c.View.Page)
	}
}

func TestGoToPageOnEmptyResult(t *testing.T) {
	c := loadedCatalog()
	c.Filter.Query = "nothing-matches-this"
	c.ApplyFilters()
	if c.ResultCount() != 0 {
		t.Fatalf("Expected empty subset")
	}
	if c.GoToPage(1) {
		t.Errorf("Expected no reachable page on an empty subset")
	}
	if got := c.CurrentPage(); got != nil {
		t.Errorf("Expected no visible window, got %v", got)
	}
}

func TestStatsScenario(t *testing.T) {
	c := loadedCatalog()
	stats := c.Stats()
	if stats.TotalTools != 10 {
		t.Errorf("Expected 10 tools, got %d", stats.TotalTools)
	}
	if stats.TotalCategories != 2 {
		t.Errorf("Expected 2 distinct categories, got %d", stats.TotalCategories)
	}
	if stats.FreeTools != 5 {
		t.Errorf("Expected 5 free tools, got %d", stats.FreeTools)
	}

	// filtering must not touch the loaded stats
	c.Filter.Category = "writing"
	c.ApplyFilters()
	if c.Stats() != stats {
		t.Errorf("Expected stats to stay load-scoped, got %+v", c.Stats())
	}
}

func TestSetSortKeepsFilterAndReorders(t *testing.T) {
	c := loadedCatalog()
	c.Filter.Category = "writing"
	c.ApplyFilters()
	before := c.ResultCount()

	c.SetSort(types.SortByRating)
	if c.ResultCount() != before {
		t.Errorf("Expected sort to keep the subset size")
	}
	filtered := c.Filtered()
	for i := 1; i < len(filtered); i++ {
		if filtered[i].Rating > filtered[i-1].Rating {
			t.Errorf("Expected rating descending after SetSort")
		}
	}
}

func TestGetTool(t *testing.T) {
	c := loadedCatalog()
	tool, ok := c.GetTool("3")
	if !ok || tool.Id != "3" {
		t.Errorf("Expected to find tool 3, got %v %v", tool, ok)
	}
	if _, ok := c.GetTool("nope"); ok {
		t.Errorf("Expected unknown id to be missing")
	}
}

func TestCategoriesDistinct(t *testing.T) {
	c := loadedCatalog()
	categories := c.Categories()
	if len(categories) != 2 {
		t.Errorf("Expected 2 categories, got %v", categories)
	}
}

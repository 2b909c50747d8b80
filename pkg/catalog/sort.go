package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/matst80/slask-directory/pkg/types"
)

// newCollator must be called per Sort invocation, the collator's compare
// iterator holds scratch state and is not safe for concurrent use.
func newCollator() *collate.Collator {
	return collate.New(language.English, collate.IgnoreCase)
}

// Sort stably reorders tools in place according to the sort key. Name and
// category sort locale-aware ascending, date and rating descending. An
// unknown key leaves the order untouched. Safe to call from concurrent
// request handlers as long as the slices are distinct.
func Sort(tools []*types.Tool, key types.SortKey) {
	switch key {
	case types.SortByName:
		collator := newCollator()
		sort.SliceStable(tools, func(i, j int) bool {
			return collator.CompareString(tools[i].Name, tools[j].Name) < 0
		})
	case types.SortByDate:
		sort.SliceStable(tools, func(i, j int) bool {
			return tools[i].DateAdded.After(tools[j].DateAdded)
		})
	case types.SortByRating:
		sort.SliceStable(tools, func(i, j int) bool {
			return tools[i].Rating > tools[j].Rating
		})
	case types.SortByCategory:
		collator := newCollator()
		sort.SliceStable(tools, func(i, j int) bool {
			return collator.CompareString(tools[i].Category, tools[j].Category) < 0
		})
	}
}

package catalog

import (
	"strings"

	"github.com/matst80/slask-directory/pkg/types"
)

// Matches reports if a tool satisfies every active constraint in the
// filter state. The free text term matches name, description, category or
// any tag as a case-insensitive substring, facet selectors compare exactly.
func Matches(tool *types.Tool, state *types.FilterState) bool {
	if state.Category != "" && tool.Category != state.Category {
		return false
	}
	if state.Pricing != "" && tool.Pricing != state.Pricing {
		return false
	}
	if state.ListingType != "" && tool.ListingType != state.ListingType {
		return false
	}
	if state.Query == "" {
		return true
	}
	term := strings.ToLower(state.Query)
	if strings.Contains(strings.ToLower(tool.Name), term) ||
		strings.Contains(strings.ToLower(tool.Description), term) ||
		strings.Contains(strings.ToLower(tool.Category), term) {
		return true
	}
	for _, tag := range tool.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// Filter returns the subset of tools matching the filter state, in input
// order. Tools are never copied or mutated.
func Filter(tools []*types.Tool, state *types.FilterState) []*types.Tool {
	result := make([]*types.Tool, 0, len(tools))
	for _, tool := range tools {
		if Matches(tool, state) {
			result = append(result, tool)
		}
	}
	return result
}

package catalog

import (
	"fmt"
	"testing"
	"time"

	"github.com/matst80/slask-directory/pkg/types"
)

func testTools() []*types.Tool {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	pricing := []string{"free", "paid"}
	tools := make([]*types.Tool, 0, 10)
	for i := 0; i < 10; i++ {
		category := "image-generation"
		if i < 4 {
			category = "writing"
		}
		description := fmt.Sprintf("Tool number %d", i)
		if i == 2 {
			description = "A chat assistant for writers"
		}
		tools = append(tools, &types.Tool{
			Id:          fmt.Sprintf("%d", i+1),
			Name:        fmt.Sprintf("Tool %c", 'A'+i),
			Description: description,
			Category:    category,
			Pricing:     pricing[i%2],
			ListingType: "standard",
			Tags:        []string{"ai", fmt.Sprintf("tag-%d", i)},
			Rating:      float64(i%5) + 0.5,
			DateAdded:   base.AddDate(0, 0, i),
			WebsiteUrl:  "https://example.com",
		})
	}
	return tools
}

func TestFilterIsSubsetAndComplete(t *testing.T) {
	tools := testTools()
	state := &types.FilterState{Category: "writing", Pricing: "free"}
	result := Filter(tools, state)

	for _, tool := range result {
		if !Matches(tool, state) {
			t.Errorf("Filtered tool %s does not match active predicates", tool.Id)
		}
	}
	for _, tool := range tools {
		if Matches(tool, state) {
			found := false
			for _, r := range result {
				if r.Id == tool.Id {
					found = true
				}
			}
			if !found {
				t.Errorf("Tool %s matches but was excluded", tool.Id)
			}
		}
	}
	if len(result) >= len(tools) {
		t.Errorf("Expected a strict subset, got %d of %d", len(result), len(tools))
	}
}

func TestFilterTermMatchesAllTextFields(t *testing.T) {
	tools := testTools()
	cases := []struct {
		term     string
		expected int
	}{
		{"tool a", 1},    // name
		{"CHAT", 1},      // description, case-insensitive
		{"image-gen", 6}, // category
		{"tag-7", 1},     // tag
		{"does-not-exist-xx", 0},
		{"", 10},
	}
	for _, c := range cases {
		result := Filter(tools, &types.FilterState{Query: c.term})
		if len(result) != c.expected {
			t.Errorf("Term %q: expected %d matches, got %d", c.term, c.expected, len(result))
		}
	}
}

func TestFilterCombinesWithAnd(t *testing.T) {
	tools := testTools()
	// pricing=free AND term "chat" hits only tool 3 (index 2, free, chat in description)
	result := Filter(tools, &types.FilterState{Pricing: "free", Query: "chat"})
	if len(result) != 1 || result[0].Id != "3" {
		t.Errorf("Expected exactly tool 3, got %v", result)
	}
	// same term with pricing=paid excludes it
	result = Filter(tools, &types.FilterState{Pricing: "paid", Query: "chat"})
	if len(result) != 0 {
		t.Errorf("Expected no matches, got %d", len(result))
	}
}

func TestFilterDoesNotMutate(t *testing.T) {
	tools := testTools()
	name := tools[0].Name
	Filter(tools, &types.FilterState{Query: "tool"})
	if tools[0].Name != name {
		t.Errorf("Filter mutated an entry")
	}
}

package catalog

import "github.com/matst80/slask-directory/pkg/types"

// PageWindow returns the slice of tools visible on the 1-based page. A page
// outside [1, TotalPages] yields nil.
func PageWindow(tools []*types.Tool, page, pageSize int) []*types.Tool {
	if page < 1 || pageSize < 1 {
		return nil
	}
	start := (page - 1) * pageSize
	if start >= len(tools) {
		return nil
	}
	end := min(start+pageSize, len(tools))
	return tools[start:end]
}

// TotalPages is ceil(total/pageSize).
func TotalPages(total, pageSize int) int {
	if pageSize < 1 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// PageLink is one entry of the pagination control sequence.
type PageLink struct {
	Page     int    `json:"page,omitempty"`
	Label    string `json:"label,omitempty"`
	Active   bool   `json:"active,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
	Ellipsis bool   `json:"ellipsis,omitempty"`
}

// PageLinks produces the control sequence for the given current page:
// previous control, current page ±2 with page 1 and the last page always
// present (ellipsis markers on disjoint gaps), next control. A single page
// needs no controls at all.
func PageLinks(current, totalPages int) []PageLink {
	if totalPages <= 1 {
		return nil
	}
	links := make([]PageLink, 0, totalPages+4)
	links = append(links, PageLink{Page: current - 1, Label: "prev", Disabled: current == 1})

	startPage := max(1, current-2)
	endPage := min(totalPages, current+2)

	if startPage > 1 {
		links = append(links, PageLink{Page: 1})
		if startPage > 2 {
			links = append(links, PageLink{Ellipsis: true, Disabled: true})
		}
	}
	for i := startPage; i <= endPage; i++ {
		links = append(links, PageLink{Page: i, Active: i == current})
	}
	if endPage < totalPages {
		if endPage < totalPages-1 {
			links = append(links, PageLink{Ellipsis: true, Disabled: true})
		}
		links = append(links, PageLink{Page: totalPages})
	}

	links = append(links, PageLink{Page: current + 1, Label: "next", Disabled: current == totalPages})
	return links
}

package types

// SortKey selects the ordering of the filtered tool list.
type SortKey string

const (
	SortByName     = SortKey("name")
	SortByDate     = SortKey("date")
	SortByRating   = SortKey("rating")
	SortByCategory = SortKey("category")
)

// FilterState holds the active search term and facet selections. Empty
// values mean "no constraint", all populated fields combine with AND.
type FilterState struct {
	Query       string `json:"query" schema:"search"`
	Category    string `json:"category" schema:"category"`
	Pricing     string `json:"pricing" schema:"pricing"`
	ListingType string `json:"listingType" schema:"listing_type"`
}

func (f *FilterState) IsEmpty() bool {
	return f.Query == "" && f.Category == "" && f.Pricing == "" && f.ListingType == ""
}

// ViewState is the mutable view portion of the directory: current page,
// fixed page size and sort key. Kept separate from FilterState so clearing
// filters can leave the sort key alone.
type ViewState struct {
	Page     int     `json:"page" schema:"page"`
	PageSize int     `json:"pageSize" schema:"per_page"`
	Sort     SortKey `json:"sort" schema:"sort_by"`
}

// DirectoryRequest is the full serializable query a client can send, used
// by the server-side listing endpoint.
type DirectoryRequest struct {
	FilterState
	ViewState
}

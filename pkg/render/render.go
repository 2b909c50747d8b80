package render

import (
	"html/template"
	"strings"

	"github.com/matst80/slask-directory/pkg/catalog"
	"github.com/matst80/slask-directory/pkg/types"
)

// CardView is the precomputed display model of one tool card. Templates
// stay dumb, every label and style class is resolved here.
type CardView struct {
	Id            string
	Name          string
	Description   string
	CategoryLabel string
	PricingLabel  string
	PricingBadge  string
	ListingClass  string
	Rating        float64
	Stars         StarStrip
	Tags          []string
	WebsiteUrl    string
}

// DetailView extends the card with the fields only shown in the modal.
type DetailView struct {
	CardView
	DetailedDescription string
	Features            []string
	AllTags             []string
	DateAdded           string
}

func NewCardView(tool *types.Tool) CardView {
	return CardView{
		Id:            tool.Id,
		Name:          tool.Name,
		Description:   tool.Description,
		CategoryLabel: FormatCategory(tool.Category),
		PricingLabel:  FormatPricing(tool.Pricing),
		PricingBadge:  PricingBadgeClass(tool.Pricing),
		ListingClass:  ListingIndicatorClass(tool.ListingType),
		Rating:        tool.ClampedRating(),
		Stars:         Stars(tool.Rating),
		Tags:          DisplayTags(tool.Tags),
		WebsiteUrl:    tool.WebsiteUrl,
	}
}

func NewDetailView(tool *types.Tool) DetailView {
	return DetailView{
		CardView:            NewCardView(tool),
		DetailedDescription: tool.DetailedDescription,
		Features:            tool.Features,
		AllTags:             tool.Tags,
		DateAdded:           tool.DateAdded.Format("2006-01-02"),
	}
}

var templates = template.Must(template.New("directory").Funcs(template.FuncMap{
	"times": func(n int) []struct{} { return make([]struct{}, n) },
}).Parse(`
{{define "stars"}}<span class="rating-stars">{{range times .Full}}<i class="star star-full"></i>{{end}}{{range times .Half}}<i class="star star-half"></i>{{end}}{{range times .Empty}}<i class="star star-empty"></i>{{end}}</span>{{end}}

{{define "card"}}<div class="card tool-card">
{{if .ListingClass}}<div class="listing-indicator {{.ListingClass}}"></div>{{end}}
<h5 class="card-title">{{.Name}}</h5>
<span class="badge badge-category">{{.CategoryLabel}}</span>
<p class="card-text">{{.Description}}</p>
<span class="badge badge-pricing {{.PricingBadge}}">{{.PricingLabel}}</span>
{{template "stars" .Stars}}<span class="rating-value">{{.Rating}}</span>
<div class="tool-tags">{{range .Tags}}<span class="badge badge-tag">{{.}}</span>{{end}}</div>
<a href="{{.WebsiteUrl}}" target="_blank" rel="noopener">Visit</a>
</div>{{end}}

{{define "grid"}}{{if .Cards}}{{range .Cards}}{{template "card" .}}{{end}}{{else}}<div class="no-results">No tools found. Try adjusting your filters.</div>{{end}}{{end}}

{{define "detail"}}<div class="tool-detail">
{{if .ListingClass}}<div class="listing-indicator {{.ListingClass}}"></div>{{end}}
<h4>{{.Name}}</h4>
<span class="badge badge-category">{{.CategoryLabel}}</span>
<span class="badge badge-pricing {{.PricingBadge}}">{{.PricingLabel}}</span>
{{template "stars" .Stars}}<span class="rating-value">{{.Rating}}</span>
<p>{{.DetailedDescription}}</p>
<ul class="tool-features">{{range .Features}}<li>{{.}}</li>{{end}}</ul>
<div class="tool-tags">{{range .AllTags}}<span class="badge badge-tag">{{.}}</span>{{end}}</div>
<p class="date-added">Added {{.DateAdded}}</p>
</div>{{end}}

{{define "pagination"}}{{if .}}<ul class="pagination">{{range .}}{{if .Ellipsis}}<li class="page-item disabled"><span class="page-link">&hellip;</span></li>{{else}}<li class="page-item{{if .Active}} active{{end}}{{if .Disabled}} disabled{{end}}"><a class="page-link" href="#tools" data-page="{{.Page}}">{{if .Label}}{{.Label}}{{else}}{{.Page}}{{end}}</a></li>{{end}}{{end}}</ul>{{end}}{{end}}
`))

type gridData struct {
	Cards []CardView
}

// Grid renders the visible window of tools, or the empty state when the
// filtered subset has no members.
func Grid(tools []*types.Tool) (string, error) {
	data := gridData{Cards: make([]CardView, 0, len(tools))}
	for _, tool := range tools {
		data.Cards = append(data.Cards, NewCardView(tool))
	}
	var sb strings.Builder
	if err := templates.ExecuteTemplate(&sb, "grid", data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Card renders a single tool card.
func Card(tool *types.Tool) (string, error) {
	var sb strings.Builder
	if err := templates.ExecuteTemplate(&sb, "card", NewCardView(tool)); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Detail renders the modal view of a single tool.
func Detail(tool *types.Tool) (string, error) {
	var sb strings.Builder
	if err := templates.ExecuteTemplate(&sb, "detail", NewDetailView(tool)); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Pagination renders the page-link sequence.
func Pagination(links []catalog.PageLink) (string, error) {
	var sb strings.Builder
	if err := templates.ExecuteTemplate(&sb, "pagination", links); err != nil {
		return "", err
	}
	return sb.String(), nil
}

package types

import (
	"time"
)

// Pricing is the pricing tier of a listed tool.
type Pricing string

const (
	PricingFree       = Pricing("free")
	PricingPaid       = Pricing("paid")
	PricingFreemium   = Pricing("freemium")
	PricingOpenSource = Pricing("open_source")
)

// NormalizePricing maps any wire value onto a known tier. Unknown values
// fall back to free so a bad payload never breaks rendering.
func NormalizePricing(value string) Pricing {
	switch Pricing(value) {
	case PricingFree, PricingPaid, PricingFreemium, PricingOpenSource:
		return Pricing(value)
	}
	return PricingFree
}

func (p Pricing) IsFree() bool {
	return p == PricingFree || p == PricingOpenSource
}

// ListingType is the promotional status of a listing. It only affects the
// indicator shown on the card, never filtering beyond the explicit selector.
type ListingType string

const (
	ListingStandard = ListingType("standard")
	ListingVerified = ListingType("verified")
	ListingFeatured = ListingType("featured")
)

// NormalizeListingType accepts the legacy "simple" value and anything
// unknown as standard.
func NormalizeListingType(value string) ListingType {
	switch ListingType(value) {
	case ListingVerified, ListingFeatured:
		return ListingType(value)
	}
	return ListingStandard
}

type Tool struct {
	Id                  string    `json:"id"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	DetailedDescription string    `json:"detailed_description,omitempty"`
	Category            string    `json:"category"`
	Pricing             string    `json:"pricing"`
	ListingType         string    `json:"listing_type"`
	Tags                []string  `json:"tags"`
	Features            []string  `json:"features"`
	Rating              float64   `json:"rating"`
	DateAdded           time.Time `json:"date_added"`
	WebsiteUrl          string    `json:"website_url"`
	LogoUrl             string    `json:"logo_url,omitempty"`
}

func (t *Tool) GetPricing() Pricing {
	return NormalizePricing(t.Pricing)
}

func (t *Tool) GetListingType() ListingType {
	return NormalizeListingType(t.ListingType)
}

// ClampedRating limits the rating to [0,5] so the star strip always has
// exactly one fractional boundary.
func (t *Tool) ClampedRating() float64 {
	if t.Rating < 0 {
		return 0
	}
	if t.Rating > 5 {
		return 5
	}
	return t.Rating
}

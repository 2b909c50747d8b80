package render

import (
	"strings"
	"unicode"

	"github.com/matst80/slask-directory/pkg/types"
)

// FormatCategory turns a hyphenated category code into a display label,
// title-casing every word ("image-generation" -> "Image Generation").
func FormatCategory(code string) string {
	words := strings.Split(code, "-")
	for i, word := range words {
		runes := []rune(word)
		if len(runes) > 0 {
			runes[0] = unicode.ToUpper(runes[0])
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

var pricingLabels = map[types.Pricing]string{
	types.PricingFree:       "Free",
	types.PricingPaid:       "Paid",
	types.PricingFreemium:   "Freemium",
	types.PricingOpenSource: "Open Source",
}

var pricingBadges = map[types.Pricing]string{
	types.PricingFree:       "badge-free",
	types.PricingPaid:       "badge-paid",
	types.PricingFreemium:   "badge-freemium",
	types.PricingOpenSource: "badge-open-source",
}

// FormatPricing is the display label of a pricing tier. Unknown values
// already normalized to free.
func FormatPricing(value string) string {
	return pricingLabels[types.NormalizePricing(value)]
}

// PricingBadgeClass is the card badge style for a pricing tier.
func PricingBadgeClass(value string) string {
	return pricingBadges[types.NormalizePricing(value)]
}

// StarStrip is the 5-unit rating indicator of a card.
type StarStrip struct {
	Full  int
	Half  int
	Empty int
}

// Stars computes the strip for a rating, clamped to [0,5] first. The half
// cell appears exactly once when the rating has a fractional part.
func Stars(rating float64) StarStrip {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	full := int(rating)
	half := 0
	if rating != float64(full) {
		half = 1
	}
	return StarStrip{
		Full:  full,
		Half:  half,
		Empty: 5 - full - half,
	}
}

// ListingIndicatorClass maps the listing tier to its card indicator style.
// Standard listings carry no indicator.
func ListingIndicatorClass(value string) string {
	switch types.NormalizeListingType(value) {
	case types.ListingVerified:
		return "listing-verified"
	case types.ListingFeatured:
		return "listing-featured"
	}
	return ""
}

// DisplayTags truncates the tag list to the first three for card display.
func DisplayTags(tags []string) []string {
	if len(tags) > 3 {
		return tags[:3]
	}
	return tags
}

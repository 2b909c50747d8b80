package types

import "testing"

func TestNormalizePricing(t *testing.T) {
	if NormalizePricing("open_source") != PricingOpenSource {
		t.Errorf("Expected open_source to be kept")
	}
	if NormalizePricing("trial") != PricingFree {
		t.Errorf("Expected unknown pricing to fall back to free")
	}
	if NormalizePricing("") != PricingFree {
		t.Errorf("Expected empty pricing to fall back to free")
	}
}

func TestNormalizeListingType(t *testing.T) {
	if NormalizeListingType("featured") != ListingFeatured {
		t.Errorf("Expected featured to be kept")
	}
	if NormalizeListingType("simple") != ListingStandard {
		t.Errorf("Expected legacy simple to become standard")
	}
	if NormalizeListingType("gold") != ListingStandard {
		t.Errorf("Expected unknown listing type to become standard")
	}
}

func TestClampedRating(t *testing.T) {
	tool := Tool{Rating: 6.2}
	if tool.ClampedRating() != 5 {
		t.Errorf("Expected rating to clamp to 5, got %f", tool.ClampedRating())
	}
	tool.Rating = -1
	if tool.ClampedRating() != 0 {
		t.Errorf("Expected rating to clamp to 0, got %f", tool.ClampedRating())
	}
	tool.Rating = 3.5
	if tool.ClampedRating() != 3.5 {
		t.Errorf("Expected rating to pass through, got %f", tool.ClampedRating())
	}
}

func TestIsFree(t *testing.T) {
	if !PricingFree.IsFree() || !PricingOpenSource.IsFree() {
		t.Errorf("Expected free and open_source to count as free")
	}
	if PricingPaid.IsFree() || PricingFreemium.IsFree() {
		t.Errorf("Expected paid and freemium to not count as free")
	}
}

func TestSettingsToggle(t *testing.T) {
	s := &Settings{Theme: "light"}
	if s.ToggleTheme() != "dark" {
		t.Errorf("Expected toggle to dark")
	}
	if s.ToggleTheme() != "light" {
		t.Errorf("Expected toggle back to light")
	}
	s.SetTheme("purple")
	if s.GetTheme() != "light" {
		t.Errorf("Expected unknown theme to normalize to light")
	}
}

package extract

import (
	"strings"
	"testing"

	"wayfare/internal/models/db_models"
)

func TestBuildAttractionFullProduct(t *testing.T) {
	product := Record{
		"slug":             "prcgn-burj-khalifa",
		"name":             "Burj Khalifa At the Top",
		"shortDescription": "Observation deck",
		"description":      "Levels 124 and 125 of the tallest building",
		"cancellationPolicy": map[string]any{
			"description": "Free cancellation up to 24 hours",
		},
		"pricing": map[string]any{
			"price": map[string]any{"value": 189.5},
		},
		"reviewsStats": map[string]any{"avg": 4.6, "total": float64(12044)},
		"images": []any{
			map[string]any{"url": "https://img/a.jpg"},
			map[string]any{"url": "https://img/b.jpg"},
		},
		"inclusions": []any{"Skip-the-line entry", "Multimedia guide"},
	}
	geo := db_models.GeoLocation{LocationName: "Dubai", Country: "United Arab Emirates"}

	attraction := BuildAttraction(product, geo)

	if attraction.AttractionSlug != "prcgn-burj-khalifa" {
		t.Errorf("slug = %q", attraction.AttractionSlug)
	}
	if attraction.Price != 189.5 || attraction.Rating != 4.6 || attraction.ReviewCount != 12044 {
		t.Errorf("numbers = %v %v %d", attraction.Price, attraction.Rating, attraction.ReviewCount)
	}
	if attraction.CancellationPolicy != "Free cancellation up to 24 hours" {
		t.Errorf("policy = %q", attraction.CancellationPolicy)
	}
	if attraction.City != "Dubai" || attraction.Country != "United Arab Emirates" {
		t.Errorf("inherited location = %q %q", attraction.City, attraction.Country)
	}

	if len(attraction.Images) != 2 {
		t.Fatalf("images = %d, want 2", len(attraction.Images))
	}
	for i, img := range attraction.Images {
		if img.DisplayOrder != i {
			t.Errorf("image %d display order = %d, source order must be preserved", i, img.DisplayOrder)
		}
	}
	if attraction.Images[0].ImageURL != "https://img/a.jpg" {
		t.Errorf("primary image = %q", attraction.Images[0].ImageURL)
	}

	if len(attraction.Inclusions) != 2 || attraction.Inclusions[0].InclusionText != "Skip-the-line entry" {
		t.Errorf("inclusions = %v", attraction.Inclusions)
	}
}

func TestBuildAttractionLegacyAliases(t *testing.T) {
	product := Record{
		"id":                  "old-shape-17",
		"short_description":   "short",
		"long_description":    "long",
		"cancellation_policy": "No refunds",
		"price":               float64(25),
		"rating":              3.9,
		"review_count":        float64(41),
	}

	attraction := BuildAttraction(product, db_models.GeoLocation{})

	if attraction.AttractionSlug != "old-shape-17" {
		t.Errorf("slug should fall back to id, got %q", attraction.AttractionSlug)
	}
	if attraction.ShortDescription != "short" || attraction.LongDescription != "long" {
		t.Errorf("descriptions = %q %q", attraction.ShortDescription, attraction.LongDescription)
	}
	if attraction.CancellationPolicy != "No refunds" {
		t.Errorf("policy = %q", attraction.CancellationPolicy)
	}
	if attraction.Price != 25 || attraction.Rating != 3.9 || attraction.ReviewCount != 41 {
		t.Errorf("flat aliases = %v %v %d", attraction.Price, attraction.Rating, attraction.ReviewCount)
	}
}

func TestBuildAttractionDefaults(t *testing.T) {
	attraction := BuildAttraction(Record{}, db_models.GeoLocation{})

	if !strings.HasPrefix(attraction.AttractionSlug, "attraction_") {
		t.Errorf("missing slug should get synthetic fallback, got %q", attraction.AttractionSlug)
	}
	if attraction.AttractionName != "Unknown Attraction" {
		t.Errorf("name = %q", attraction.AttractionName)
	}
	if len(attraction.Images) != 0 || len(attraction.Inclusions) != 0 {
		t.Errorf("children should be empty, got %d images %d inclusions",
			len(attraction.Images), len(attraction.Inclusions))
	}
}

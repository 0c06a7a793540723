package extract

import (
	"strings"
	"testing"
)

func TestBuildGeoLocationAliases(t *testing.T) {
	rec := Record{
		"name":     "Barcelona",
		"country":  "Spain",
		"cc1":      "es",
		"latitude": 41.3874,
		"lon":      2.1686,
		"dest_id":  "-372490",
		"timezone": "Europe/Madrid",
	}

	geo := BuildGeoLocation(rec, "barcelona")

	if geo.LocationName != "Barcelona" {
		t.Errorf("LocationName = %q", geo.LocationName)
	}
	if geo.Country != "Spain" || geo.CountryCode != "es" {
		t.Errorf("country fields = %q %q", geo.Country, geo.CountryCode)
	}
	if geo.Latitude != 41.3874 || geo.Longitude != 2.1686 {
		t.Errorf("coordinates = %v %v", geo.Latitude, geo.Longitude)
	}
	if geo.DestID != "-372490" || geo.Timezone != "Europe/Madrid" {
		t.Errorf("dest/timezone = %q %q", geo.DestID, geo.Timezone)
	}
}

func TestBuildGeoLocationDefaults(t *testing.T) {
	geo := BuildGeoLocation(Record{}, "atlantis")

	if geo.LocationName != "atlantis" {
		t.Errorf("LocationName should fall back to the query, got %q", geo.LocationName)
	}
	if geo.Country != "Unknown" {
		t.Errorf("Country = %q, want Unknown", geo.Country)
	}
	if geo.CountryCode != "" || geo.Timezone != "" {
		t.Errorf("codes should default empty: %q %q", geo.CountryCode, geo.Timezone)
	}
	if geo.Latitude != 0 || geo.Longitude != 0 {
		t.Errorf("coordinates should default to zero: %v %v", geo.Latitude, geo.Longitude)
	}
	if !strings.HasPrefix(geo.DestID, "dest_") {
		t.Errorf("missing dest_id should get synthetic fallback, got %q", geo.DestID)
	}
}

func TestBuildGeoLocationNumericDestID(t *testing.T) {
	geo := BuildGeoLocation(Record{"id": float64(88301)}, "x")
	if geo.DestID != "88301" {
		t.Errorf("numeric id should format as string, got %q", geo.DestID)
	}
}

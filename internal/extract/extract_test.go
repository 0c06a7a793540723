package extract

import (
	"strings"
	"testing"
)

func TestStringFallbackChain(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		keys []string
		want string
	}{
		{"first key wins", Record{"city_name": "Dubai", "name": "ignored"}, []string{"city_name", "name"}, "Dubai"},
		{"falls through missing key", Record{"name": "Dubai"}, []string{"city_name", "name"}, "Dubai"},
		{"falls through nil value", Record{"city_name": nil, "name": "Dubai"}, []string{"city_name", "name"}, "Dubai"},
		{"falls through empty string", Record{"city_name": "", "name": "Dubai"}, []string{"city_name", "name"}, "Dubai"},
		{"numeric id formatted", Record{"id": float64(5427)}, []string{"dest_id", "id"}, "5427"},
		{"nothing matches", Record{"other": "x"}, []string{"city_name", "name"}, ""},
		{"nil record", nil, []string{"city_name"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.String(tt.keys...); got != tt.want {
				t.Errorf("String(%v) = %q, want %q", tt.keys, got, tt.want)
			}
		})
	}
}

func TestStringOrFallback(t *testing.T) {
	rec := Record{}
	if got := rec.StringOr("Unknown", "country", "country_name"); got != "Unknown" {
		t.Errorf("StringOr fallback = %q, want Unknown", got)
	}
	rec = Record{"country_name": "France"}
	if got := rec.StringOr("Unknown", "country", "country_name"); got != "France" {
		t.Errorf("StringOr = %q, want France", got)
	}
}

func TestFloatFallbackChain(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		keys []string
		want float64
	}{
		{"plain number", Record{"latitude": 25.2048}, []string{"latitude", "lat"}, 25.2048},
		{"second alias", Record{"lat": 25.2048}, []string{"latitude", "lat"}, 25.2048},
		{"numeric string parses", Record{"price": "149.99"}, []string{"price"}, 149.99},
		{"garbage string skipped", Record{"price": "n/a"}, []string{"price"}, 0},
		{"missing yields zero", Record{}, []string{"latitude", "lat"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.Float(tt.keys...); got != tt.want {
				t.Errorf("Float(%v) = %v, want %v", tt.keys, got, tt.want)
			}
		})
	}
}

func TestRecordChainingNeverPanics(t *testing.T) {
	rec := Record{"priceBreakdown": map[string]any{"total": map[string]any{"units": float64(420)}}}

	if got := rec.Record("priceBreakdown").Record("total").Float("units"); got != 420 {
		t.Errorf("nested walk = %v, want 420", got)
	}
	// Every intermediate missing: walk resolves to the default.
	if got := rec.Record("nope").Record("total").Float("units"); got != 0 {
		t.Errorf("broken walk = %v, want 0", got)
	}
	if got := Record(nil).Record("a").Record("b").String("c"); got != "" {
		t.Errorf("walk on nil record = %q, want empty", got)
	}
	// Non-object value under the key behaves like a missing one.
	if got := (Record{"data": "oops"}).Record("data").String("x"); got != "" {
		t.Errorf("walk through scalar = %q, want empty", got)
	}
}

func TestStringsFlattening(t *testing.T) {
	rec := Record{
		"images": []any{
			map[string]any{"url": "https://img/1.jpg"},
			"https://img/2.jpg",
			map[string]any{"alt": "no url"},
			"",
		},
		"inclusions": []any{"Guide", "Tickets"},
	}

	images := rec.Strings("images", "url")
	if len(images) != 2 || images[0] != "https://img/1.jpg" || images[1] != "https://img/2.jpg" {
		t.Errorf("Strings(images) = %v", images)
	}

	inclusions := rec.Strings("inclusions", "")
	if len(inclusions) != 2 || inclusions[0] != "Guide" {
		t.Errorf("Strings(inclusions) = %v", inclusions)
	}
}

func TestFirstLastOnEmpty(t *testing.T) {
	var none []Record
	if got := First(none).String("name"); got != "" {
		t.Errorf("First(empty) lookup = %q", got)
	}
	if got := Last(none).String("name"); got != "" {
		t.Errorf("Last(empty) lookup = %q", got)
	}

	list := []Record{{"name": "a"}, {"name": "b"}}
	if First(list).String("name") != "a" || Last(list).String("name") != "b" {
		t.Errorf("First/Last order wrong: %v", list)
	}
}

func TestSyntheticID(t *testing.T) {
	a := SyntheticID("flight")
	b := SyntheticID("flight")

	if !strings.HasPrefix(a, "flight_") {
		t.Errorf("SyntheticID prefix missing: %q", a)
	}
	// Not reproducible: two calls never collide.
	if a == b {
		t.Errorf("SyntheticID produced duplicate %q", a)
	}
}

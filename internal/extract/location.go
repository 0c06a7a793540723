package extract

import "wayfare/internal/models/db_models"

// BuildGeoLocation maps one upstream location record to its canonical form.
// query is the caller's search term, used as the last-resort name.
func BuildGeoLocation(rec Record, query string) db_models.GeoLocation {
	return db_models.GeoLocation{
		LocationName: rec.StringOr(query, "city_name", "name", "label"),
		Country:      rec.StringOr("Unknown", "country", "country_name"),
		CountryCode:  rec.String("cc1", "country_code", "cc"),
		Latitude:     rec.Float("latitude", "lat"),
		Longitude:    rec.Float("longitude", "lon", "lng"),
		DestID:       rec.StringOr(SyntheticID("dest"), "dest_id", "id"),
		Timezone:     rec.String("timezone", "tz"),
	}
}

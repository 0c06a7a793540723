package db_models

// GeoLocation is one canonical destination. Identity is the
// (location_name, dest_id) pair; repeat sightings refresh country fields
// only, coordinates stay as first recorded.
type GeoLocation struct {
	BaseModel
	LocationName string `gorm:"uniqueIndex:idx_geo_locations_name_dest"`
	DestID       string `gorm:"uniqueIndex:idx_geo_locations_name_dest"`
	Country      string
	CountryCode  string
	Latitude     float64
	Longitude    float64
	Timezone     string

	Flights     []Flight     `gorm:"foreignKey:GeoLocationID"`
	Attractions []Attraction `gorm:"foreignKey:GeoLocationID"`
}

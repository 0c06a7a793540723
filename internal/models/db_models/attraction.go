package db_models

import "github.com/google/uuid"

// Attraction is one persisted attraction listing, keyed by slug. Its image
// and inclusion rows always mirror the latest ingestion exactly; the writer
// replaces them wholesale inside one transaction.
type Attraction struct {
	BaseModel
	AttractionSlug     string `gorm:"uniqueIndex"`
	AttractionName     string
	ShortDescription   string
	LongDescription    string
	CancellationPolicy string
	Price              float64
	Currency           string
	Rating             float64
	ReviewCount        int
	City               string
	Country            string

	GeoLocationID uuid.UUID `gorm:"type:uuid"`
	GeoLocation   GeoLocation

	Images     []AttractionImage     `gorm:"foreignKey:AttractionID;constraint:OnDelete:CASCADE"`
	Inclusions []AttractionInclusion `gorm:"foreignKey:AttractionID;constraint:OnDelete:CASCADE"`
}

// Child rows use plain integer keys and no soft delete: replacement is a
// hard DELETE followed by fresh inserts, so nothing may linger.

type AttractionImage struct {
	ID           uint      `gorm:"primaryKey"`
	AttractionID uuid.UUID `gorm:"type:uuid;index"`
	ImageURL     string
	DisplayOrder int
}

type AttractionInclusion struct {
	ID            uint      `gorm:"primaryKey"`
	AttractionID  uuid.UUID `gorm:"type:uuid;index"`
	InclusionText string
}

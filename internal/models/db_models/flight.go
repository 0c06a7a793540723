package db_models

import "github.com/google/uuid"

// Flight is one persisted flight offer, keyed by the provider token.
// Re-ingesting the same token refreshes the fare only.
type Flight struct {
	BaseModel
	FlightToken          string `gorm:"uniqueIndex"`
	FlightName           string
	FlightNumber         string
	AirlineName          string
	AirlineLogo          string
	DepartureAirport     string
	DepartureAirportCode string
	ArrivalAirport       string
	ArrivalAirportCode   string
	DepartureTime        string
	ArrivalTime          string
	Duration             string
	Stops                int
	Fare                 float64
	Currency             string
	CabinClass           string

	GeoLocationID uuid.UUID `gorm:"type:uuid"`
	GeoLocation   GeoLocation
}

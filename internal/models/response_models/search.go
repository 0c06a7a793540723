package response_models

type GeoInfo struct {
	ID           string  `json:"id,omitempty"`
	LocationName string  `json:"location_name"`
	Country      string  `json:"country"`
	CountryCode  string  `json:"country_code"`
	DestID       string  `json:"dest_id,omitempty"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Timezone     string  `json:"timezone,omitempty"`
	Label        string  `json:"label,omitempty"`
	CreatedAt    int64   `json:"created_at,omitempty"`
}

type FlightSummary struct {
	ID                   string  `json:"id"`
	FlightToken          string  `json:"flight_token"`
	FlightName           string  `json:"flight_name"`
	FlightNumber         string  `json:"flight_number"`
	AirlineName          string  `json:"airline_name"`
	AirlineLogo          string  `json:"airline_logo"`
	DepartureAirport     string  `json:"departure_airport"`
	DepartureAirportCode string  `json:"departure_airport_code"`
	ArrivalAirport       string  `json:"arrival_airport"`
	ArrivalAirportCode   string  `json:"arrival_airport_code"`
	DepartureTime        string  `json:"departure_time"`
	ArrivalTime          string  `json:"arrival_time"`
	Duration             string  `json:"duration"`
	Stops                int     `json:"stops"`
	Fare                 float64 `json:"fare"`
	Currency             string  `json:"currency"`
	CabinClass           string  `json:"cabin_class"`
}

type AttractionSummary struct {
	ID                 string   `json:"id"`
	Slug               string   `json:"slug"`
	Name               string   `json:"name"`
	ShortDescription   string   `json:"short_description"`
	LongDescription    string   `json:"long_description"`
	CancellationPolicy string   `json:"cancellation_policy"`
	Price              float64  `json:"price"`
	Currency           string   `json:"currency"`
	Rating             float64  `json:"rating"`
	ReviewCount        int      `json:"review_count"`
	City               string   `json:"city"`
	Country            string   `json:"country"`
	Images             []string `json:"images"`
	Inclusions         []string `json:"inclusions"`
}

type SearchResponse struct {
	GeoInfo     GeoInfo             `json:"GeoInfo"`
	Flights     []FlightSummary     `json:"Flights"`
	Attractions []AttractionSummary `json:"Attractions"`
}

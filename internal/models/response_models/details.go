package response_models

type AirportInfo struct {
	Airport     string `json:"airport"`
	AirportCode string `json:"airport_code"`
	Time        string `json:"time"`
}

type FareInfo struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type FlightDetail struct {
	ID           string      `json:"id"`
	FlightToken  string      `json:"flight_token"`
	FlightName   string      `json:"flight_name"`
	FlightNumber string      `json:"flight_number"`
	AirlineName  string      `json:"airline_name"`
	AirlineLogo  string      `json:"airline_logo"`
	Departure    AirportInfo `json:"departure"`
	Arrival      AirportInfo `json:"arrival"`
	Duration     string      `json:"duration"`
	Stops        int         `json:"stops"`
	Fare         FareInfo    `json:"fare"`
	CabinClass   string      `json:"cabin_class"`
	CreatedAt    int64       `json:"created_at"`
}

type FlightDetailResponse struct {
	GeoInfo GeoInfo      `json:"GeoInfo"`
	Flight  FlightDetail `json:"Flight"`
}

type DescriptionInfo struct {
	Short string `json:"short"`
	Long  string `json:"long"`
}

type PlaceInfo struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

type PricingInfo struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type RatingInfo struct {
	Score       float64 `json:"score"`
	ReviewCount int     `json:"review_count"`
}

type ImageInfo struct {
	URL   string `json:"url"`
	Order int    `json:"order"`
}

type AttractionDetail struct {
	ID                 string          `json:"id"`
	Slug               string          `json:"slug"`
	Name               string          `json:"name"`
	Description        DescriptionInfo `json:"description"`
	Location           PlaceInfo       `json:"location"`
	Pricing            PricingInfo     `json:"pricing"`
	Rating             RatingInfo      `json:"rating"`
	CancellationPolicy string          `json:"cancellation_policy"`
	Images             []ImageInfo     `json:"images"`
	Inclusions         []string        `json:"inclusions"`
	CreatedAt          int64           `json:"created_at"`
}

type AttractionDetailResponse struct {
	GeoInfo    GeoInfo          `json:"GeoInfo"`
	Attraction AttractionDetail `json:"Attraction"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database"`
}

package services

import (
	"context"
	"log"

	"wayfare/internal/extract"
	"wayfare/internal/models/db_models"
	"wayfare/internal/models/response_models"
	"wayfare/internal/repositories"
	"wayfare/pkg/utils"
)

// Per-search ingestion caps.
const (
	maxFlightsPerSearch     = 10
	maxAttractionsPerSearch = 20
)

type SearchServiceInterface interface {
	SearchLocation(ctx context.Context, locationName string) (response_models.SearchResponse, error)
}

// SearchService runs one ingestion pass per search: resolve the location
// first (everything hangs off its id, so a failure here fails the request),
// then ingest flights and attractions. Each of those two phases degrades to
// an empty list on upstream failure, and inside a phase a single bad item is
// logged and skipped, never fatal to the rest of the batch.
type SearchService struct {
	booking        BookingAPIClient
	geoRepo        repositories.GeoLocationRepository
	flightRepo     repositories.FlightRepository
	attractionRepo repositories.AttractionRepository
}

func NewSearchService(
	booking BookingAPIClient,
	geoRepo repositories.GeoLocationRepository,
	flightRepo repositories.FlightRepository,
	attractionRepo repositories.AttractionRepository) SearchServiceInterface {
	return &SearchService{
		booking:        booking,
		geoRepo:        geoRepo,
		flightRepo:     flightRepo,
		attractionRepo: attractionRepo,
	}
}

func (s *SearchService) SearchLocation(ctx context.Context, locationName string) (response_models.SearchResponse, error) {
	payload, err := s.booking.SearchAttractionLocation(ctx, locationName)
	if err != nil {
		log.Printf("Location search failed for %q: %v", locationName, err)
		return response_models.SearchResponse{}, utils.ErrUpstreamError
	}

	candidates := locationCandidates(payload)
	if len(candidates) == 0 {
		return response_models.SearchResponse{}, utils.ErrLocationNotFound
	}
	locationInfo := candidates[0]

	geo := extract.BuildGeoLocation(locationInfo, locationName)
	if _, err := s.geoRepo.Upsert(ctx, &geo); err != nil {
		log.Printf("Error saving geo location %q: %v", geo.LocationName, err)
		return response_models.SearchResponse{}, utils.ErrDatabaseError
	}

	flights := s.ingestFlights(ctx, locationName, geo)
	attractions := s.ingestAttractions(ctx, locationInfo.String("dest_id", "id"), geo)

	info := GeoInfoFromModel(geo)
	info.Label = locationInfo.StringOr(geo.LocationName, "label")

	return response_models.SearchResponse{
		GeoInfo:     info,
		Flights:     flights,
		Attractions: attractions,
	}, nil
}

// locationCandidates copes with the provider's response-shape drift: the
// match list arrives either directly under "data" or nested one level down
// under "destinations".
func locationCandidates(payload extract.Record) []extract.Record {
	if records := payload.Records("data"); len(records) > 0 {
		return records
	}
	if records := payload.Record("data").Records("destinations"); len(records) > 0 {
		return records
	}
	return nil
}

func (s *SearchService) ingestFlights(ctx context.Context, query string, geo db_models.GeoLocation) []response_models.FlightSummary {
	flights := make([]response_models.FlightSummary, 0, maxFlightsPerSearch)

	destPayload, err := s.booking.SearchFlightDestination(ctx, query)
	if err != nil {
		log.Printf("Flight destination search failed for %q: %v", query, err)
		return flights
	}
	destinations := destPayload.Records("data")
	if len(destinations) == 0 {
		return flights
	}
	airportCode := destinations[0].String("code", "id")
	if airportCode == "" {
		return flights
	}

	results, err := s.booking.SearchFlights(ctx, "JFK.AIRPORT", airportCode+".AIRPORT")
	if err != nil {
		log.Printf("Flight search failed for %q: %v", query, err)
		return flights
	}

	offers := results.Record("data").Records("flightOffers")
	if len(offers) > maxFlightsPerSearch {
		offers = offers[:maxFlightsPerSearch]
	}

	for _, offer := range offers {
		flight := extract.BuildFlight(offer, airportCode)
		flight.GeoLocationID = geo.ID
		if _, err := s.flightRepo.Upsert(ctx, &flight); err != nil {
			log.Printf("Skipping flight %s: %v", flight.FlightToken, err)
			continue
		}
		flights = append(flights, flightSummary(flight))
	}
	return flights
}

func (s *SearchService) ingestAttractions(ctx context.Context, destID string, geo db_models.GeoLocation) []response_models.AttractionSummary {
	attractions := make([]response_models.AttractionSummary, 0, maxAttractionsPerSearch)
	if destID == "" {
		return attractions
	}

	results, err := s.booking.SearchAttractions(ctx, destID)
	if err != nil {
		log.Printf("Attraction search failed for dest %s: %v", destID, err)
		return attractions
	}

	products := results.Record("data").Records("products")
	if len(products) > maxAttractionsPerSearch {
		products = products[:maxAttractionsPerSearch]
	}

	for _, product := range products {
		attraction := extract.BuildAttraction(product, geo)
		attraction.GeoLocationID = geo.ID
		if _, err := s.attractionRepo.Replace(ctx, &attraction); err != nil {
			log.Printf("Skipping attraction %s: %v", attraction.AttractionSlug, err)
			continue
		}
		attractions = append(attractions, attractionSummary(attraction))
	}
	return attractions
}

func GeoInfoFromModel(geo db_models.GeoLocation) response_models.GeoInfo {
	return response_models.GeoInfo{
		ID:           geo.ID.String(),
		LocationName: geo.LocationName,
		Country:      geo.Country,
		CountryCode:  geo.CountryCode,
		DestID:       geo.DestID,
		Latitude:     geo.Latitude,
		Longitude:    geo.Longitude,
		Timezone:     geo.Timezone,
		CreatedAt:    geo.CreatedAt,
	}
}

func flightSummary(flight db_models.Flight) response_models.FlightSummary {
	return response_models.FlightSummary{
		ID:                   flight.ID.String(),
		FlightToken:          flight.FlightToken,
		FlightName:           flight.FlightName,
		FlightNumber:         flight.FlightNumber,
		AirlineName:          flight.AirlineName,
		AirlineLogo:          flight.AirlineLogo,
		DepartureAirport:     flight.DepartureAirport,
		DepartureAirportCode: flight.DepartureAirportCode,
		ArrivalAirport:       flight.ArrivalAirport,
		ArrivalAirportCode:   flight.ArrivalAirportCode,
		DepartureTime:        flight.DepartureTime,
		ArrivalTime:          flight.ArrivalTime,
		Duration:             flight.Duration,
		Stops:                flight.Stops,
		Fare:                 flight.Fare,
		Currency:             flight.Currency,
		CabinClass:           flight.CabinClass,
	}
}

func attractionSummary(attraction db_models.Attraction) response_models.AttractionSummary {
	images := make([]string, 0, len(attraction.Images))
	for _, img := range attraction.Images {
		images = append(images, img.ImageURL)
	}
	inclusions := make([]string, 0, len(attraction.Inclusions))
	for _, inc := range attraction.Inclusions {
		inclusions = append(inclusions, inc.InclusionText)
	}
	return response_models.AttractionSummary{
		ID:                 attraction.ID.String(),
		Slug:               attraction.AttractionSlug,
		Name:               attraction.AttractionName,
		ShortDescription:   attraction.ShortDescription,
		LongDescription:    attraction.LongDescription,
		CancellationPolicy: attraction.CancellationPolicy,
		Price:              attraction.Price,
		Currency:           attraction.Currency,
		Rating:             attraction.Rating,
		ReviewCount:        attraction.ReviewCount,
		City:               attraction.City,
		Country:            attraction.Country,
		Images:             images,
		Inclusions:         inclusions,
	}
}

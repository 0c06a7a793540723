package services

import (
	"context"
	"log"

	"wayfare/internal/models/response_models"
	"wayfare/internal/repositories"
	"wayfare/pkg/utils"
)

type DetailsServiceInterface interface {
	GetFlightDetails(ctx context.Context, id string) (response_models.FlightDetailResponse, error)
	GetAttractionDetails(ctx context.Context, id string) (response_models.AttractionDetailResponse, error)
	ListLocations(ctx context.Context) ([]response_models.GeoInfo, error)
}

type DetailsService struct {
	flightRepo     repositories.FlightRepository
	attractionRepo repositories.AttractionRepository
	geoRepo        repositories.GeoLocationRepository
}

func NewDetailsService(
	flightRepo repositories.FlightRepository,
	attractionRepo repositories.AttractionRepository,
	geoRepo repositories.GeoLocationRepository) DetailsServiceInterface {
	return &DetailsService{
		flightRepo:     flightRepo,
		attractionRepo: attractionRepo,
		geoRepo:        geoRepo,
	}
}

func (d *DetailsService) GetFlightDetails(ctx context.Context, id string) (response_models.FlightDetailResponse, error) {
	flight, err := d.flightRepo.GetByIDWithLocation(ctx, id)
	if err != nil {
		log.Printf("Error fetching flight %s: %v", id, err)
		return response_models.FlightDetailResponse{}, utils.ErrDatabaseError
	}
	if flight == nil {
		return response_models.FlightDetailResponse{}, utils.ErrFlightNotFound
	}

	return response_models.FlightDetailResponse{
		GeoInfo: GeoInfoFromModel(flight.GeoLocation),
		Flight: response_models.FlightDetail{
			ID:           flight.ID.String(),
			FlightToken:  flight.FlightToken,
			FlightName:   flight.FlightName,
			FlightNumber: flight.FlightNumber,
			AirlineName:  flight.AirlineName,
			AirlineLogo:  flight.AirlineLogo,
			Departure: response_models.AirportInfo{
				Airport:     flight.DepartureAirport,
				AirportCode: flight.DepartureAirportCode,
				Time:        flight.DepartureTime,
			},
			Arrival: response_models.AirportInfo{
				Airport:     flight.ArrivalAirport,
				AirportCode: flight.ArrivalAirportCode,
				Time:        flight.ArrivalTime,
			},
			Duration: flight.Duration,
			Stops:    flight.Stops,
			Fare: response_models.FareInfo{
				Amount:   flight.Fare,
				Currency: flight.Currency,
			},
			CabinClass: flight.CabinClass,
			CreatedAt:  flight.CreatedAt,
		},
	}, nil
}

func (d *DetailsService) GetAttractionDetails(ctx context.Context, id string) (response_models.AttractionDetailResponse, error) {
	attraction, err := d.attractionRepo.GetByIDWithDetails(ctx, id)
	if err != nil {
		log.Printf("Error fetching attraction %s: %v", id, err)
		return response_models.AttractionDetailResponse{}, utils.ErrDatabaseError
	}
	if attraction == nil {
		return response_models.AttractionDetailResponse{}, utils.ErrAttractionNotFound
	}

	images := make([]response_models.ImageInfo, 0, len(attraction.Images))
	for _, img := range attraction.Images {
		images = append(images, response_models.ImageInfo{
			URL:   img.ImageURL,
			Order: img.DisplayOrder,
		})
	}
	inclusions := make([]string, 0, len(attraction.Inclusions))
	for _, inc := range attraction.Inclusions {
		inclusions = append(inclusions, inc.InclusionText)
	}

	return response_models.AttractionDetailResponse{
		GeoInfo: GeoInfoFromModel(attraction.GeoLocation),
		Attraction: response_models.AttractionDetail{
			ID:   attraction.ID.String(),
			Slug: attraction.AttractionSlug,
			Name: attraction.AttractionName,
			Description: response_models.DescriptionInfo{
				Short: attraction.ShortDescription,
				Long:  attraction.LongDescription,
			},
			Location: response_models.PlaceInfo{
				City:    attraction.City,
				Country: attraction.Country,
			},
			Pricing: response_models.PricingInfo{
				Amount:   attraction.Price,
				Currency: attraction.Currency,
			},
			Rating: response_models.RatingInfo{
				Score:       attraction.Rating,
				ReviewCount: attraction.ReviewCount,
			},
			CancellationPolicy: attraction.CancellationPolicy,
			Images:             images,
			Inclusions:         inclusions,
			CreatedAt:          attraction.CreatedAt,
		},
	}, nil
}

func (d *DetailsService) ListLocations(ctx context.Context) ([]response_models.GeoInfo, error) {
	locations, err := d.geoRepo.ListAll(ctx)
	if err != nil {
		log.Printf("Error listing locations: %v", err)
		return nil, utils.ErrDatabaseError
	}

	infos := make([]response_models.GeoInfo, 0, len(locations))
	for _, geo := range locations {
		infos = append(infos, GeoInfoFromModel(geo))
	}
	return infos, nil
}

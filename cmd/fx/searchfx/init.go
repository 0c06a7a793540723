package searchfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wayfare/internal/repositories"
	"wayfare/internal/services"
)

var Module = fx.Provide(
	provideGeoLocationRepo,
	provideFlightRepo,
	provideAttractionRepo,
	provideSearchService,
	provideDetailsService)

func provideGeoLocationRepo(db *gorm.DB) repositories.GeoLocationRepository {
	return repositories.NewGeoLocationRepository(db)
}

func provideFlightRepo(db *gorm.DB) repositories.FlightRepository {
	return repositories.NewFlightRepository(db)
}

func provideAttractionRepo(db *gorm.DB) repositories.AttractionRepository {
	return repositories.NewAttractionRepository(db)
}

func provideSearchService(
	booking services.BookingAPIClient,
	geoRepo repositories.GeoLocationRepository,
	flightRepo repositories.FlightRepository,
	attractionRepo repositories.AttractionRepository) services.SearchServiceInterface {
	return services.NewSearchService(booking, geoRepo, flightRepo, attractionRepo)
}

func provideDetailsService(
	flightRepo repositories.FlightRepository,
	attractionRepo repositories.AttractionRepository,
	geoRepo repositories.GeoLocationRepository) services.DetailsServiceInterface {
	return services.NewDetailsService(flightRepo, attractionRepo, geoRepo)
}

package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"wayfare/internal/models/db_models"
)

type GeoLocationRepository interface {
	Upsert(ctx context.Context, geo *db_models.GeoLocation) (uuid.UUID, error)
	ListAll(ctx context.Context) ([]db_models.GeoLocation, error)
}

type geoLocationRepository struct {
	db *gorm.DB
}

func NewGeoLocationRepository(db *gorm.DB) GeoLocationRepository {
	return &geoLocationRepository{db: db}
}

// Upsert inserts the location or, when (location_name, dest_id) already
// exists, refreshes country fields only. Coordinates and timezone stay as
// first recorded, repeat geocoding results are too noisy to trust.
func (r *geoLocationRepository) Upsert(ctx context.Context, geo *db_models.GeoLocation) (uuid.UUID, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "location_name"}, {Name: "dest_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"country", "country_code", "updated_at"}),
	}).Create(geo).Error
	if err != nil {
		return uuid.Nil, err
	}

	// On conflict the generated uuid is discarded, re-read the stable id.
	var row db_models.GeoLocation
	err = r.db.WithContext(ctx).
		Where("location_name = ? AND dest_id = ?", geo.LocationName, geo.DestID).
		First(&row).Error
	if err != nil {
		return uuid.Nil, err
	}
	geo.ID = row.ID
	return row.ID, nil
}

func (r *geoLocationRepository) ListAll(ctx context.Context) ([]db_models.GeoLocation, error) {
	var locations []db_models.GeoLocation
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}

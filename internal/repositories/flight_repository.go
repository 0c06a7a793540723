package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"wayfare/internal/models/db_models"
)

type FlightRepository interface {
	Upsert(ctx context.Context, flight *db_models.Flight) (uuid.UUID, error)
	GetByIDWithLocation(ctx context.Context, id string) (*db_models.Flight, error)
}

type flightRepository struct {
	db *gorm.DB
}

func NewFlightRepository(db *gorm.DB) FlightRepository {
	return &flightRepository{db: db}
}

// Upsert inserts the offer or, when the token is already known, refreshes the
// fare only. Everything else stays as first recorded.
func (r *flightRepository) Upsert(ctx context.Context, flight *db_models.Flight) (uuid.UUID, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "flight_token"}},
		DoUpdates: clause.AssignmentColumns([]string{"fare", "updated_at"}),
	}).Create(flight).Error
	if err != nil {
		return uuid.Nil, err
	}

	var row db_models.Flight
	err = r.db.WithContext(ctx).
		Where("flight_token = ?", flight.FlightToken).
		First(&row).Error
	if err != nil {
		return uuid.Nil, err
	}
	flight.ID = row.ID
	return row.ID, nil
}

func (r *flightRepository) GetByIDWithLocation(ctx context.Context, id string) (*db_models.Flight, error) {
	flightID, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}

	var flight db_models.Flight
	err = r.db.WithContext(ctx).
		Preload("GeoLocation").
		First(&flight, "id = ?", flightID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &flight, nil
}

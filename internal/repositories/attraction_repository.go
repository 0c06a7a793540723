package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"wayfare/internal/models/db_models"
)

type AttractionRepository interface {
	Replace(ctx context.Context, attraction *db_models.Attraction) (uuid.UUID, error)
	GetByIDWithDetails(ctx context.Context, id string) (*db_models.Attraction, error)
}

type attractionRepository struct {
	db *gorm.DB
}

func NewAttractionRepository(db *gorm.DB) AttractionRepository {
	return &attractionRepository{db: db}
}

// Replace commits the attraction and its child rows as one transaction:
// upsert the parent keyed on slug, wipe all prior images and inclusions,
// insert the new set. Any failure rolls the whole write back, so children
// always mirror exactly one ingestion.
func (r *attractionRepository) Replace(ctx context.Context, attraction *db_models.Attraction) (uuid.UUID, error) {
	images := attraction.Images
	inclusions := attraction.Inclusions
	// Detach children so Create does not cascade-insert them before the wipe.
	attraction.Images = nil
	attraction.Inclusions = nil

	var outID uuid.UUID
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "attraction_slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"attraction_name", "price", "rating", "review_count", "updated_at"}),
		}).Create(attraction).Error
		if err != nil {
			return err
		}

		var row db_models.Attraction
		if err := tx.Where("attraction_slug = ?", attraction.AttractionSlug).First(&row).Error; err != nil {
			return err
		}
		outID = row.ID

		if err := tx.Where("attraction_id = ?", outID).Delete(&db_models.AttractionImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("attraction_id = ?", outID).Delete(&db_models.AttractionInclusion{}).Error; err != nil {
			return err
		}

		for i := range images {
			images[i].ID = 0
			images[i].AttractionID = outID
		}
		if len(images) > 0 {
			if err := tx.Create(&images).Error; err != nil {
				return err
			}
		}

		for i := range inclusions {
			inclusions[i].ID = 0
			inclusions[i].AttractionID = outID
		}
		if len(inclusions) > 0 {
			if err := tx.Create(&inclusions).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	attraction.ID = outID
	attraction.Images = images
	attraction.Inclusions = inclusions
	return outID, nil
}

func (r *attractionRepository) GetByIDWithDetails(ctx context.Context, id string) (*db_models.Attraction, error) {
	attractionID, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}

	var attraction db_models.Attraction
	err = r.db.WithContext(ctx).
		Preload("GeoLocation").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Preload("Inclusions").
		First(&attraction, "id = ?", attractionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attraction, nil
}

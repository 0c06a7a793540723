package extract

import "wayfare/internal/models/db_models"

// BuildAttraction maps one upstream attraction product to its canonical form,
// city and country inherited from the already-resolved location. Image order
// follows the source order, the first image is the primary one.
func BuildAttraction(product Record, geo db_models.GeoLocation) db_models.Attraction {
	attraction := db_models.Attraction{
		AttractionSlug:     product.StringOr(SyntheticID("attraction"), "slug", "id"),
		AttractionName:     product.StringOr("Unknown Attraction", "name"),
		ShortDescription:   product.String("shortDescription", "short_description"),
		LongDescription:    product.String("description", "long_description"),
		CancellationPolicy: product.Record("cancellationPolicy").StringOr(product.String("cancellation_policy"), "description"),
		Price:              product.Record("pricing").Record("price").Float("value"),
		Currency:           defaultCurrency,
		Rating:             product.Record("reviewsStats").Float("avg"),
		ReviewCount:        product.Record("reviewsStats").Int("total"),
		City:               geo.LocationName,
		Country:            geo.Country,
	}
	if attraction.Price == 0 {
		attraction.Price = product.Float("price")
	}
	if attraction.Rating == 0 {
		attraction.Rating = product.Float("rating")
	}
	if attraction.ReviewCount == 0 {
		attraction.ReviewCount = product.Int("reviewCount", "review_count")
	}

	for i, url := range product.Strings("images", "url") {
		attraction.Images = append(attraction.Images, db_models.AttractionImage{
			ImageURL:     url,
			DisplayOrder: i,
		})
	}
	for _, text := range product.Strings("inclusions", "") {
		attraction.Inclusions = append(attraction.Inclusions, db_models.AttractionInclusion{
			InclusionText: text,
		})
	}
	return attraction
}

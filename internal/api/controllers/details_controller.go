package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"wayfare/internal/services"
	"wayfare/pkg/utils"
)

type DetailsController struct {
	detailsService services.DetailsServiceInterface
}

func NewDetailsController(detailsService services.DetailsServiceInterface) *DetailsController {
	return &DetailsController{
		detailsService: detailsService,
	}
}

// GetDetails fetches one persisted flight or attraction by id. An invalid
// searchtype is rejected before any store access.
func (d *DetailsController) GetDetails(c *gin.Context) {
	id := c.Param("id")

	switch strings.ToLower(c.Query("searchtype")) {
	case "flight":
		result, err := d.detailsService.GetFlightDetails(c.Request.Context(), id)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	case "attraction":
		result, err := d.detailsService.GetAttractionDetails(c.Request.Context(), id)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	default:
		utils.HandleServiceError(c, utils.ErrInvalidSearchType)
	}
}

// ListLocations returns every persisted location, newest first.
func (d *DetailsController) ListLocations(c *gin.Context) {
	locations, err := d.detailsService.ListLocations(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, locations)
}

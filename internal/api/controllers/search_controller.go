package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wayfare/internal/services"
	"wayfare/pkg/utils"
)

type SearchController struct {
	searchService services.SearchServiceInterface
}

func NewSearchController(searchService services.SearchServiceInterface) *SearchController {
	return &SearchController{
		searchService: searchService,
	}
}

// Search runs one full ingestion for the named location and returns what was
// persisted: the resolved location plus every flight and attraction that made
// it through.
func (s *SearchController) Search(c *gin.Context) {
	locationName := c.Param("locationname")
	if locationName == "" {
		utils.RespondError(c, http.StatusBadRequest, "Location name is required")
		return
	}

	result, err := s.searchService.SearchLocation(c.Request.Context(), locationName)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

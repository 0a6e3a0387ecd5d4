package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campuscanteen/canteen-app/services"
	"github.com/campuscanteen/canteen-app/utils"
)

type FoodController struct {
	Catalog *services.CatalogService
}

func NewFoodController(db *gorm.DB) *FoodController {
	return &FoodController{Catalog: services.NewCatalogService(db)}
}

// GetFoods -> catalog listing, optionally filtered by ?search=
func (fc *FoodController) GetFoods(c *gin.Context) {
	items, err := fc.Catalog.SearchFoodItems(c.Query("search"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of food items", items)
}

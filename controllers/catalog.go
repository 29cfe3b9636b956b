// controllers/catalog.go
package controllers

import (
	"net/http"

	"motoassist-backend/config"
	"motoassist-backend/models"
	"motoassist-backend/utils"

	"github.com/gin-gonic/gin"
)

// AddCatalogEntryInput defines the expected JSON structure for a catalog row
type AddCatalogEntryInput struct {
	Brand           string `json:"brand" binding:"required"`
	EngineType      string `json:"engineType" binding:"required"`
	Model           string `json:"model" binding:"required"`
	DisplacementsCC []int  `json:"displacementsCc" binding:"required,min=1"`
}

// GetVehicleCatalog returns the lookup data the intake form selectors use,
// reassembled into the nested brand -> engine type -> model -> [cc] shape.
func GetVehicleCatalog(c *gin.Context) {
	var entries []models.VehicleCatalogEntry
	if err := config.DB.Order("brand, engine_type, model").Find(&entries).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve vehicle catalog")
		return
	}

	catalog := make(map[string]map[string]map[string][]int)
	for _, entry := range entries {
		if catalog[entry.Brand] == nil {
			catalog[entry.Brand] = make(map[string]map[string][]int)
		}
		if catalog[entry.Brand][entry.EngineType] == nil {
			catalog[entry.Brand][entry.EngineType] = make(map[string][]int)
		}
		catalog[entry.Brand][entry.EngineType][entry.Model] = entry.DisplacementsCC
	}

	c.JSON(http.StatusOK, catalog)
}

// AddCatalogEntry creates a catalog row. Admin only; catalog changes never
// touch existing jobs.
func AddCatalogEntry(c *gin.Context) {
	var input AddCatalogEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	entry := models.VehicleCatalogEntry{
		Brand:           input.Brand,
		EngineType:      input.EngineType,
		Model:           input.Model,
		DisplacementsCC: input.DisplacementsCC,
	}

	if err := config.DB.Create(&entry).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to add catalog entry")
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// DeleteCatalogEntry removes a catalog row. Admin only.
func DeleteCatalogEntry(c *gin.Context) {
	entryID, ok := pathID(c)
	if !ok {
		return
	}

	result := config.DB.Where("id = ?", entryID).Delete(&models.VehicleCatalogEntry{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete catalog entry")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Catalog entry not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Catalog entry deleted successfully"})
}

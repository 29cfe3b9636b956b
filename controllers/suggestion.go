// controllers/suggestion.go
package controllers

import (
	"errors"
	"net/http"

	"motoassist-backend/services"
	"motoassist-backend/utils"

	"github.com/gin-gonic/gin"
)

// SuggestionInput defines the suggestion request. Mileage is validated in
// the service so zero and negative values fail before any suggestion work.
type SuggestionInput struct {
	VehicleModel string `json:"vehicleModel" binding:"required"`
	Mileage      int    `json:"mileage"`
}

// GetSuggestions returns templated maintenance suggestions for a vehicle
// model at its current mileage.
func GetSuggestions(c *gin.Context) {
	var input SuggestionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	suggestions, err := services.NewSuggestionService().Suggest(input.VehicleModel, input.Mileage)
	if err != nil {
		if errors.Is(err, services.ErrInvalidMileage) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "An unexpected error occurred while getting suggestions")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

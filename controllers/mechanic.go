// controllers/mechanic.go
package controllers

import (
	"net/http"

	"motoassist-backend/config"
	"motoassist-backend/models"
	"motoassist-backend/utils"

	"github.com/gin-gonic/gin"
)

// AddMechanicInput defines the expected JSON structure for a roster entry
type AddMechanicInput struct {
	Name string `json:"name" binding:"required"`
}

// GetMechanics retrieves the mechanic roster for the caller's scope
func GetMechanics(c *gin.Context) {
	scope, ok := requestScope(c)
	if !ok {
		return
	}

	q := config.DB.Order("name")
	if !scope.Admin {
		q = q.Where("owner_id = ?", scope.OwnerID)
	}

	var mechanics []models.Mechanic
	if err := q.Find(&mechanics).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve mechanics")
		return
	}

	c.JSON(http.StatusOK, mechanics)
}

// AddMechanic creates a new roster entry
func AddMechanic(c *gin.Context) {
	scope, ok := requestScope(c)
	if !ok {
		return
	}

	var input AddMechanicInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	mechanic := models.Mechanic{
		OwnerID: scope.OwnerID,
		Name:    input.Name,
	}

	if err := config.DB.Create(&mechanic).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to add mechanic")
		return
	}

	c.JSON(http.StatusCreated, mechanic)
}

// DeleteMechanic removes a roster entry
func DeleteMechanic(c *gin.Context) {
	scope, ok := requestScope(c)
	if !ok {
		return
	}
	mechanicID, ok := pathID(c)
	if !ok {
		return
	}

	q := config.DB.Where("id = ?", mechanicID)
	if !scope.Admin {
		q = q.Where("owner_id = ?", scope.OwnerID)
	}

	result := q.Delete(&models.Mechanic{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete mechanic")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Mechanic not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Mechanic deleted successfully"})
}

package controllers

import (
	"net/http"

	"motoassist-backend/models"
	"motoassist-backend/services"
	"motoassist-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestScope resolves the caller's query scope from the auth claims.
// Responds with the appropriate error and returns ok=false when the
// claims are missing or malformed.
func requestScope(c *gin.Context) (services.Scope, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return services.Scope{}, false
	}

	uid, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return services.Scope{}, false
	}

	role, _ := c.Get("role")
	return services.Scope{OwnerID: uid, Admin: role == models.RoleAdmin}, true
}

// pathID parses the :id route parameter.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}

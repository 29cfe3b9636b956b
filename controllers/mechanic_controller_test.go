package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"motoassist-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mechanicRouter(userID uuid.UUID, role string) *gin.Engine {
	r := gin.New()
	mechanics := r.Group("/api/mechanics", authAs(userID, role))
	{
		mechanics.GET("", GetMechanics)
		mechanics.POST("", AddMechanic)
		mechanics.DELETE("/:id", DeleteMechanic)
	}
	return r
}

func TestMechanicRoster(t *testing.T) {
	setupControllerTest(t)
	owner := uuid.New()
	r := mechanicRouter(owner, models.RoleOperator)

	for _, name := range []string{"Suresh", "Anil"} {
		w := performRequest(r, "POST", "/api/mechanics", gin.H{"name": name})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := performRequest(r, "GET", "/api/mechanics", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var roster []models.Mechanic
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &roster))
	require.Len(t, roster, 2)
	// Alphabetical listing.
	assert.Equal(t, "Anil", roster[0].Name)
	assert.Equal(t, "Suresh", roster[1].Name)

	// Other operators see their own empty roster.
	other := mechanicRouter(uuid.New(), models.RoleOperator)
	w = performRequest(other, "GET", "/api/mechanics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var otherRoster []models.Mechanic
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &otherRoster))
	assert.Empty(t, otherRoster)

	// And cannot delete across scopes.
	w = performRequest(other, "DELETE", "/api/mechanics/"+roster[0].ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(r, "DELETE", "/api/mechanics/"+roster[0].ID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(r, "DELETE", "/api/mechanics/"+roster[0].ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddMechanicValidation(t *testing.T) {
	setupControllerTest(t)
	r := mechanicRouter(uuid.New(), models.RoleOperator)

	w := performRequest(r, "POST", "/api/mechanics", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

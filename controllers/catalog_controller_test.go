package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"motoassist-backend/models"
	"motoassist-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogRouter(role string) *gin.Engine {
	r := gin.New()
	catalog := r.Group("/api/catalog", authAs(uuid.New(), role))
	{
		catalog.GET("", GetVehicleCatalog)
		catalog.POST("", utils.AdminMiddleware(), AddCatalogEntry)
		catalog.DELETE("/:id", utils.AdminMiddleware(), DeleteCatalogEntry)
	}
	return r
}

func TestCatalogWritesAreAdminOnly(t *testing.T) {
	setupControllerTest(t)

	entry := gin.H{
		"brand":           "Honda",
		"engineType":      "Petrol",
		"model":           "Activa 6G",
		"displacementsCc": []int{110},
	}

	w := performRequest(catalogRouter(models.RoleOperator), "POST", "/api/catalog", entry)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = performRequest(catalogRouter(models.RoleAdmin), "POST", "/api/catalog", entry)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestCatalogNestedShape(t *testing.T) {
	setupControllerTest(t)
	admin := catalogRouter(models.RoleAdmin)

	for _, entry := range []gin.H{
		{"brand": "Honda", "engineType": "Petrol", "model": "Activa 6G", "displacementsCc": []int{110}},
		{"brand": "Honda", "engineType": "Petrol", "model": "Shine", "displacementsCc": []int{125}},
		{"brand": "Royal Enfield", "engineType": "Petrol", "model": "Classic 350", "displacementsCc": []int{350}},
	} {
		w := performRequest(admin, "POST", "/api/catalog", entry)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	// Reads are open to every authenticated role.
	w := performRequest(catalogRouter(models.RoleOperator), "GET", "/api/catalog", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var catalog map[string]map[string]map[string][]int
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &catalog))
	assert.Equal(t, []int{110}, catalog["Honda"]["Petrol"]["Activa 6G"])
	assert.Equal(t, []int{350}, catalog["Royal Enfield"]["Petrol"]["Classic 350"])
}

func TestDeleteCatalogEntry(t *testing.T) {
	setupControllerTest(t)
	admin := catalogRouter(models.RoleAdmin)

	w := performRequest(admin, "POST", "/api/catalog", gin.H{
		"brand": "TVS", "engineType": "Petrol", "model": "Jupiter", "displacementsCc": []int{110},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var entry models.VehicleCatalogEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))

	w = performRequest(admin, "DELETE", "/api/catalog/"+entry.ID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(admin, "DELETE", "/api/catalog/"+entry.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

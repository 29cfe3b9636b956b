package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"motoassist-backend/config"
	"motoassist-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupControllerTest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.ServiceJob{},
		&models.Mechanic{},
		&models.VehicleCatalogEntry{},
		&models.ReminderLog{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	config.SetDB(db)
}

// authAs stands in for the JWT middleware, injecting the parsed claims.
func authAs(userID uuid.UUID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userId", userID.String())
		c.Set("role", role)
		c.Next()
	}
}

func jobRouter(userID uuid.UUID, role string) *gin.Engine {
	r := gin.New()
	jobs := r.Group("/api/jobs", authAs(userID, role))
	{
		jobs.POST("", CreateJob)
		jobs.GET("", GetJobs)
		jobs.GET("/:id", GetJob)
		jobs.PUT("/:id/status", UpdateJobStatus)
		jobs.PUT("/:id/payment", UpdateJobPayment)
		jobs.DELETE("/:id", DeleteJob)
		jobs.GET("/:id/whatsapp", GetJobWhatsAppLink)
	}
	return r
}

func performRequest(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validIntakeBody(mobile string) gin.H {
	return gin.H{
		"customerName": "Ravi Kumar",
		"mobile":       mobile,
		"address":      "12 Station Road, Pune",
		"vehicleModel": gin.H{
			"brand":          "Honda",
			"engineType":     "Petrol",
			"model":          "Activa 6G",
			"displacementCc": 110,
		},
		"licensePlate":   "MH12AB1234",
		"initialRequest": "General service and brake check",
	}
}

type jobResponse struct {
	Job          models.ServiceJob `json:"job"`
	WhatsAppLink string            `json:"whatsappLink"`
}

func TestCreateJobEndpoint(t *testing.T) {
	setupControllerTest(t)
	r := jobRouter(uuid.New(), models.RoleOperator)

	w := performRequest(r, "POST", "/api/jobs", validIntakeBody("9999999999"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp jobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.StatusServiceRequired, resp.Job.Status)
	assert.Equal(t, models.PaymentPending, resp.Job.PaymentStatus)
	assert.False(t, resp.Job.IsRepeat)
	assert.Contains(t, resp.WhatsAppLink, "https://api.whatsapp.com/send?")
	assert.Contains(t, resp.WhatsAppLink, "phone=9999999999")

	// Same phone again: flagged as a repeat customer.
	w = performRequest(r, "POST", "/api/jobs", validIntakeBody("9999999999"))
	require.Equal(t, http.StatusCreated, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Job.IsRepeat)
}

func TestCreateJobLegacyVehicleModelString(t *testing.T) {
	setupControllerTest(t)
	r := jobRouter(uuid.New(), models.RoleOperator)

	body := validIntakeBody("9999999999")
	body["vehicleModel"] = "Splendor Plus"

	w := performRequest(r, "POST", "/api/jobs", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp jobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Splendor Plus", resp.Job.VehicleModel.Model)
}

func TestCreateJobValidation(t *testing.T) {
	setupControllerTest(t)
	r := jobRouter(uuid.New(), models.RoleOperator)

	tests := []struct {
		name   string
		mutate func(gin.H)
	}{
		{"missing customer name", func(b gin.H) { delete(b, "customerName") }},
		{"short address", func(b gin.H) { b["address"] = "x" }},
		{"invalid phone", func(b gin.H) { b["mobile"] = "not-a-phone" }},
		{"missing request", func(b gin.H) { delete(b, "initialRequest") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := validIntakeBody("9999999999")
			tt.mutate(body)
			w := performRequest(r, "POST", "/api/jobs", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestUpdateJobStatusEndpointErrors(t *testing.T) {
	setupControllerTest(t)
	r := jobRouter(uuid.New(), models.RoleOperator)

	// Unknown job: 404, never an upsert.
	w := performRequest(r, "PUT", "/api/jobs/"+uuid.NewString()+"/status", gin.H{"status": models.StatusInProgress})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Malformed id: 400.
	w = performRequest(r, "PUT", "/api/jobs/nope/status", gin.H{"status": models.StatusInProgress})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Skip-ahead transition: 400.
	w = performRequest(r, "POST", "/api/jobs", validIntakeBody("9999999999"))
	require.Equal(t, http.StatusCreated, w.Code)
	var resp jobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	w = performRequest(r, "PUT", "/api/jobs/"+resp.Job.ID.String()+"/status", gin.H{"status": models.StatusBilled})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPaymentEndpointFlow(t *testing.T) {
	setupControllerTest(t)
	r := jobRouter(uuid.New(), models.RoleOperator)

	w := performRequest(r, "POST", "/api/jobs", validIntakeBody("9999999999"))
	require.Equal(t, http.StatusCreated, w.Code)
	var resp jobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	jobID := resp.Job.ID.String()

	// Payment before billing is rejected.
	w = performRequest(r, "PUT", "/api/jobs/"+jobID+"/payment", gin.H{"paymentStatus": models.PaymentPaidCash})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	items := []gin.H{{"description": "Engine oil change", "partsCost": 450, "laborCost": 150}}
	for _, status := range []string{models.StatusInProgress, models.StatusCompleted, models.StatusBilled} {
		w = performRequest(r, "PUT", "/api/jobs/"+jobID+"/status", gin.H{"status": status, "items": items})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	w = performRequest(r, "PUT", "/api/jobs/"+jobID+"/payment", gin.H{"paymentStatus": models.PaymentPaidOnline})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var job models.ServiceJob
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &job))
	assert.Equal(t, models.StatusCycleComplete, job.Status)
	assert.Equal(t, models.PaymentPaidOnline, job.PaymentStatus)
	assert.NotNil(t, job.NextServiceDate)
}

func TestWhatsAppLinkEndpoint(t *testing.T) {
	setupControllerTest(t)
	r := jobRouter(uuid.New(), models.RoleOperator)

	w := performRequest(r, "POST", "/api/jobs", validIntakeBody("9999999999"))
	require.Equal(t, http.StatusCreated, w.Code)
	var resp jobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	jobID := resp.Job.ID.String()

	// A fresh intake has no status-update template.
	w = performRequest(r, "GET", "/api/jobs/"+jobID+"/whatsapp", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(r, "GET", "/api/jobs/"+jobID+"/whatsapp?kind=welcome", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var link struct {
		Message      string `json:"message"`
		WhatsAppLink string `json:"whatsappLink"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &link))
	assert.Contains(t, link.Message, "Ravi Kumar")
	assert.Contains(t, link.WhatsAppLink, "phone=9999999999")

	w = performRequest(r, "GET", "/api/jobs/"+jobID+"/whatsapp?kind=carrier-pigeon", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJobScopingAcrossOwners(t *testing.T) {
	setupControllerTest(t)

	ownerA := uuid.New()
	ownerB := uuid.New()

	w := performRequest(jobRouter(ownerA, models.RoleOperator), "POST", "/api/jobs", validIntakeBody("9999999999"))
	require.Equal(t, http.StatusCreated, w.Code)
	var resp jobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// Another operator cannot see the job; the admin can.
	w = performRequest(jobRouter(ownerB, models.RoleOperator), "GET", "/api/jobs/"+resp.Job.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(jobRouter(ownerB, models.RoleAdmin), "GET", "/api/jobs/"+resp.Job.ID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

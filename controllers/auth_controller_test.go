package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"motoassist-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestRouter() *gin.Engine {
	r := gin.New()
	r.POST("/auth/register", Register)
	r.POST("/auth/login", Login)
	return r
}

func registerBody(email string) gin.H {
	return gin.H{
		"email":    email,
		"phone":    "9999999999",
		"name":     "Workshop Owner",
		"password": "supersecret",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	setupControllerTest(t)
	t.Setenv("JWT_SECRET", "test-secret")
	r := authTestRouter()

	w := performRequest(r, "POST", "/auth/register", registerBody("owner@example.com"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Token string `json:"token"`
		User  struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.Token)
	assert.Equal(t, models.RoleOperator, created.User.Role)

	// Duplicate email or phone is a conflict.
	w = performRequest(r, "POST", "/auth/register", registerBody("owner@example.com"))
	assert.Equal(t, http.StatusConflict, w.Code)

	// Login works with the email as identifier.
	w = performRequest(r, "POST", "/auth/login", gin.H{"identifier": "owner@example.com", "password": "supersecret"})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// And with the phone.
	w = performRequest(r, "POST", "/auth/login", gin.H{"identifier": "9999999999", "password": "supersecret"})
	assert.Equal(t, http.StatusOK, w.Code)

	// Wrong password is a 401, not an enumeration hint.
	w = performRequest(r, "POST", "/auth/login", gin.H{"identifier": "owner@example.com", "password": "wrongpassword"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = performRequest(r, "POST", "/auth/login", gin.H{"identifier": "nobody@example.com", "password": "supersecret"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	setupControllerTest(t)
	t.Setenv("JWT_SECRET", "test-secret")
	r := authTestRouter()

	body := registerBody("owner@example.com")
	body["password"] = "short"
	w := performRequest(r, "POST", "/auth/register", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body = registerBody("not-an-email")
	w = performRequest(r, "POST", "/auth/register", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminEmailGrantsAdminRole(t *testing.T) {
	setupControllerTest(t)
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_EMAIL", "boss@example.com")
	r := authTestRouter()

	w := performRequest(r, "POST", "/auth/register", registerBody("Boss@Example.com"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		User struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, models.RoleAdmin, created.User.Role)
}

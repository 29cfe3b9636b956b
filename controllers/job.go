// controllers/job.go
package controllers

import (
	"errors"
	"net/http"

	"motoassist-backend/config"
	"motoassist-backend/models"
	"motoassist-backend/services"
	"motoassist-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateJobInput defines the expected JSON structure for a new intake.
// vehicleModel accepts either the structured descriptor or the legacy
// free-text string.
type CreateJobInput struct {
	CustomerName   string              `json:"customerName" binding:"required,min=2"`
	Mobile         string              `json:"mobile" binding:"required"`
	Address        string              `json:"address" binding:"required,min=5"`
	VehicleModel   models.VehicleModel `json:"vehicleModel" binding:"required"`
	LicensePlate   string              `json:"licensePlate" binding:"required,min=4"`
	InitialRequest string              `json:"initialRequest" binding:"required,min=5"`
}

// UpdateStatusInput defines a status write. Items and mechanic are optional;
// nil leaves the stored values untouched.
type UpdateStatusInput struct {
	Status   string                  `json:"status" binding:"required"`
	Items    *models.ServiceItemList `json:"items"`
	Mechanic *string                 `json:"mechanic"`
}

// UpdatePaymentInput defines a payment confirmation write.
type UpdatePaymentInput struct {
	PaymentStatus string `json:"paymentStatus" binding:"required"`
}

// CreateJob registers a new service intake and prepares the WhatsApp
// welcome message for the operator to share.
func CreateJob(c *gin.Context) {
	scope, ok := requestScope(c)
	if !ok {
		return
	}

	var input CreateJobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Mobile) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	job := models.ServiceJob{
		CustomerName:   input.CustomerName,
		Mobile:         input.Mobile,
		Address:        input.Address,
		LicensePlate:   input.LicensePlate,
		VehicleModel:   input.VehicleModel,
		InitialRequest: input.InitialRequest,
	}

	lifecycle := services.NewLifecycleService(config.DB)
	if err := lifecycle.CreateJob(scope, &job); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service job")
		return
	}

	welcome := services.WelcomeMessage(&job)
	c.JSON(http.StatusCreated, gin.H{
		"job":          job,
		"whatsappLink": utils.WhatsAppLink(job.Mobile, welcome),
	})
}

// GetJobs lists the caller's jobs, optionally filtered by view:
// ongoing, payments or history (mirroring the original tabs).
func GetJobs(c *gin.Context) {
	scope, ok := requestScope(c)
	if !ok {
		return
	}

	lifecycle := services.NewLifecycleService(config.DB)
	jobs, err := lifecycle.ListJobs(scope, c.Query("view"))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve service jobs")
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// GetJob retrieves a specific job by ID
func GetJob(c *gin.Context) {
	scope, ok := requestScope(c)
	if !ok {
		return
	}
	jobID, ok := pathID(c)
	if !ok {
		return
	}

	lifecycle := services.NewLifecycleService(config.DB)
	job, err := lifecycle.GetJob(scope, jobID)
	if err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service job not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, job)
}

// UpdateJobStatus applies one lifecycle transition (or an idempotent
// same-status save). Illegal transitions are rejected server-side.
func UpdateJobStatus(c *gin.Context) {
	scope, ok := requestScope(c)
	if !ok {
		return
	}
	jobID, ok := pathID(c)
	if !ok {
		return
	}

	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	lifecycle := services.NewLifecycleService(config.DB)
	job, err := lifecycle.Transition(scope, jobID, services.TransitionInput{
		Status:   input.Status,
		Items:    input.Items,
		Mechanic: input.Mechanic,
	})
	if err != nil {
		respondLifecycleError(c, err, "Failed to update service job")
		return
	}

	c.JSON(http.StatusOK, job)
}

// UpdateJobPayment records the operator's payment confirmation. A paid
// status closes the cycle; Pending on a paid job is the explicit un-pay.
func UpdateJobPayment(c *gin.Context) {
	scope, ok := requestScope(c)
	if !ok {
		return
	}
	jobID, ok := pathID(c)
	if !ok {
		return
	}

	var input UpdatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	lifecycle := services.NewLifecycleService(config.DB)
	job, err := lifecycle.ConfirmPayment(scope, jobID, input.PaymentStatus)
	if err != nil {
		respondLifecycleError(c, err, "Failed to update payment")
		return
	}

	c.JSON(http.StatusOK, job)
}

// DeleteJob permanently removes a service record.
func DeleteJob(c *gin.Context) {
	scope, ok := requestScope(c)
	if !ok {
		return
	}
	jobID, ok := pathID(c)
	if !ok {
		return
	}

	lifecycle := services.NewLifecycleService(config.DB)
	if err := lifecycle.DeleteJob(scope, jobID); err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service job not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service job")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service job deleted successfully"})
}

// GetJobWhatsAppLink composes the click-to-chat link for a job. kind is
// welcome, status or reminder; status uses the per-status template and
// fails when no message is defined for the current status.
func GetJobWhatsAppLink(c *gin.Context) {
	scope, ok := requestScope(c)
	if !ok {
		return
	}
	jobID, ok := pathID(c)
	if !ok {
		return
	}

	lifecycle := services.NewLifecycleService(config.DB)
	job, err := lifecycle.GetJob(scope, jobID)
	if err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service job not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var message string
	switch c.DefaultQuery("kind", "status") {
	case "welcome":
		message = services.WelcomeMessage(job)
	case "reminder":
		message = services.ReminderMessage(job)
	case "status":
		var defined bool
		message, defined = services.StatusMessage(job)
		if !defined {
			utils.RespondWithError(c, http.StatusBadRequest, "No pre-defined message for this status")
			return
		}
	default:
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown message kind")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      message,
		"whatsappLink": utils.WhatsAppLink(job.Mobile, message),
	})
}

// respondLifecycleError maps state-machine errors onto HTTP statuses.
func respondLifecycleError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrJobNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "Service job not found")
	case errors.Is(err, services.ErrIllegalTransition),
		errors.Is(err, services.ErrNoLineItems),
		errors.Is(err, services.ErrItemsFrozen),
		errors.Is(err, services.ErrInvalidPaymentStatus),
		errors.Is(err, services.ErrPaymentNotBilled):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, fallback)
	}
}

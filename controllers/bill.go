// controllers/bill.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"motoassist-backend/config"
	"motoassist-backend/models"
	"motoassist-backend/services"
	"motoassist-backend/utils"

	"github.com/gin-gonic/gin"
)

// loadBillableJob fetches the job and checks a bill exists for it. Line
// items freeze at Billed, so the render is stable from then on.
func loadBillableJob(c *gin.Context) *models.ServiceJob {
	scope, ok := requestScope(c)
	if !ok {
		return nil
	}
	jobID, ok := pathID(c)
	if !ok {
		return nil
	}

	lifecycle := services.NewLifecycleService(config.DB)
	job, err := lifecycle.GetJob(scope, jobID)
	if err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service job not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil
	}

	if job.Status != models.StatusBilled && job.Status != models.StatusCycleComplete {
		utils.RespondWithError(c, http.StatusBadRequest, "Job has not been billed yet")
		return nil
	}

	return job
}

// GetBill returns the bill layout for on-screen preview.
func GetBill(c *gin.Context) {
	job := loadBillableJob(c)
	if job == nil {
		return
	}

	c.JSON(http.StatusOK, services.BuildBill(job))
}

// GetBillPDF flattens the bill to a downloadable fixed-page document.
func GetBillPDF(c *gin.Context) {
	job := loadBillableJob(c)
	if job == nil {
		return
	}

	data, err := services.BillPDF(job)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate bill PDF")
		return
	}

	filename := fmt.Sprintf("bill_%s_%s.pdf", utils.DigitsOnly(job.Mobile), utils.GenerateRandomString(6))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", data)
}

// GetBillShareLink composes the WhatsApp deep link carrying the plain-text
// bill.
func GetBillShareLink(c *gin.Context) {
	job := loadBillableJob(c)
	if job == nil {
		return
	}

	text := services.BillText(job)
	c.JSON(http.StatusOK, gin.H{
		"message":      text,
		"whatsappLink": utils.WhatsAppLink(job.Mobile, text),
	})
}

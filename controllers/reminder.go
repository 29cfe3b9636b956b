// controllers/reminder.go
package controllers

import (
	"net/http"
	"time"

	"motoassist-backend/config"
	"motoassist-backend/services"
	"motoassist-backend/utils"

	"github.com/gin-gonic/gin"
)

// DueReminder is one reminder candidate: a completed cycle whose next
// service date has passed, with the shareable message pre-composed.
type DueReminder struct {
	JobID           string `json:"jobId"`
	CustomerName    string `json:"customerName"`
	Mobile          string `json:"mobile"`
	LicensePlate    string `json:"licensePlate"`
	VehicleModel    string `json:"vehicleModel"`
	NextServiceDate string `json:"nextServiceDate"`
	Message         string `json:"message"`
	WhatsAppLink    string `json:"whatsappLink"`
}

// GetDueReminders runs the point-in-time due-service query. Sending the
// reminder is left to the operator via the returned deep link; nothing is
// recorded about whether it happened.
func GetDueReminders(c *gin.Context) {
	scope, ok := requestScope(c)
	if !ok {
		return
	}

	reminders := services.NewReminderService(config.DB)
	jobs, err := reminders.DueJobs(scope, time.Now())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve due services")
		return
	}

	due := make([]DueReminder, 0, len(jobs))
	for i := range jobs {
		job := &jobs[i]
		message := services.ReminderMessage(job)
		due = append(due, DueReminder{
			JobID:           job.ID.String(),
			CustomerName:    job.CustomerName,
			Mobile:          job.Mobile,
			LicensePlate:    job.LicensePlate,
			VehicleModel:    job.VehicleModel.String(),
			NextServiceDate: job.NextServiceDate.Format(time.RFC3339),
			Message:         message,
			WhatsAppLink:    utils.WhatsAppLink(job.Mobile, message),
		})
	}

	c.JSON(http.StatusOK, gin.H{"dueServices": due})
}

// GetReminderLogs returns the audit rows written by the scheduled digest.
func GetReminderLogs(c *gin.Context) {
	scope, ok := requestScope(c)
	if !ok {
		return
	}

	logs, err := services.NewReminderService(config.DB).Logs(scope)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reminder logs")
		return
	}

	c.JSON(http.StatusOK, logs)
}

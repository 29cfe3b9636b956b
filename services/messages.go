// services/messages.go
package services

import (
	"fmt"
	"os"

	"motoassist-backend/models"
)

func businessName() string {
	if name := os.Getenv("BUSINESS_NAME"); name != "" {
		return name
	}
	return "MotoAssist Service Center"
}

// WelcomeMessage is prepared right after intake so the operator can share
// it over WhatsApp.
func WelcomeMessage(job *models.ServiceJob) string {
	return fmt.Sprintf(
		"Thank you for choosing %s, %s! We have received your vehicle (%s, %s) for service. We will keep you updated on the progress.",
		businessName(), job.CustomerName, job.VehicleModel.String(), job.LicensePlate,
	)
}

// statusMessages holds the shareable status-update templates. Statuses
// without an entry have no pre-defined message.
var statusMessages = map[string]string{
	models.StatusInProgress: "Hi %s, work has started on your vehicle (%s). We will keep you updated.",
	models.StatusCompleted:  "Hi %s, the service on your vehicle (%s) is complete. We will share the bill with you shortly for payment.",
	models.StatusBilled:     "Hi %s, your bill for the service on your vehicle (%s) is ready. Please proceed with the payment.",
}

// StatusMessage returns the shareable update for the job's current status,
// or ok=false when none is defined.
func StatusMessage(job *models.ServiceJob) (string, bool) {
	tmpl, ok := statusMessages[job.Status]
	if !ok {
		return "", false
	}
	return fmt.Sprintf(tmpl, job.CustomerName, job.VehicleModel.String()), true
}

// ReminderMessage is the due-service nudge, shared on demand or sent by the
// scheduled digest.
func ReminderMessage(job *models.ServiceJob) string {
	due := "recently"
	if job.NextServiceDate != nil {
		due = job.NextServiceDate.Format("January 2, 2006")
	}
	return fmt.Sprintf(
		"Hi %s, this is a friendly reminder from %s. Your vehicle (%s, %s) was due for its next service on %s. Please contact us to schedule an appointment at your earliest convenience. Thank you!",
		job.CustomerName, businessName(), job.VehicleModel.String(), job.LicensePlate, due,
	)
}

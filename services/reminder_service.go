// services/reminder_service.go
package services

import (
	"os"
	"strings"
	"time"

	"motoassist-backend/models"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// ReminderService finds jobs whose next service date has passed and,
// when the scheduled digest is enabled, pushes the reminder over Twilio.
// The on-demand query never sends anything itself; sharing through the
// WhatsApp deep link is fire-and-forget.
type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

// DueJobs is the point-in-time due-service query: Cycle Complete jobs whose
// next service date is at or before now, within the caller's scope. There
// is no background polling behind this call and no record of whether a
// reminder was actually delivered.
func (s *ReminderService) DueJobs(scope Scope, now time.Time) ([]models.ServiceJob, error) {
	var jobs []models.ServiceJob
	err := scope.apply(s.db).
		Where("status = ?", models.StatusCycleComplete).
		Where("next_service_date IS NOT NULL AND next_service_date <= ?", now).
		Order("next_service_date").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// Logs returns the reminder audit rows for the caller's scope, newest first.
func (s *ReminderService) Logs(scope Scope) ([]models.ReminderLog, error) {
	var logs []models.ReminderLog
	if err := scope.apply(s.db).Order("sent_at DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// StartScheduler registers the daily digest on the given cron schedule.
// The digest is opt-in; without a schedule nothing runs in the background.
func (s *ReminderService) StartScheduler(schedule string) error {
	c := cron.New()
	if _, err := c.AddFunc(schedule, s.SendDueReminders); err != nil {
		return err
	}
	c.Start()
	log.WithField("schedule", schedule).Info("reminder scheduler started")
	return nil
}

// SendDueReminders pushes a WhatsApp reminder for every due job across all
// accounts and records a ReminderLog row per attempt. Send failures are
// logged and recorded, never retried.
func (s *ReminderService) SendDueReminders() {
	log.Info("starting due-service reminder processing")

	jobs, err := s.DueJobs(Scope{Admin: true}, time.Now())
	if err != nil {
		log.Errorf("failed to query due jobs: %v", err)
		return
	}

	for i := range jobs {
		job := &jobs[i]
		message := ReminderMessage(job)

		// WhatsApp needs an E.164 number; fall back to SMS otherwise.
		channel := "sms"
		to := job.Mobile
		if strings.HasPrefix(job.Mobile, "+") {
			to = "whatsapp:" + job.Mobile
			channel = "whatsapp"
		}

		params := &twilioApi.CreateMessageParams{}
		params.SetTo(to)
		params.SetBody(message)
		if channel == "whatsapp" {
			params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
		} else {
			params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
		}

		resp, err := s.client.Api.CreateMessage(params)
		status := "sent"
		errorMsg := ""
		if err != nil {
			log.Errorf("failed to send reminder to %s: %v", job.Mobile, err)
			status = "failed"
			errorMsg = err.Error()
		} else if resp.Sid != nil {
			log.Infof("reminder sent to %s, SID: %s", job.Mobile, *resp.Sid)
		}

		reminderLog := models.ReminderLog{
			OwnerID:      job.OwnerID,
			JobID:        job.ID,
			Mobile:       job.Mobile,
			Message:      message,
			Status:       status,
			ErrorMessage: errorMsg,
			Channel:      channel,
			SentAt:       time.Now(),
		}
		if err := s.db.Create(&reminderLog).Error; err != nil {
			log.Errorf("failed to log reminder for job %s: %v", job.ID, err)
		}
	}

	log.Info("due-service reminder processing completed")
}

package controllers

import (
	"net/http"
	"time"

	"motoassist-backend/config"
	"motoassist-backend/models"
	"motoassist-backend/services"
	"motoassist-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardOverview struct {
	TotalJobs       int            `json:"totalJobs"`
	StatusCounts    map[string]int `json:"statusCounts"`
	OngoingJobs     int            `json:"ongoingJobs"`
	AwaitingPayment int            `json:"awaitingPayment"`
	CompletedCycles int            `json:"completedCycles"`
	RepeatCustomers int            `json:"repeatCustomers"`
	TotalRevenue    float64        `json:"totalRevenue"`
	MonthlyRevenue  float64        `json:"monthlyRevenue"`
	DueReminders    int            `json:"dueReminders"`
}

// GetDashboardOverview summarizes the caller's jobs the way the original
// dashboard tab did: everything is derived from the scoped job list.
func GetDashboardOverview(c *gin.Context) {
	scope, ok := requestScope(c)
	if !ok {
		return
	}

	lifecycle := services.NewLifecycleService(config.DB)
	jobs, err := lifecycle.ListJobs(scope, "")
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve service jobs")
		return
	}

	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	overview := DashboardOverview{
		StatusCounts: make(map[string]int),
	}
	overview.TotalJobs = len(jobs)

	for i := range jobs {
		job := &jobs[i]
		overview.StatusCounts[job.Status]++

		switch job.Status {
		case models.StatusServiceRequired, models.StatusInProgress:
			overview.OngoingJobs++
		case models.StatusCompleted, models.StatusBilled:
			overview.AwaitingPayment++
		case models.StatusCycleComplete:
			overview.CompletedCycles++
		}

		if job.IsRepeat {
			overview.RepeatCustomers++
		}

		// Revenue counts settled payments only.
		if models.IsPaid(job.PaymentStatus) {
			total := job.TotalCost()
			overview.TotalRevenue += total
			if utils.DaysBetween(firstOfMonth, job.IntakeDate) >= 0 {
				overview.MonthlyRevenue += total
			}
		}
	}

	reminders := services.NewReminderService(config.DB)
	if due, err := reminders.DueJobs(scope, now); err == nil {
		overview.DueReminders = len(due)
	}

	c.JSON(http.StatusOK, overview)
}

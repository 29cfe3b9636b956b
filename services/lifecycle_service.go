// services/lifecycle_service.go
package services

import (
	"errors"
	"os"
	"strconv"
	"time"

	"motoassist-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrJobNotFound means the job does not exist in the caller's scope.
	// An update against a missing job never creates one.
	ErrJobNotFound = errors.New("service job not found")

	// ErrIllegalTransition rejects skip-ahead, reverse, and unknown
	// status writes. The lifecycle is strictly forward-only.
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrNoLineItems gates Completed and Billed on at least one logged item.
	ErrNoLineItems = errors.New("at least one service item is required")

	// ErrItemsFrozen rejects line-item edits once the job has been billed.
	ErrItemsFrozen = errors.New("service items are frozen after billing")

	// ErrInvalidPaymentStatus rejects unknown payment values.
	ErrInvalidPaymentStatus = errors.New("invalid payment status")

	// ErrPaymentNotBilled rejects payment writes before a bill exists.
	ErrPaymentNotBilled = errors.New("payment can only be updated on a billed job")
)

// Scope restricts queries to the records an identity may see. Admins drop
// the owner filter entirely.
type Scope struct {
	OwnerID uuid.UUID
	Admin   bool
}

func (s Scope) apply(q *gorm.DB) *gorm.DB {
	if s.Admin {
		return q
	}
	return q.Where("owner_id = ?", s.OwnerID)
}

// LifecycleService owns the job state machine: which status and payment
// transitions are legal and what each one mutates. Writes are single-row,
// last-write-wins; two operators racing on one job is an accepted hazard
// of the interaction model, not something this layer locks against.
type LifecycleService struct {
	db              *gorm.DB
	serviceInterval time.Duration
}

const defaultServiceIntervalDays = 90

func NewLifecycleService(db *gorm.DB) *LifecycleService {
	days := defaultServiceIntervalDays
	if env := os.Getenv("SERVICE_INTERVAL_DAYS"); env != "" {
		if d, err := strconv.Atoi(env); err == nil && d > 0 {
			days = d
		}
	}
	return &LifecycleService{
		db:              db,
		serviceInterval: time.Duration(days) * 24 * time.Hour,
	}
}

// CreateJob persists a new intake. IsRepeat is decided here, exactly once:
// true iff an earlier job in the creator's scope carries the same mobile
// string. No phone canonicalization is performed; "+91-99999" and
// "9999999999" only match if entered identically.
func (s *LifecycleService) CreateJob(scope Scope, job *models.ServiceJob) error {
	var existing int64
	q := scope.apply(s.db.Model(&models.ServiceJob{})).Where("mobile = ?", job.Mobile)
	if err := q.Count(&existing).Error; err != nil {
		return err
	}

	job.OwnerID = scope.OwnerID
	job.Status = models.StatusServiceRequired
	job.PaymentStatus = models.PaymentPending
	job.IsRepeat = existing > 0
	job.IntakeDate = time.Now()
	if job.Items == nil {
		job.Items = models.ServiceItemList{}
	}
	job.NextServiceDate = nil

	return s.db.Create(job).Error
}

// GetJob loads one job within scope.
func (s *LifecycleService) GetJob(scope Scope, jobID uuid.UUID) (*models.ServiceJob, error) {
	var job models.ServiceJob
	err := scope.apply(s.db).Where("id = ?", jobID).First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// TransitionInput carries the optional mutations a status write may include.
// Nil fields leave the stored value untouched.
type TransitionInput struct {
	Status   string
	Items    *models.ServiceItemList
	Mechanic *string
}

// Transition applies one status write. Writing the current status is an
// idempotent save (items and mechanic may still be updated while unbilled).
// Otherwise the target must be the immediate successor. Cycle Complete is
// never reachable here; only ConfirmPayment closes the cycle.
func (s *LifecycleService) Transition(scope Scope, jobID uuid.UUID, input TransitionInput) (*models.ServiceJob, error) {
	job, err := s.GetJob(scope, jobID)
	if err != nil {
		return nil, err
	}

	targetIdx := models.StatusIndex(input.Status)
	currentIdx := models.StatusIndex(job.Status)
	if targetIdx < 0 {
		return nil, ErrIllegalTransition
	}

	advancing := targetIdx != currentIdx
	if advancing {
		if input.Status == models.StatusCycleComplete || targetIdx != currentIdx+1 {
			return nil, ErrIllegalTransition
		}
	}

	if input.Items != nil {
		// Items freeze once billed.
		if currentIdx >= models.StatusIndex(models.StatusBilled) {
			return nil, ErrItemsFrozen
		}
		job.Items = *input.Items
	}
	if input.Mechanic != nil {
		job.Mechanic = *input.Mechanic
	}

	// Completed and Billed both require recorded work.
	if advancing && targetIdx >= models.StatusIndex(models.StatusCompleted) && len(job.Items) == 0 {
		return nil, ErrNoLineItems
	}

	job.Status = input.Status

	if err := s.db.Save(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// ConfirmPayment records the operator's payment assertion. Marking a billed
// job paid closes the cycle and schedules the next service date from the
// intake date. Writing Pending onto a paid job is the explicit un-pay path:
// status drops back to Completed and the next service date is cleared.
// There is no gateway verification behind either direction.
func (s *LifecycleService) ConfirmPayment(scope Scope, jobID uuid.UUID, paymentStatus string) (*models.ServiceJob, error) {
	switch paymentStatus {
	case models.PaymentPending, models.PaymentPaidCash, models.PaymentPaidOnline:
	default:
		return nil, ErrInvalidPaymentStatus
	}

	job, err := s.GetJob(scope, jobID)
	if err != nil {
		return nil, err
	}

	if job.Status != models.StatusBilled && job.Status != models.StatusCycleComplete {
		return nil, ErrPaymentNotBilled
	}

	if models.IsPaid(paymentStatus) {
		next := job.IntakeDate.Add(s.serviceInterval)
		job.PaymentStatus = paymentStatus
		job.Status = models.StatusCycleComplete
		job.NextServiceDate = &next
	} else if models.IsPaid(job.PaymentStatus) {
		// Un-pay: back to Completed, reminder cancelled.
		job.PaymentStatus = models.PaymentPending
		job.Status = models.StatusCompleted
		job.NextServiceDate = nil
	}
	// Pending -> Pending while Billed is a no-op; the bill stays
	// re-presentable.

	if err := s.db.Save(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// ListJobs returns the scoped jobs, newest intake first, optionally
// filtered to one of the UI views.
func (s *LifecycleService) ListJobs(scope Scope, view string) ([]models.ServiceJob, error) {
	q := scope.apply(s.db).Order("intake_date DESC")

	switch view {
	case "ongoing":
		q = q.Where("status IN ?", []string{models.StatusServiceRequired, models.StatusInProgress})
	case "payments":
		q = q.Where("status IN ?", []string{models.StatusCompleted, models.StatusBilled})
	case "history":
		q = q.Where("status = ?", models.StatusCycleComplete)
	}

	var jobs []models.ServiceJob
	if err := q.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// DeleteJob permanently removes a job record.
func (s *LifecycleService) DeleteJob(scope Scope, jobID uuid.UUID) error {
	result := scope.apply(s.db).Where("id = ?", jobID).Delete(&models.ServiceJob{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

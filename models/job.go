package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Job lifecycle statuses. The wire strings match what the original frontend
// stored, so exported records stay readable by it.
const (
	StatusServiceRequired = "Service Required"
	StatusInProgress      = "In Progress"
	StatusCompleted       = "Completed"
	StatusBilled          = "Billed"
	StatusCycleComplete   = "Cycle Complete"
)

// Payment statuses for a job. Cycle Complete requires one of the paid values.
const (
	PaymentPending    = "Pending"
	PaymentPaidCash   = "Paid - Cash"
	PaymentPaidOnline = "Paid - Online"
)

// StatusOrder is the forward-only progression of a service job.
var StatusOrder = []string{
	StatusServiceRequired,
	StatusInProgress,
	StatusCompleted,
	StatusBilled,
	StatusCycleComplete,
}

// StatusIndex returns the position of status in the lifecycle, or -1 if the
// value is not a known status.
func StatusIndex(status string) int {
	for i, s := range StatusOrder {
		if s == status {
			return i
		}
	}
	return -1
}

// IsPaid reports whether a payment status counts as settled.
func IsPaid(paymentStatus string) bool {
	return paymentStatus == PaymentPaidCash || paymentStatus == PaymentPaidOnline
}

// VehicleModel is the canonical structured vehicle descriptor. Older records
// stored the model as a single free-text string; UnmarshalJSON accepts both
// shapes and normalizes the legacy string into a name-only descriptor, so the
// rest of the codebase never branches on representation.
type VehicleModel struct {
	Brand          string `json:"brand,omitempty"`
	EngineType     string `json:"engineType,omitempty"`
	Model          string `json:"model"`
	DisplacementCC int    `json:"displacementCc,omitempty"`
}

func (m *VehicleModel) UnmarshalJSON(data []byte) error {
	var legacy string
	if err := json.Unmarshal(data, &legacy); err == nil {
		*m = VehicleModel{Model: legacy}
		return nil
	}

	type alias VehicleModel
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*m = VehicleModel(a)
	return nil
}

// String renders the descriptor the way the original UI did: "Brand Model",
// or just the model name for legacy records.
func (m VehicleModel) String() string {
	if m.Brand != "" && m.Model != "" {
		return m.Brand + " " + m.Model
	}
	return m.Model
}

func (m VehicleModel) Value() (driver.Value, error) {
	type alias VehicleModel
	return json.Marshal(alias(m))
}

func (m *VehicleModel) Scan(value interface{}) error {
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.New("unsupported type for VehicleModel")
	}
	return json.Unmarshal(b, m)
}

// ServiceItem is one logged line of work: a description plus parts and labor
// costs. Costs are non-negative.
type ServiceItem struct {
	Description string  `json:"description"`
	PartsCost   float64 `json:"partsCost"`
	LaborCost   float64 `json:"laborCost"`
}

// ServiceItemList stores the ordered line items as a single JSON column,
// mirroring the document array the original kept per job.
type ServiceItemList []ServiceItem

func (l ServiceItemList) Value() (driver.Value, error) {
	if l == nil {
		l = ServiceItemList{}
	}
	return json.Marshal(l)
}

func (l *ServiceItemList) Scan(value interface{}) error {
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	case nil:
		*l = ServiceItemList{}
		return nil
	default:
		return errors.New("unsupported type for ServiceItemList")
	}
	return json.Unmarshal(b, l)
}

// Total sums parts and labor across all items.
func (l ServiceItemList) Total() float64 {
	var total float64
	for _, item := range l {
		total += item.PartsCost + item.LaborCost
	}
	return total
}

// ServiceJob is one vehicle intake-to-payment record. The vehicle block is a
// denormalized snapshot taken at intake; catalog changes never touch it.
// IsRepeat and IntakeDate are set once at creation and never mutated.
type ServiceJob struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID uuid.UUID `gorm:"type:uuid;index;not null" json:"ownerId"`

	CustomerName string       `gorm:"not null" json:"customerName"`
	Mobile       string       `gorm:"index;not null" json:"mobile"`
	Address      string       `json:"address"`
	LicensePlate string       `gorm:"not null" json:"licensePlate"`
	VehicleModel VehicleModel `gorm:"type:text" json:"vehicleModel"`

	InitialRequest string          `gorm:"type:text" json:"initialRequest"`
	Status         string          `gorm:"type:varchar(20);index;not null" json:"status"`
	Items          ServiceItemList `gorm:"type:text" json:"items"`
	PaymentStatus  string          `gorm:"type:varchar(20);not null" json:"paymentStatus"`

	IsRepeat        bool       `json:"isRepeat"`
	IntakeDate      time.Time  `gorm:"index;not null" json:"intakeDate"`
	Mechanic        string     `json:"mechanic"`
	NextServiceDate *time.Time `gorm:"index" json:"nextServiceDate"`
}

func (j *ServiceJob) BeforeCreate(tx *gorm.DB) (err error) {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return
}

// TotalCost is the grand total of the job's line items.
func (j *ServiceJob) TotalCost() float64 {
	return j.Items.Total()
}

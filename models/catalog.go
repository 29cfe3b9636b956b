package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IntList stores a slice of displacement values as a JSON column.
type IntList []int

func (l IntList) Value() (driver.Value, error) {
	if l == nil {
		l = IntList{}
	}
	return json.Marshal(l)
}

func (l *IntList) Scan(value interface{}) error {
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	case nil:
		*l = IntList{}
		return nil
	default:
		return errors.New("unsupported type for IntList")
	}
	return json.Unmarshal(b, l)
}

// VehicleCatalogEntry is one row of the brand/engine-type/model lookup used
// to populate intake-form selectors. It is pure reference data: jobs copy a
// snapshot at intake and carry no foreign key back to it.
type VehicleCatalogEntry struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Brand           string    `gorm:"index;not null" json:"brand"`
	EngineType      string    `gorm:"not null" json:"engineType"`
	Model           string    `gorm:"not null" json:"model"`
	DisplacementsCC IntList   `gorm:"type:text" json:"displacementsCc"`
}

func (e *VehicleCatalogEntry) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return
}

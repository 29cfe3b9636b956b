package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Mechanic is a flat roster entry scoped to the owning account. No lifecycle
// beyond create and delete.
type Mechanic struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID uuid.UUID `gorm:"type:uuid;index;not null" json:"ownerId"`
	Name    string    `gorm:"not null" json:"name"`
}

func (m *Mechanic) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}
